package showroom

// AssetContainer holds the Nodes decoded from an asset file, not yet part of any Scene. Loading into a container first
// lets you reposition, rescale or reparent what was loaded before showing it.
type AssetContainer struct {
	Name   string
	Roots  []INode  // Top-level Nodes, in file order
	Models []*Model // Every Model in the container, in file order (including children of other Nodes)
}

// NewAssetContainer creates a new, empty AssetContainer.
func NewAssetContainer(name string) *AssetContainer {
	return &AssetContainer{
		Name:   name,
		Roots:  []INode{},
		Models: []*Model{},
	}
}

// FindModel returns the first Model with the given name, or nil if there's none.
func (container *AssetContainer) FindModel(name string) *Model {
	for _, model := range container.Models {
		if model.Name() == name {
			return model
		}
	}
	return nil
}

// FindNode returns the first Node (of any type) with the given name, searching the top-level Nodes and their children.
func (container *AssetContainer) FindNode(name string) INode {
	for _, root := range container.Roots {
		if root.Name() == name {
			return root
		}
		if found := root.SearchByName(name); found != nil {
			return found
		}
	}
	return nil
}

// AddAllToScene adds every top-level Node that doesn't already have a parent to the Scene's root.
// Nodes reparented within the container (to one another) come along with their new parents.
func (container *AssetContainer) AddAllToScene(scene *Scene) {
	for _, root := range container.Roots {
		if root.Parent() == nil {
			scene.Root.AddChildren(root)
		}
	}
	for _, model := range container.Models {
		if model.Parent() == nil {
			scene.Root.AddChildren(model)
		}
	}
}
