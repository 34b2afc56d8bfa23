package showroom

// Model represents a singular visual instantiation of a Mesh. A Mesh contains the vertex information (what to draw); a Model references the Mesh
// to draw it with a specific Position, Rotation, and/or Scale (where and how to draw).
type Model struct {
	*Node
	Mesh     *Mesh
	Color    Color          // The overall color of the Model.
	Pickable bool           // Whether the Model can be clicked on (and block clicks to what's behind it).
	Actions  *ActionManager // Actions registered on this Model (i.e. what happens when it's clicked).
}

// NewModel creates a new Model (or instance) of the Mesh and Name provided. A Model represents a singular visual instantiation of a Mesh.
func NewModel(mesh *Mesh, name string) *Model {

	return &Model{
		Node:     NewNode(name),
		Mesh:     mesh,
		Color:    NewColor(1, 1, 1, 1),
		Pickable: true,
		Actions:  NewActionManager(),
	}

}

// Type returns the NodeType for this object.
func (model *Model) Type() NodeType {
	return NodeTypeModel
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (model *Model) AddChildren(children ...INode) {
	model.addChildren(model, children...)
}

// Unparent unparents the Model from its parent, removing it from the scenegraph.
func (model *Model) Unparent() {
	if model.parent != nil {
		model.parent.RemoveChildren(model)
	}
}

// HierarchyAsString returns a string displaying the hierarchy of this Model, and all recursive children.
func (model *Model) HierarchyAsString() string {
	return hierarchyAsString(model, 0)
}

// WorldBounds returns the axis-aligned world-space box enclosing the Model's Mesh.
func (model *Model) WorldBounds() Dimensions {
	if model.Mesh == nil {
		p := model.WorldPosition()
		return Dimensions{Min: p, Max: p}
	}
	return model.Mesh.Dimensions.Transformed(model.Transform())
}
