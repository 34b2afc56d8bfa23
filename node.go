package showroom

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// NodeType represents a Node's type. Node types are categorized, and can be said to extend or "be of" more general types.
// For example, a HemisphericLight has a type of NodeTypeHemisphericLight, which can also be said to be NodeTypeLight.
type NodeType string

const (
	NodeTypeNode             NodeType = "Node"                 // NodeTypeNode represents any generic node
	NodeTypeModel            NodeType = "NodeModel"            // NodeTypeModel represents specifically a Model
	NodeTypeCamera           NodeType = "NodeCamera"           // NodeTypeCamera represents specifically a Camera
	NodeTypeLight            NodeType = "NodeLight"            // NodeTypeLight represents any generic light
	NodeTypeHemisphericLight NodeType = "NodeLightHemispheric" // NodeTypeHemisphericLight represents specifically a hemispheric light
)

// Is returns true if a NodeType satisfies another NodeType category. A specific node type can be said to
// contain a more general one, but not vice-versa.
func (nt NodeType) Is(other NodeType) bool {
	if nt == other {
		return true
	}
	return strings.Contains(string(nt), string(other))
}

// INode represents an object that exists in 3D space and can be positioned relative to an origin point.
// By default, this origin point is {0, 0, 0} (or world origin), but Nodes can be parented
// to other Nodes to change this origin (making their movements relative and their transforms
// successive). Models, Cameras and Lights fully implement the INode interface by means of embedding Node.
type INode interface {
	// Name returns the object's name.
	Name() string
	// SetName sets the object's name.
	SetName(name string)
	// ID returns the object's unique ID.
	ID() uint64
	// Type returns the NodeType for this object.
	Type() NodeType

	// Parent returns the Node's parent. If the Node has no parent, this will return nil.
	Parent() INode
	setParent(INode)
	// Unparent unparents the Node from its parent, removing it from the scenegraph.
	Unparent()

	// Children returns the Node's direct children.
	Children() []INode
	// ChildrenRecursive returns the Node's recursive children (i.e. children, grandchildren, etc).
	ChildrenRecursive() []INode
	// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
	// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so. The children keep their local
	// transforms, so they move along with the new parent from then on.
	AddChildren(...INode)
	// RemoveChildren removes the provided children from this object.
	RemoveChildren(...INode)
	// SearchByName returns the first recursive child with the given name, or nil.
	SearchByName(name string) INode

	dirtyTransform()

	// LocalPosition returns the object's local position (relative to any parent).
	LocalPosition() Vector
	// SetLocalPositionVec sets the object's local position (position relative to its parent).
	SetLocalPositionVec(position Vector)
	SetLocalPosition(x, y, z float64)
	// LocalScale returns the object's local scale (scale relative to its parent).
	LocalScale() Vector
	// SetLocalScaleVec sets the object's local scale (scale relative to its parent).
	SetLocalScaleVec(scale Vector)
	SetLocalScale(w, h, d float64)
	// LocalRotation returns the object's local rotation Matrix4.
	LocalRotation() Matrix4
	// SetLocalRotation sets the object's local rotation Matrix4 (relative to any parent).
	SetLocalRotation(rotation Matrix4)
	// Move moves a Node in local space by the x, y, and z values provided.
	Move(x, y, z float64)

	// Transform returns a Matrix4 indicating the global position, rotation, and scale of the object, transforming it by any parents'.
	Transform() Matrix4
	// WorldPosition returns the node's world position, taking into account its parenting hierarchy.
	WorldPosition() Vector

	// Visible returns whether the Object is visible.
	Visible() bool
	// SetVisible sets the object's visibility. If recursive is true, all recursive children of this Node will have their visibility set the same way.
	SetVisible(visible, recursive bool)

	// HierarchyAsString returns a string displaying the hierarchy of this Node, and all recursive children.
	HierarchyAsString() string
}

// Loaders create nodes off of the main goroutine, so IDs are handed out atomically.
var nodeID atomic.Uint64

// Node represents a minimal struct that fully implements the INode interface. Model, Camera and HemisphericLight embed Node
// into their structs to automatically easily implement INode.
type Node struct {
	id               uint64
	name             string
	position         Vector
	scale            Vector
	rotation         Matrix4
	visible          bool
	data             interface{} // A place to store a pointer to something if you need it
	children         []INode
	parent           INode
	cachedTransform  Matrix4
	isTransformDirty bool
}

// NewNode returns a new Node.
func NewNode(name string) *Node {

	return &Node{
		id:               nodeID.Add(1),
		name:             name,
		scale:            Vector{1, 1, 1, 0},
		rotation:         NewMatrix4(),
		children:         []INode{},
		visible:          true,
		isTransformDirty: true,
		// We set this just in case we call a transform property getter before setting it and caching anything
		cachedTransform: NewMatrix4(),
	}

}

// ID returns the object's unique ID.
func (node *Node) ID() uint64 {
	return node.id
}

// Name returns the object's name.
func (node *Node) Name() string {
	return node.name
}

// SetName sets the object's name.
func (node *Node) SetName(name string) {
	node.name = name
}

// Type returns the NodeType for this object.
func (node *Node) Type() NodeType {
	return NodeTypeNode
}

// SetData sets user-customizeable data that could be usefully stored on this node.
func (node *Node) SetData(data interface{}) {
	node.data = data
}

// Data returns a pointer to user-customizeable data that could be usefully stored on this node.
func (node *Node) Data() interface{} {
	return node.data
}

// Transform returns a Matrix4 indicating the global position, rotation, and scale of the object, transforming it by any parents'.
// If there's no change between the previous Transform() call and this one, Transform() will return a cached version of the
// transform for efficiency.
func (node *Node) Transform() Matrix4 {

	// S * R * T * P

	if !node.isTransformDirty {
		return node.cachedTransform
	}

	transform := NewMatrix4Scale(node.scale.X, node.scale.Y, node.scale.Z)
	transform = transform.Mult(node.rotation)
	transform = transform.Mult(NewMatrix4Translate(node.position.X, node.position.Y, node.position.Z))

	if node.parent != nil {
		transform = transform.Mult(node.parent.Transform())
	}

	node.cachedTransform = transform
	node.isTransformDirty = false

	return transform

}

// dirtyTransform sets this Node and all recursive children's isTransformDirty flags to be true, indicating that they need to be
// rebuilt. This should be called when modifying the transformation properties (position, scale, rotation) of the Node.
func (node *Node) dirtyTransform() {

	for _, child := range node.children {
		child.dirtyTransform()
	}

	node.isTransformDirty = true

}

// LocalPosition returns a 3D Vector consisting of the object's local position (position relative to its parent). If this object has no parent, the position will be
// relative to world origin (0, 0, 0).
func (node *Node) LocalPosition() Vector {
	return node.position
}

// SetLocalPosition sets the object's local position (position relative to its parent). If this object has no parent, the position should be
// relative to world origin (0, 0, 0).
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.position.X = x
	node.position.Y = y
	node.position.Z = z
	node.dirtyTransform()
}

// SetLocalPositionVec sets the object's local position (position relative to its parent).
func (node *Node) SetLocalPositionVec(position Vector) {
	node.SetLocalPosition(position.X, position.Y, position.Z)
}

// Move moves a Node in local space by the x, y, and z values provided.
func (node *Node) Move(x, y, z float64) {
	node.SetLocalPosition(node.position.X+x, node.position.Y+y, node.position.Z+z)
}

// WorldPosition returns a 3D Vector consisting of the object's world position (position relative to the world origin point of {0, 0, 0}).
func (node *Node) WorldPosition() Vector {
	return node.Transform().Translation()
}

// LocalScale returns the object's local scale (scale relative to its parent). If this object has no parent, the scale will be absolute.
func (node *Node) LocalScale() Vector {
	return node.scale
}

// SetLocalScaleVec sets the object's local scale (scale relative to its parent). If this object has no parent, the scale would be absolute.
func (node *Node) SetLocalScaleVec(scale Vector) {
	node.scale = scale
	node.scale.W = 0
	node.dirtyTransform()
}

// SetLocalScale sets the object's local scale using the width, height and depth provided.
func (node *Node) SetLocalScale(w, h, d float64) {
	node.SetLocalScaleVec(NewVector(w, h, d))
}

// LocalRotation returns the object's local rotation Matrix4.
func (node *Node) LocalRotation() Matrix4 {
	return node.rotation
}

// SetLocalRotation sets the object's local rotation Matrix4 (relative to any parent).
func (node *Node) SetLocalRotation(rotation Matrix4) {
	node.rotation = rotation
	node.dirtyTransform()
}

// Parent returns the Node's parent. If the Node has no parent, this will return nil.
func (node *Node) Parent() INode {
	return node.parent
}

func (node *Node) setParent(parent INode) {
	node.parent = parent
}

func (node *Node) addChildren(parent INode, children ...INode) {
	for _, child := range children {
		if child.Parent() != nil {
			child.Parent().RemoveChildren(child)
		}
		child.setParent(parent)
		child.dirtyTransform()
		node.children = append(node.children, child)
	}
}

// AddChildren parents the provided children Nodes to the passed parent Node, inheriting its transformations and being under it in the scenegraph
// hierarchy. If the children are already parented to other Nodes, they are unparented before doing so.
func (node *Node) AddChildren(children ...INode) {
	node.addChildren(node, children...)
}

// RemoveChildren removes the provided children from this object.
func (node *Node) RemoveChildren(children ...INode) {

	for _, child := range children {
		for i, c := range node.children {
			if c == child {
				child.setParent(nil)
				child.dirtyTransform()
				node.children[i] = nil
				node.children = append(node.children[:i], node.children[i+1:]...)
				break
			}
		}
	}

}

// Unparent unparents the Node from its parent, removing it from the scenegraph. Note that this needs to be overridden for objects that embed Node.
func (node *Node) Unparent() {
	if node.parent != nil {
		node.parent.RemoveChildren(node)
	}
}

// Children returns the Node's children.
func (node *Node) Children() []INode {
	return append(make([]INode, 0, len(node.children)), node.children...)
}

// ChildrenRecursive returns all related children Nodes underneath this one.
func (node *Node) ChildrenRecursive() []INode {
	out := node.Children()
	for _, child := range node.children {
		out = append(out, child.ChildrenRecursive()...)
	}
	return out
}

// SearchByName returns the first recursive child Node with the given name, searching depth-first.
func (node *Node) SearchByName(name string) INode {
	return searchChildren(node.children, name)
}

func searchChildren(children []INode, name string) INode {
	for _, child := range children {
		if child.Name() == name {
			return child
		}
		if found := searchChildren(child.Children(), name); found != nil {
			return found
		}
	}
	return nil
}

// Visible returns whether the Object is visible.
func (node *Node) Visible() bool {
	return node.visible
}

// SetVisible sets the object's visibility. If recursive is true, all recursive children of this Node will have their visibility set the same way.
func (node *Node) SetVisible(visible bool, recursive bool) {
	if recursive {
		for _, child := range node.children {
			child.SetVisible(visible, true)
		}
	}
	node.visible = visible
}

// HierarchyAsString returns a string displaying the hierarchy of this Node, and all recursive children.
// This is a useful function to debug the layout of a node tree, for example.
// Nodes show their type by means of a prefix ("MODEL" for Models, for example) and their world positions.
func (node *Node) HierarchyAsString() string {
	return hierarchyAsString(node, 0)
}

func hierarchyAsString(node INode, level int) string {

	prefix := "NODE"

	if level == 0 {
		prefix = "ROOT"
	} else {

		nodeType := node.Type()

		if nodeType.Is(NodeTypeModel) {
			prefix = "MODEL"
		} else if nodeType.Is(NodeTypeCamera) {
			prefix = "CAM"
		} else if nodeType.Is(NodeTypeLight) {
			prefix = "LIGHT"
		}

	}

	str := fmt.Sprintf("%s\\-: [%s] %s : %s\n", strings.Repeat("    ", level), prefix, node.Name(), node.WorldPosition())

	for _, child := range node.Children() {
		str += hierarchyAsString(child, level+1)
	}

	return str

}
