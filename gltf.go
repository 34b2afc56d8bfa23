package showroom

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFFile loads a .gltf or .glb file from the filepath given. External buffers are resolved relative to the file's directory.
// Every glTF node with a mesh becomes a Model named after the node (or its mesh, if the node is unnamed); nodes without a mesh
// become plain Nodes. The node hierarchy and each node's translation, rotation and scale are kept.
func LoadGLTFFile(path string) (*AssetContainer, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}

	return loadGLTFDocument(filepath.Base(path), doc)

}

// LoadGLTFData loads a .gltf or .glb document from the reader given. Buffers must be embedded (a .glb file or data URIs).
func LoadGLTFData(reader io.Reader) (*AssetContainer, error) {

	doc := gltf.NewDocument()

	if err := gltf.NewDecoder(reader).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}

	return loadGLTFDocument("", doc)

}

func loadGLTFDocument(name string, doc *gltf.Document) (*AssetContainer, error) {

	container := NewAssetContainer(name)

	meshes := make([]*Mesh, len(doc.Meshes))

	for meshIndex, gltfMesh := range doc.Meshes {

		mesh, err := loadGLTFMesh(doc, gltfMesh)
		if err != nil {
			return nil, fmt.Errorf("mesh %d (%s): %w", meshIndex, gltfMesh.Name, err)
		}

		meshes[meshIndex] = mesh

	}

	nodes := make([]INode, len(doc.Nodes))

	for nodeIndex, gltfNode := range doc.Nodes {

		var obj INode

		if gltfNode.Mesh != nil {

			if *gltfNode.Mesh < 0 || *gltfNode.Mesh >= len(meshes) {
				return nil, fmt.Errorf("node %d (%s): mesh index %d out of range", nodeIndex, gltfNode.Name, *gltfNode.Mesh)
			}

			mesh := meshes[*gltfNode.Mesh]

			modelName := gltfNode.Name
			if modelName == "" {
				modelName = mesh.Name
			}

			model := NewModel(mesh, modelName)
			container.Models = append(container.Models, model)
			obj = model

		} else {
			obj = NewNode(gltfNode.Name)
		}

		setGLTFTransform(obj, gltfNode)

		nodes[nodeIndex] = obj

	}

	isChild := make([]bool, len(doc.Nodes))

	for nodeIndex, gltfNode := range doc.Nodes {
		for _, childIndex := range gltfNode.Children {
			if childIndex < 0 || childIndex >= len(nodes) {
				return nil, fmt.Errorf("node %d (%s): child index %d out of range", nodeIndex, gltfNode.Name, childIndex)
			}
			if isChild[childIndex] {
				return nil, fmt.Errorf("node %d (%s): child %d already has a parent", nodeIndex, gltfNode.Name, childIndex)
			}
			if isAncestorOrSelf(nodes[childIndex], nodes[nodeIndex]) {
				return nil, fmt.Errorf("node %d (%s): child %d would form a cycle", nodeIndex, gltfNode.Name, childIndex)
			}
			nodes[nodeIndex].AddChildren(nodes[childIndex])
			isChild[childIndex] = true
		}
	}

	// Roots come from the default scene where there is one, and from every unparented node otherwise.
	var sceneNodes []int
	hasScene := false

	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		sceneNodes, hasScene = doc.Scenes[*doc.Scene].Nodes, true
	} else if len(doc.Scenes) > 0 {
		sceneNodes, hasScene = doc.Scenes[0].Nodes, true
	}

	if hasScene {
		for _, nodeIndex := range sceneNodes {
			if nodeIndex < 0 || nodeIndex >= len(nodes) {
				return nil, fmt.Errorf("scene node index %d out of range", nodeIndex)
			}
			container.Roots = append(container.Roots, nodes[nodeIndex])
		}
	} else {
		for nodeIndex, node := range nodes {
			if !isChild[nodeIndex] {
				container.Roots = append(container.Roots, node)
			}
		}
	}

	return container, nil

}

// isAncestorOrSelf returns if node is target or one of target's parents.
func isAncestorOrSelf(node, target INode) bool {
	for p := target; p != nil; p = p.Parent() {
		if p == node {
			return true
		}
	}
	return false
}

func loadGLTFMesh(doc *gltf.Document, gltfMesh *gltf.Mesh) (*Mesh, error) {

	vertices := []Vector{}
	indices := []int{}

	for _, primitive := range gltfMesh.Primitives {

		// Points and lines can't be drawn or picked as surfaces.
		if primitive.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posAccessor, exists := primitive.Attributes[gltf.POSITION]
		if !exists {
			continue
		}

		if posAccessor < 0 || posAccessor >= len(doc.Accessors) {
			return nil, fmt.Errorf("position accessor %d out of range", posAccessor)
		}

		posBuffer := [][3]float32{}
		vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)
		if err != nil {
			return nil, err
		}

		start := len(vertices)

		for _, v := range vertPos {
			vertices = append(vertices, NewVector(float64(v[0]), float64(v[1]), float64(v[2])))
		}

		if primitive.Indices == nil {
			for i := range vertPos {
				indices = append(indices, start+i)
			}
			continue
		}

		if *primitive.Indices < 0 || *primitive.Indices >= len(doc.Accessors) {
			return nil, fmt.Errorf("index accessor %d out of range", *primitive.Indices)
		}

		indexBuffer := []uint32{}
		primIndices, err := modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], indexBuffer)
		if err != nil {
			return nil, err
		}

		for _, index := range primIndices {
			if int(index) >= len(vertPos) {
				return nil, fmt.Errorf("index %d out of range of %d vertices", index, len(vertPos))
			}
			indices = append(indices, start+int(index))
		}

	}

	if len(vertices) == 0 {
		return &Mesh{Name: gltfMesh.Name}, nil
	}

	return NewMesh(gltfMesh.Name, vertices, indices...), nil

}

func setGLTFTransform(obj INode, gltfNode *gltf.Node) {

	// A node carries either a matrix or separate translation, rotation and scale values.
	if gltfNode.Matrix != gltf.DefaultMatrix && gltfNode.Matrix != [16]float64{} {
		// glTF matrices are column-major for column vectors; read in order, that's exactly our row-vector layout.
		matrix := Matrix4{}
		for i := 0; i < 16; i++ {
			matrix[i/4][i%4] = gltfNode.Matrix[i]
		}
		setFromMatrix(obj, matrix)
		return
	}

	obj.SetLocalPositionVec(NewVector(gltfNode.Translation[0], gltfNode.Translation[1], gltfNode.Translation[2]))

	scale := NewVector(gltfNode.Scale[0], gltfNode.Scale[1], gltfNode.Scale[2])
	if scale.IsZero() {
		scale = NewVector(1, 1, 1)
	}
	obj.SetLocalScaleVec(scale)

	r := gltfNode.Rotation
	if r != [4]float64{} {
		obj.SetLocalRotation(NewMatrix4RotateFromQuaternion(r[0], r[1], r[2], r[3]))
	}

}

func setFromMatrix(obj INode, matrix Matrix4) {

	scale := NewVector(
		math.Sqrt(matrix[0][0]*matrix[0][0]+matrix[0][1]*matrix[0][1]+matrix[0][2]*matrix[0][2]),
		math.Sqrt(matrix[1][0]*matrix[1][0]+matrix[1][1]*matrix[1][1]+matrix[1][2]*matrix[1][2]),
		math.Sqrt(matrix[2][0]*matrix[2][0]+matrix[2][1]*matrix[2][1]+matrix[2][2]*matrix[2][2]),
	)

	rotation := NewMatrix4()
	rotation[0] = [4]float64{matrix[0][0] / scale.X, matrix[0][1] / scale.X, matrix[0][2] / scale.X, 0}
	rotation[1] = [4]float64{matrix[1][0] / scale.Y, matrix[1][1] / scale.Y, matrix[1][2] / scale.Y, 0}
	rotation[2] = [4]float64{matrix[2][0] / scale.Z, matrix[2][1] / scale.Z, matrix[2][2] / scale.Z, 0}

	obj.SetLocalPositionVec(matrix.Translation())
	obj.SetLocalScaleVec(scale)
	obj.SetLocalRotation(rotation)

}
