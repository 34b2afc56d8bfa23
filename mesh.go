package showroom

import "math"

// Dimensions represents the minimum and maximum spatial dimensions of a Mesh.
type Dimensions struct {
	Min, Max Vector
}

// Width returns the total difference between the minimum and maximum X values.
func (dim Dimensions) Width() float64 {
	return dim.Max.X - dim.Min.X
}

// Height returns the total difference between the minimum and maximum Y values.
func (dim Dimensions) Height() float64 {
	return dim.Max.Y - dim.Min.Y
}

// Depth returns the total difference between the minimum and maximum Z values.
func (dim Dimensions) Depth() float64 {
	return dim.Max.Z - dim.Min.Z
}

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() Vector {
	return dim.Min.Add(dim.Max).Scale(0.5)
}

// Corners returns the eight corners of the box described by the Dimensions.
func (dim Dimensions) Corners() [8]Vector {
	return [8]Vector{
		{dim.Min.X, dim.Min.Y, dim.Min.Z, 0},
		{dim.Max.X, dim.Min.Y, dim.Min.Z, 0},
		{dim.Min.X, dim.Max.Y, dim.Min.Z, 0},
		{dim.Max.X, dim.Max.Y, dim.Min.Z, 0},
		{dim.Min.X, dim.Min.Y, dim.Max.Z, 0},
		{dim.Max.X, dim.Min.Y, dim.Max.Z, 0},
		{dim.Min.X, dim.Max.Y, dim.Max.Z, 0},
		{dim.Max.X, dim.Max.Y, dim.Max.Z, 0},
	}
}

// Transformed returns the axis-aligned Dimensions enclosing the corners of these Dimensions after being transformed by the matrix provided.
func (dim Dimensions) Transformed(matrix Matrix4) Dimensions {

	out := Dimensions{
		Min: NewVector(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: NewVector(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}

	for _, corner := range dim.Corners() {
		c := matrix.MultVec(corner)
		out.Min = out.Min.Min(c)
		out.Max = out.Max.Max(c)
	}

	return out

}

// Mesh represents a collection of vertices, grouped into triangles by an index list. A Model references a Mesh to draw it with a
// specific Position, Rotation, and/or Scale.
type Mesh struct {
	Name       string
	Vertices   []Vector
	Indices    []int // Every three indices form a triangle (counter-clockwise winding)
	Dimensions Dimensions
}

// NewMesh takes a name, vertex positions and triangle indices, and returns a new Mesh. If no indices are given, every three vertices form a triangle.
func NewMesh(name string, vertices []Vector, indices ...int) *Mesh {

	if len(indices) == 0 {
		indices = make([]int, len(vertices))
		for i := range indices {
			indices[i] = i
		}
	}

	mesh := &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}

	mesh.UpdateBounds()

	return mesh

}

// UpdateBounds updates the mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {

	if len(mesh.Vertices) == 0 {
		mesh.Dimensions = Dimensions{}
		return
	}

	mesh.Dimensions = Dimensions{Min: mesh.Vertices[0], Max: mesh.Vertices[0]}

	for _, v := range mesh.Vertices[1:] {
		mesh.Dimensions.Min = mesh.Dimensions.Min.Min(v)
		mesh.Dimensions.Max = mesh.Dimensions.Max.Max(v)
	}

}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// Triangle returns the three vertex positions making up the triangle of the given index.
func (mesh *Mesh) Triangle(index int) (Vector, Vector, Vector) {
	i := index * 3
	return mesh.Vertices[mesh.Indices[i]], mesh.Vertices[mesh.Indices[i+1]], mesh.Vertices[mesh.Indices[i+2]]
}

// NewCubeMesh creates a new Cube Mesh, two units wide on each side and centered on the origin.
func NewCubeMesh() *Mesh {
	mesh := NewBoxMesh(2, 2, 2)
	mesh.Name = "Cube"
	return mesh
}

// NewBoxMesh creates a new box Mesh of the given width (X), height (Y) and depth (Z), centered on the origin.
func NewBoxMesh(width, height, depth float64) *Mesh {

	w := width / 2
	h := height / 2
	d := depth / 2

	return NewMesh("Box",
		[]Vector{
			{-w, -h, -d, 0},
			{w, -h, -d, 0},
			{w, h, -d, 0},
			{-w, h, -d, 0},
			{-w, -h, d, 0},
			{w, -h, d, 0},
			{w, h, d, 0},
			{-w, h, d, 0},
		},
		// Back
		0, 2, 1, 0, 3, 2,
		// Front
		4, 5, 6, 4, 6, 7,
		// Left
		0, 4, 7, 0, 7, 3,
		// Right
		1, 2, 6, 1, 6, 5,
		// Top
		3, 7, 6, 3, 6, 2,
		// Bottom
		0, 1, 5, 0, 5, 4,
	)

}

// NewGroundMesh creates a flat, upward-facing plane Mesh of the given width (X) and depth (Z), centered on the origin.
func NewGroundMesh(width, depth float64) *Mesh {

	w := width / 2
	d := depth / 2

	return NewMesh("Ground",
		[]Vector{
			{-w, 0, -d, 0},
			{w, 0, -d, 0},
			{w, 0, d, 0},
			{-w, 0, d, 0},
		},
		0, 2, 1, 0, 3, 2,
	)

}

// TriangleNormal returns the normal of the triangle made of the three points provided (counter-clockwise winding).
func TriangleNormal(p1, p2, p3 Vector) Vector {
	return p2.Sub(p1).Cross(p3.Sub(p1)).Unit()
}
