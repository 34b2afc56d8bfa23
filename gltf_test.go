package showroom

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One triangle, (0, 0, 0), (1, 0, 0), (0, 1, 0), shared by every mesh node.
const testGLTF = `{
	"asset": {"version": "2.0"},
	"scene": 0,
	"scenes": [{"nodes": [0, 2]}],
	"nodes": [
		{"name": "body", "mesh": 0, "translation": [0, 0, 5], "children": [1]},
		{"name": "wheel", "mesh": 0, "translation": [1, 0, 0]},
		{"name": "pivot", "rotation": [0, 0.7071068, 0, 0.7071068], "scale": [2, 2, 2], "children": [3]},
		{"mesh": 0, "matrix": [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 3, 0, 0, 1]}
	],
	"meshes": [
		{"name": "triangle", "primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}
	],
	"accessors": [
		{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
		{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
	],
	"bufferViews": [
		{"buffer": 0, "byteOffset": 0, "byteLength": 36},
		{"buffer": 0, "byteOffset": 36, "byteLength": 6}
	],
	"buffers": [
		{"byteLength": 44, "uri": "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAABAAIAAAA="}
	]
}`

func TestLoadGLTFData(t *testing.T) {

	container, err := LoadGLTFData(strings.NewReader(testGLTF))
	require.NoError(t, err)

	require.Len(t, container.Roots, 2)
	require.Len(t, container.Models, 3)

	body := container.FindModel("body")
	require.NotNil(t, body)
	require.NotNil(t, body.Mesh)

	assert.Equal(t, 1, body.Mesh.TriangleCount())
	assert.Equal(t, "triangle", body.Mesh.Name)

	a, b, c := body.Mesh.Triangle(0)
	assert.True(t, a.Equals(NewVector(0, 0, 0)))
	assert.True(t, b.Equals(NewVector(1, 0, 0)))
	assert.True(t, c.Equals(NewVector(0, 1, 0)))

	assert.True(t, body.Mesh.Dimensions.Max.Equals(NewVector(1, 1, 0)))

	// Hierarchy and transforms are kept
	wheel := container.FindModel("wheel")
	require.NotNil(t, wheel)
	assert.Equal(t, body, wheel.Parent())
	assert.True(t, wheel.WorldPosition().Equals(NewVector(1, 0, 5)), wheel.WorldPosition().String())

	pivot := container.FindNode("pivot")
	require.NotNil(t, pivot)
	assert.Equal(t, NodeTypeNode, pivot.Type())
	assert.True(t, pivot.LocalScale().Equals(NewVector(2, 2, 2)))

	// Unnamed mesh nodes are named after their mesh; the matrix puts it 3 units along the pivot's rotated +X
	unnamed := container.Models[2]
	assert.Equal(t, "triangle", unnamed.Name())
	assert.True(t, unnamed.WorldPosition().Equals(NewVector(0, 0, -6)), unnamed.WorldPosition().String())
	assert.InDelta(t, 2, unnamed.Transform().MultDir(WorldUp).Magnitude(), 1e-4)
	assert.InDelta(t, 0, math.Abs(unnamed.Transform().Forward().Y), 1e-6)

}

func TestLoadGLTFFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "car.gltf")
	require.NoError(t, os.WriteFile(path, []byte(testGLTF), 0o644))

	container, err := LoadGLTFFile(path)
	require.NoError(t, err)
	assert.Equal(t, "car.gltf", container.Name)

	scene := NewScene("test")
	container.AddAllToScene(scene)

	assert.NotNil(t, scene.FindNode("wheel"))
	assert.Len(t, scene.Models(), 3)

	_, err = LoadGLTFFile(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)

}

func TestLoadGLTFDataInvalid(t *testing.T) {

	_, err := LoadGLTFData(strings.NewReader("not a gltf file"))
	assert.Error(t, err)

}

func TestLoadGLTFDataMalformed(t *testing.T) {

	documents := map[string]string{
		"missing mesh":         `{"asset": {"version": "2.0"}, "nodes": [{"mesh": 3}]}`,
		"missing scene node":   `{"asset": {"version": "2.0"}, "scene": 0, "scenes": [{"nodes": [7]}], "nodes": [{}]}`,
		"missing child":        `{"asset": {"version": "2.0"}, "nodes": [{"children": [4]}]}`,
		"two parents":          `{"asset": {"version": "2.0"}, "nodes": [{"children": [2]}, {"children": [2]}, {}]}`,
		"cycle":                `{"asset": {"version": "2.0"}, "nodes": [{"name": "a", "children": [1]}, {"name": "b", "children": [0]}]}`,
		"own child":            `{"asset": {"version": "2.0"}, "nodes": [{"children": [0]}]}`,
		"missing positions":    `{"asset": {"version": "2.0"}, "meshes": [{"primitives": [{"attributes": {"POSITION": 5}}]}]}`,
		"missing index buffer": strings.Replace(testGLTF, `"indices": 1`, `"indices": 9`, 1),
	}

	for name, document := range documents {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				container, err := LoadGLTFData(strings.NewReader(document))
				assert.Error(t, err)
				assert.Nil(t, container)
			})
		})
	}

}
