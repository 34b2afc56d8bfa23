package ebiten3d

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/showroom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyName(t *testing.T) {
	assert.Equal(t, " ", KeyName(ebiten.KeySpace))
	assert.Equal(t, "a", KeyName(ebiten.KeyA))
	assert.Equal(t, "z", KeyName(ebiten.KeyZ))
	assert.Equal(t, "7", KeyName(ebiten.KeyDigit7))
	assert.Equal(t, "", KeyName(ebiten.KeyEscape))
	assert.Equal(t, "", KeyName(ebiten.KeyShift))
}

func TestBoundsEdges(t *testing.T) {
	require.Len(t, boundsEdges, 12)
	for _, edge := range boundsEdges {
		diff := edge[0] ^ edge[1]
		assert.True(t, diff == 1 || diff == 2 || diff == 4, edge)
	}
}

func TestTriangleBucketOrder(t *testing.T) {

	bucket := newTriangleBucket(16)

	for _, depth := range []float64{5, 100, 20, 1} {
		bucket.Add(screenTriangle{depth: depth})
	}
	bucket.Sort()

	depths := []float64{}
	bucket.ForEach(func(index int, tri screenTriangle) {
		assert.Equal(t, len(depths), index)
		depths = append(depths, tri.depth)
	})

	assert.Equal(t, []float64{100, 20, 5, 1}, depths)

	bucket.Clear()
	assert.Zero(t, bucket.Len())

}

func newRenderScene() (*showroom.Scene, *showroom.Camera) {
	scene := showroom.NewScene("render")
	camera := showroom.NewCamera("camera", 640, 360)
	camera.SetLocalPosition(0, 0, 10)
	camera.SetTarget(showroom.NewVectorZero())
	scene.SetActiveCamera(camera)
	return scene, camera
}

func TestRendererCollect(t *testing.T) {

	scene, camera := newRenderScene()

	near := showroom.NewModel(showroom.NewCubeMesh(), "near")
	near.SetLocalPosition(0, 0, 5)
	far := showroom.NewModel(showroom.NewCubeMesh(), "far")
	far.SetLocalPosition(0, 0, -20)
	scene.Add(near, far)

	r := NewRenderer()
	r.BackfaceCulling = false
	r.collect(scene, camera)

	// Every triangle of both cubes is in front of the camera
	assert.Equal(t, 24, r.bucket.Len())

	order := []string{}
	r.bucket.ForEach(func(index int, tri screenTriangle) {
		order = append(order, tri.model.Name())
	})
	assert.Equal(t, "far", order[0])
	assert.Equal(t, "near", order[len(order)-1])

	// Culling the back faces leaves at most three faces per cube
	r.BackfaceCulling = true
	r.collect(scene, camera)
	assert.LessOrEqual(t, r.bucket.Len(), 12)
	assert.Greater(t, r.bucket.Len(), 0)

}

func TestRendererSkipsBehindCamera(t *testing.T) {

	scene, camera := newRenderScene()

	behind := showroom.NewModel(showroom.NewCubeMesh(), "behind")
	behind.SetLocalPosition(0, 0, 20)
	hidden := showroom.NewModel(showroom.NewCubeMesh(), "hidden")
	hidden.SetVisible(false, false)
	scene.Add(behind, hidden)

	r := NewRenderer()
	r.BackfaceCulling = false
	r.collect(scene, camera)

	assert.Zero(t, r.bucket.Len())

}

func TestRendererShading(t *testing.T) {

	scene, camera := newRenderScene()

	ground := showroom.NewModel(showroom.NewGroundMesh(4, 4), "ground")
	ground.Color = showroom.NewColor(1, 0, 0, 1)
	ground.SetLocalPosition(0, -2, 0)
	scene.Add(ground)

	light := showroom.NewHemisphericLight("light", showroom.NewVector(0, 1, 0))
	scene.Add(light)

	r := NewRenderer()
	r.BackfaceCulling = false
	r.collect(scene, camera)
	require.Equal(t, 2, r.bucket.Len())

	lit := r.bucket.all[0].color
	assert.InDelta(t, 1, lit.R, 1e-4)
	assert.InDelta(t, 0, lit.G, 1e-4)

	light.Toggle()
	r.collect(scene, camera)
	dark := r.bucket.all[0].color
	assert.InDelta(t, light.Ambient.R, dark.R, 1e-4)

}
