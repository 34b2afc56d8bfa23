// Package ebiten3d draws a showroom.Scene with Ebitengine and feeds it mouse and keyboard input.
package ebiten3d

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/showroom"
)

// MaxTriangleCount is the most triangles a single DrawTriangles call can take with 16-bit indices.
const MaxTriangleCount = 21845

var whiteImage *ebiten.Image

func defaultImage() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		// Sampling from the middle pixel keeps filtering from bleeding in the edges
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// Renderer draws the Models of a Scene from its active Camera, flat-shaded by the Scene's light. Triangles are sorted
// back to front rather than depth-tested.
type Renderer struct {
	BackfaceCulling bool           // Skips triangles facing away from the camera.
	Background      showroom.Color // Color the screen is cleared to.

	bucket   *triangleBucket
	vertices []ebiten.Vertex
	indices  []uint16

	// DrawnTriangles is how many triangles the last Draw call rendered.
	DrawnTriangles int
}

// NewRenderer returns a Renderer with backface culling on.
func NewRenderer() *Renderer {
	return &Renderer{
		BackfaceCulling: true,
		Background:      showroom.NewColor(0.2, 0.3, 0.4, 1),
		bucket:          newTriangleBucket(256),
		vertices:        make([]ebiten.Vertex, 0, MaxTriangleCount*3),
		indices:         make([]uint16, 0, MaxTriangleCount*3),
	}
}

// collect projects, culls and shades every visible triangle in the scene into the bucket.
func (r *Renderer) collect(scene *showroom.Scene, camera *showroom.Camera) {

	r.bucket.Clear()

	light := scene.Light()

	for _, model := range scene.Models() {

		if !model.Visible() || model.Mesh == nil {
			continue
		}

		transform := model.Transform()

		for i := 0; i < model.Mesh.TriangleCount(); i++ {

			a, b, c := model.Mesh.Triangle(i)
			world := [3]showroom.Vector{transform.MultVec(a), transform.MultVec(b), transform.MultVec(c)}

			tri := screenTriangle{model: model}
			visible := true

			for v, w := range world {
				clip := camera.WorldToClip(w)
				screen, ok := camera.ClipToScreen(clip)
				if !ok {
					visible = false
					break
				}
				tri.points[v] = screen
				tri.depth += clip.W / 3
			}

			if !visible {
				continue
			}

			// Counter-clockwise triangles end up clockwise once Y points down the screen
			if r.BackfaceCulling && signedArea(tri.points) >= 0 {
				continue
			}

			tri.color = model.Color
			if light != nil {
				shade := light.Light(showroom.TriangleNormal(world[0], world[1], world[2]))
				shade.A = 1
				tri.color = model.Color.Mult(shade)
			}

			r.bucket.Add(tri)

		}

	}

	r.bucket.Sort()

}

func signedArea(p [3]showroom.Vector) float64 {
	return (p[1].X-p[0].X)*(p[2].Y-p[0].Y) - (p[1].Y-p[0].Y)*(p[2].X-p[0].X)
}

// Draw clears the screen and renders the scene onto it. Nothing but the background is drawn without an active Camera.
func (r *Renderer) Draw(screen *ebiten.Image, scene *showroom.Scene) {

	screen.Fill(r.Background.ToRGBA64())

	r.DrawnTriangles = 0

	camera := scene.ActiveCamera()
	if camera == nil {
		return
	}

	r.collect(scene, camera)

	img := defaultImage()

	flush := func() {
		if len(r.indices) > 0 {
			screen.DrawTriangles(r.vertices, r.indices, img, nil)
		}
		r.vertices = r.vertices[:0]
		r.indices = r.indices[:0]
	}

	r.bucket.ForEach(func(index int, tri screenTriangle) {

		if len(r.vertices) >= MaxTriangleCount*3 {
			flush()
		}

		c := tri.color.Clamped()

		for _, p := range tri.points {
			r.indices = append(r.indices, uint16(len(r.vertices)))
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: c.R,
				ColorG: c.G,
				ColorB: c.B,
				ColorA: c.A,
			})
		}

		r.DrawnTriangles++

	})

	flush()

}
