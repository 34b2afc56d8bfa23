package ebiten3d

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/showroom"
	"golang.org/x/image/font/basicfont"
)

// Inspector is a debug overlay listing status lines and outlining the bounds of every Model.
type Inspector struct {
	Visible     bool
	BoundsColor color.Color
	TextColor   color.Color
}

func NewInspector() *Inspector {
	return &Inspector{
		BoundsColor: color.RGBA{255, 255, 0, 255},
		TextColor:   color.White,
	}
}

// Toggle shows or hides the Inspector.
func (ins *Inspector) Toggle() {
	ins.Visible = !ins.Visible
}

// boundsEdges lists the corner pairs of Dimensions.Corners that form the 12 edges of a box; corners on an edge differ
// in exactly one bit of their index.
var boundsEdges = func() [][2]int {
	edges := [][2]int{}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges = append(edges, [2]int{i, i | bit})
			}
		}
	}
	return edges
}()

// Draw renders the overlay if the Inspector is visible.
func (ins *Inspector) Draw(screen *ebiten.Image, scene *showroom.Scene, lines []string) {

	if !ins.Visible {
		return
	}

	camera := scene.ActiveCamera()

	if camera != nil {

		for _, model := range scene.Models() {

			if !model.Visible() {
				continue
			}

			corners := model.WorldBounds().Corners()

			for _, edge := range boundsEdges {
				start, ok1 := camera.WorldToScreenPixels(corners[edge[0]])
				end, ok2 := camera.WorldToScreenPixels(corners[edge[1]])
				if !ok1 || !ok2 {
					continue
				}
				vector.StrokeLine(screen, float32(start.X), float32(start.Y), float32(end.X), float32(end.Y), 1, ins.BoundsColor, false)
			}

		}

	}

	lines = append([]string{fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())}, lines...)

	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 8, 16+i*16, ins.TextColor)
	}

}
