package ebiten3d

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/showroom"
)

// ErrQuit is returned from Game.Update when Escape is pressed, ending ebiten.RunGame.
var ErrQuit = errors.New("quit")

// GameOptions customizes a Game.
type GameOptions struct {
	// Update advances the simulation; it defaults to the Scene's own Update.
	Update func(dt time.Duration)
	// Status supplies extra lines for the inspector overlay.
	Status    func() []string
	Inspector bool // Whether the inspector starts out visible.
}

// Game runs a Scene as an ebiten.Game.
type Game struct {
	Scene     *showroom.Scene
	Renderer  *Renderer
	Input     *Input
	Inspector *Inspector

	opts GameOptions
}

func NewGame(scene *showroom.Scene, opts GameOptions) *Game {

	game := &Game{
		Scene:     scene,
		Renderer:  NewRenderer(),
		Input:     NewInput(),
		Inspector: NewInspector(),
		opts:      opts,
	}

	game.Inspector.Visible = opts.Inspector

	return game

}

// Update processes input and advances the scene by one tick.
func (g *Game) Update() error {

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	g.Input.Update(g.Scene)

	if g.Input.InspectorToggled {
		g.Inspector.Toggle()
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := time.Second / time.Duration(tps)

	if g.opts.Update != nil {
		g.opts.Update(dt)
	} else {
		g.Scene.Update(dt)
	}

	return nil

}

func (g *Game) Draw(screen *ebiten.Image) {

	g.Renderer.Draw(screen, g.Scene)

	var lines []string
	if g.opts.Status != nil {
		lines = g.opts.Status()
	}
	g.Inspector.Draw(screen, g.Scene, lines)

}

// Layout renders at the active Camera's size, falling back to the window size without one.
func (g *Game) Layout(w, h int) (int, int) {
	if camera := g.Scene.ActiveCamera(); camera != nil {
		return camera.Size()
	}
	return w, h
}
