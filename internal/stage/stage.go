// Package stage builds the showroom scene: the ground, the overview camera, the light, the house and the car, with the
// car wired to start the choreography when clicked.
package stage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/solarlune/showroom"
	"github.com/solarlune/showroom/choreography"
	"github.com/solarlune/showroom/colors"
	"github.com/solarlune/showroom/internal/config"
)

// Stage holds the showroom Scene and the pieces of it other code needs to reach.
type Stage struct {
	Scene        *showroom.Scene
	Primary      *showroom.Camera
	Light        *showroom.HemisphericLight
	Ground       *showroom.Model
	Choreography *choreography.Controller

	// House and Car are nil until their assets have been delivered (see Scene.Update).
	House *showroom.AssetContainer
	Car   *showroom.AssetContainer

	cfg    config.Config
	logger *log.Logger
}

// New sets up the scene and starts loading the house and car assets in the background. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Stage {

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Stage{
		Scene:  showroom.NewScene("showroom"),
		cfg:    cfg,
		logger: logger,
	}

	s.Scene.SetLogger(logger)

	s.Ground = showroom.NewModel(showroom.NewGroundMesh(100, 301), "ground")
	s.Ground.Color = colors.Asphalt()
	s.Scene.Add(s.Ground)

	s.Primary = showroom.NewCamera("camera1", cfg.Width, cfg.Height)
	s.Primary.SetLocalPosition(100, 150, -170)
	s.Primary.SetTarget(showroom.NewVectorZero())
	s.Primary.AttachControl()
	s.Scene.SetActiveCamera(s.Primary)

	s.Light = showroom.NewHemisphericLight("hemilight", showroom.NewVector(0, 100, 0))
	s.Light.Diffuse = colors.White()
	s.Scene.Add(s.Light)

	// Space bar switches the light on and off
	s.Scene.Actions.RegisterAction(showroom.TriggerKeyUp, " ", func(event showroom.ActionEvent) {
		on := s.Light.Toggle()
		s.logger.Printf("stage: light on: %t", on)
	})

	settings := choreography.DefaultSettings(cfg.CarRoot)
	settings.PreDelay = cfg.PreDelay
	settings.PostDelay = cfg.PostDelay
	settings.AnimationTimeout = cfg.AnimationTimeout
	settings.WaitForTarget = cfg.WaitForCar

	s.Choreography = choreography.New(choreography.Options{
		Host:      s.Scene,
		Animator:  s.Scene.Animator,
		Scheduler: s.Scene.Timers,
		Settings:  settings,
		Logger:    logger,
	})

	s.Scene.LoadAssetContainer(cfg.AssetDir, cfg.HouseFile, s.onHouseLoaded)
	s.Scene.LoadAssetContainer(cfg.AssetDir, cfg.CarFile, s.onCarLoaded)

	return s

}

func (s *Stage) onHouseLoaded(container *showroom.AssetContainer, err error) {

	if err != nil {
		s.logger.Printf("stage: house: %v; using a placeholder", err)
		container = placeholderHouse()
	}

	for _, root := range container.Roots {
		root.SetLocalPositionVec(showroom.NewVector(0, 0, 100))
		root.SetLocalScale(0.1, 0.1, 0.1)
	}

	for _, model := range container.Models {
		model.Color = colors.Brick()
		model.Pickable = false
	}

	container.AddAllToScene(s.Scene)
	s.House = container

}

func (s *Stage) onCarLoaded(container *showroom.AssetContainer, err error) {

	if err == nil && container.FindModel(s.cfg.CarRoot) == nil {
		err = fmt.Errorf("no model named %q", s.cfg.CarRoot)
	}

	if err != nil {
		s.logger.Printf("stage: car: %v; using a placeholder", err)
		container = placeholderCar(s.cfg.CarRoot)
	}

	root := container.FindModel(s.cfg.CarRoot)

	for _, model := range container.Models {

		// Everything hangs off of the root, so moving it moves the whole car
		if model != root && !isAncestor(model, root) {
			root.AddChildren(model)
		}

		model.Color = colors.Lime()

		model.Actions.RegisterAction(showroom.TriggerPick, "", func(event showroom.ActionEvent) {
			s.Choreography.OnTrigger(choreography.Event{Picked: event.Source.Name()})
		})

	}

	root.SetLocalPosition(0, 0, -100)
	root.SetLocalScale(4, 4, 4)
	root.SetLocalRotation(showroom.NewMatrix4RotateFromEuler(showroom.NewVector(0, 1.55, 0)))

	container.AddAllToScene(s.Scene)
	s.Car = container

}

func isAncestor(node, of showroom.INode) bool {
	for p := of.Parent(); p != nil; p = p.Parent() {
		if p == node {
			return true
		}
	}
	return false
}

// placeholderHouse stands in for a house model that couldn't be loaded; it's sized to match once scaled down.
func placeholderHouse() *showroom.AssetContainer {
	container := showroom.NewAssetContainer("house placeholder")
	house := showroom.NewModel(showroom.NewBoxMesh(300, 200, 300), "house")
	container.Roots = append(container.Roots, house)
	container.Models = append(container.Models, house)
	return container
}

// placeholderCar stands in for a car model that couldn't be loaded: a seat (the root) and a body, left unparented
// like separately loaded meshes would be.
func placeholderCar(rootName string) *showroom.AssetContainer {

	container := showroom.NewAssetContainer("car placeholder")

	seat := showroom.NewModel(showroom.NewBoxMesh(0.5, 0.5, 0.5), rootName)
	seat.SetLocalPosition(0, 0.5, 0)

	body := showroom.NewModel(showroom.NewBoxMesh(4.5, 1.2, 2), "body")
	body.SetLocalPosition(0, 0.6, 0)

	for _, model := range []*showroom.Model{seat, body} {
		container.Roots = append(container.Roots, model)
		container.Models = append(container.Models, model)
	}

	return container

}

// Update advances the scene by dt.
func (s *Stage) Update(dt time.Duration) {
	s.Scene.Update(dt)
}

// Ready returns if both the house and the car are in the scene.
func (s *Stage) Ready() bool {
	return s.House != nil && s.Car != nil
}

// AwaitAssets blocks until the house and car have been loaded (or replaced by placeholders) and added to the scene.
func (s *Stage) AwaitAssets(ctx context.Context) error {
	return s.Scene.AwaitLoads(ctx)
}

// CarRoot returns the car's root Model, or nil if the car isn't loaded yet.
func (s *Stage) CarRoot() *showroom.Model {
	if s.Car == nil {
		return nil
	}
	return s.Car.FindModel(s.cfg.CarRoot)
}

// PickCar acts as though the car was clicked on, returning false if it isn't loaded yet.
func (s *Stage) PickCar() bool {
	root := s.CarRoot()
	if root == nil {
		return false
	}
	root.Actions.Process(showroom.ActionEvent{Trigger: showroom.TriggerPick, Source: root})
	return true
}

// ToggleLight acts as though the space bar was released.
func (s *Stage) ToggleLight() {
	s.Scene.KeyUp(" ")
}

// Status returns a few lines describing the state of the showroom.
func (s *Stage) Status() []string {

	lines := []string{
		fmt.Sprintf("phase: %s (triggered: %t)", s.Choreography.Phase(), s.Choreography.Triggered()),
	}

	if cam := s.Scene.ActiveCamera(); cam != nil {
		lines = append(lines, fmt.Sprintf("camera: %s at %s (control: %t)", cam.Name(), cam.WorldPosition(), cam.ControlAttached()))
	}

	lines = append(lines, fmt.Sprintf("light: %t", s.Light.IsEnabled()))

	if root := s.CarRoot(); root != nil {
		lines = append(lines, fmt.Sprintf("car: %s", root.WorldPosition()))
	} else {
		lines = append(lines, "car: loading")
	}

	return lines

}
