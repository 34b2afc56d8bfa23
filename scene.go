package showroom

import (
	"context"
	"log"
	"path/filepath"
	"time"
)

type assetLoad struct {
	container *AssetContainer
	err       error
	onLoaded  func(*AssetContainer, error)
}

// Scene represents a world of sorts, and can contain a variety of Models, Cameras and Lights under its Root Node.
// A Scene also owns the Timers and Animator that drive anything happening over time; Update advances both.
// Viewpoints (Cameras) and other Nodes can be addressed by name through the methods AddViewpoint, SetActiveViewpoint,
// AttachControl, DetachControl, SetPosition and Position; unknown names are logged and ignored.
type Scene struct {
	Name     string
	Root     *Node          // The root Node; everything in the Scene is a recursive child of it.
	Actions  *ActionManager // Scene-level actions, such as key handlers.
	Timers   *Timers
	Animator *Animator
	Logger   *log.Logger

	activeCamera *Camera
	loads        chan assetLoad
	pendingLoads int
}

// NewScene returns a new, empty Scene.
func NewScene(name string) *Scene {

	scene := &Scene{
		Name:    name,
		Root:    NewNode("root"),
		Actions: NewActionManager(),
		Timers:  NewTimers(),
		Logger:  log.Default(),
		loads:   make(chan assetLoad, 16),
	}

	scene.Animator = NewAnimator(scene, nil)

	return scene

}

// SetLogger sets the Logger the Scene and its Animator report problems with.
func (scene *Scene) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	scene.Logger = logger
	scene.Animator.logger = logger
}

// Add adds the Nodes provided to the Scene's Root.
func (scene *Scene) Add(nodes ...INode) {
	scene.Root.AddChildren(nodes...)
}

// FindNode returns the first Node in the Scene with the given name, or nil if there's none.
func (scene *Scene) FindNode(name string) INode {
	return scene.Root.SearchByName(name)
}

// FindCamera returns the first Camera in the Scene with the given name, or nil if there's none.
func (scene *Scene) FindCamera(name string) *Camera {
	for _, node := range scene.Root.ChildrenRecursive() {
		if cam, ok := node.(*Camera); ok && cam.Name() == name {
			return cam
		}
	}
	return nil
}

// Models returns every Model in the Scene.
func (scene *Scene) Models() []*Model {
	models := []*Model{}
	for _, node := range scene.Root.ChildrenRecursive() {
		if model, ok := node.(*Model); ok {
			models = append(models, model)
		}
	}
	return models
}

// Light returns the first HemisphericLight in the Scene, or nil if there's none.
func (scene *Scene) Light() *HemisphericLight {
	for _, node := range scene.Root.ChildrenRecursive() {
		if light, ok := node.(*HemisphericLight); ok {
			return light
		}
	}
	return nil
}

// ActiveCamera returns the Camera the Scene is viewed through.
func (scene *Scene) ActiveCamera() *Camera {
	return scene.activeCamera
}

// SetActiveCamera sets the Camera the Scene is viewed through. If the Camera isn't in the Scene yet, it's added.
func (scene *Scene) SetActiveCamera(camera *Camera) {
	if camera != nil && camera.Parent() == nil {
		scene.Add(camera)
	}
	scene.activeCamera = camera
}

func (scene *Scene) camera(id string) *Camera {
	cam := scene.FindCamera(id)
	if cam == nil {
		scene.Logger.Printf("scene %s: no viewpoint named %q", scene.Name, id)
	}
	return cam
}

// AddViewpoint creates a Camera with the given name at the given position, sized like the active Camera. If a Camera
// with that name already exists, it's moved to the position instead.
func (scene *Scene) AddViewpoint(id string, position Vector) {

	if cam := scene.FindCamera(id); cam != nil {
		cam.SetLocalPositionVec(position)
		return
	}

	w, h := 1280, 720
	if scene.activeCamera != nil {
		w, h = scene.activeCamera.Size()
	}

	cam := NewCamera(id, w, h)
	cam.SetLocalPositionVec(position)
	scene.Add(cam)

}

// SetActiveViewpoint makes the Camera with the given name the active one.
func (scene *Scene) SetActiveViewpoint(id string) {
	if cam := scene.camera(id); cam != nil {
		scene.activeCamera = cam
	}
}

// AttachControl lets user input move the Camera with the given name.
func (scene *Scene) AttachControl(id string) {
	if cam := scene.camera(id); cam != nil {
		cam.AttachControl()
	}
}

// DetachControl stops user input from moving the Camera with the given name.
func (scene *Scene) DetachControl(id string) {
	if cam := scene.camera(id); cam != nil {
		cam.DetachControl()
	}
}

// SetPosition sets the local position of the Node with the given name.
func (scene *Scene) SetPosition(id string, position Vector) {
	node := scene.FindNode(id)
	if node == nil {
		scene.Logger.Printf("scene %s: no node named %q", scene.Name, id)
		return
	}
	node.SetLocalPositionVec(position)
}

// Position returns the local position of the Node with the given name, or a zero Vector if there's none.
func (scene *Scene) Position(id string) Vector {
	node := scene.FindNode(id)
	if node == nil {
		scene.Logger.Printf("scene %s: no node named %q", scene.Name, id)
		return Vector{}
	}
	return node.LocalPosition()
}

// Update advances the Scene by dt: finished asset loads deliver their containers first, then due timers run, then
// animations advance. Every callback runs on the calling goroutine.
func (scene *Scene) Update(dt time.Duration) {
	scene.drainLoads()
	scene.Timers.Update(dt)
	scene.Animator.Update(dt)
}

func (scene *Scene) drainLoads() {
	for {
		select {
		case load := <-scene.loads:
			scene.deliver(load)
		default:
			return
		}
	}
}

func (scene *Scene) deliver(load assetLoad) {
	scene.pendingLoads--
	if load.onLoaded != nil {
		load.onLoaded(load.container, load.err)
	}
}

// LoadAssetContainer loads the glTF file found at dir/filename in the background. The onLoaded callback runs from a later Update
// (or AwaitLoads) call with either the loaded container or the error that stopped it.
func (scene *Scene) LoadAssetContainer(dir, filename string, onLoaded func(*AssetContainer, error)) {

	path := filepath.Join(dir, filename)
	scene.pendingLoads++

	go func() {
		container, err := LoadGLTFFile(path)
		scene.loads <- assetLoad{container: container, err: err, onLoaded: onLoaded}
	}()

}

// LoadsPending returns how many asset loads haven't been delivered yet.
func (scene *Scene) LoadsPending() int {
	return scene.pendingLoads
}

// AwaitLoads blocks until every pending asset load has been delivered (running its callback), or until the context is done.
func (scene *Scene) AwaitLoads(ctx context.Context) error {
	for scene.pendingLoads > 0 {
		select {
		case load := <-scene.loads:
			scene.deliver(load)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Pick casts a ray from the active Camera through the given screen pixel and returns the closest visible, pickable Model it hits,
// running that Model's pick actions. If nothing is hit, nil is returned.
func (scene *Scene) Pick(x, y int) *Model {

	if scene.activeCamera == nil {
		return nil
	}

	from, to := scene.activeCamera.MouseRay(x, y)

	hit := RayTest(from, to, scene.Models()...)
	if hit == nil {
		return nil
	}

	hit.Object.Actions.Process(ActionEvent{Trigger: TriggerPick, Source: hit.Object})

	return hit.Object

}

// KeyUp runs the Scene's key-up actions for the released key (" " for the space bar, lower-case letters otherwise).
func (scene *Scene) KeyUp(key string) {
	scene.Actions.Process(ActionEvent{Trigger: TriggerKeyUp, Key: key})
}
