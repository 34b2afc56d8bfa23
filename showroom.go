// Package showroom is a small 3D scene graph for a car showroom: Models, Cameras and a hemispheric light under a Scene,
// plus the per-frame machinery that makes things happen over time (Timers, an Animator, pick and key actions) and a glTF
// asset loader. Drawing and input live in the ebiten3d package; the scripted camera sequence lives in choreography.
package showroom
