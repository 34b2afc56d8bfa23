package colors

// package colors contains functions to quickly and easily generate showroom.Color instances by name (i.e. "White()", "Asphalt()", etc).

import "github.com/solarlune/showroom"

// White generates a showroom.Color instance of the provided name.
func White() showroom.Color {
	return showroom.NewColor(1, 1, 1, 1)
}

// Black generates a showroom.Color instance of the provided name.
func Black() showroom.Color {
	return showroom.NewColor(0, 0, 0, 1)
}

// LightGray generates a showroom.Color instance of the provided name.
func LightGray() showroom.Color {
	return showroom.NewColor(0.8, 0.8, 0.8, 1)
}

// Sky is the clear color used behind the scene.
func Sky() showroom.Color {
	return showroom.NewColor(0.2, 0.2, 0.3, 1)
}

// Asphalt is the color of the ground plane.
func Asphalt() showroom.Color {
	return showroom.NewColor(0.45, 0.47, 0.5, 1)
}

// Brick is the color used for the house.
func Brick() showroom.Color {
	return showroom.NewColor(0.678, 0.172, 0.184, 1)
}

// Lime is the color used for the car body.
func Lime() showroom.Color {
	return showroom.NewColor(0.55, 0.85, 0.1, 1)
}

// Yellow generates a showroom.Color instance of the provided name.
func Yellow() showroom.Color {
	return showroom.NewColor(1, 1, 0, 1)
}
