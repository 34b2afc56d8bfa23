package showroom

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// MultRGB returns a copy of the Color with the R, G, and B channels multiplied by the value provided (alpha is left alone).
func (c Color) MultRGB(value float32) Color {
	c.R *= value
	c.G *= value
	c.B *= value
	return c
}

// Mult returns a copy of the Color multiplied component-wise by the other Color.
func (c Color) Mult(other Color) Color {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	c.A *= other.A
	return c
}

// Clamped returns a copy of the Color with each channel clamped to the 0-1 range.
func (c Color) Clamped() Color {
	c.R = clamp32(c.R)
	c.G = clamp32(c.G)
	c.B = clamp32(c.B)
	c.A = clamp32(c.A)
	return c
}

// ToRGBA64 converts a color to a color.RGBA64 instance.
func (c Color) ToRGBA64() color.RGBA64 {
	c = c.Clamped()
	return color.RGBA64{
		uint16(math.Round(float64(c.R) * math.MaxUint16)),
		uint16(math.Round(float64(c.G) * math.MaxUint16)),
		uint16(math.Round(float64(c.B) * math.MaxUint16)),
		uint16(math.Round(float64(c.A) * math.MaxUint16)),
	}
}

func clamp32(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
