package showroom

import "math"

// RayHit represents the result of a successful ray test.
type RayHit struct {
	Object   *Model  // The Model that was hit
	Position Vector  // Where the ray struck the Model's bounds, in world space
	Distance float64 // The distance from the start of the ray to the contact point
}

// RayTest casts a ray from one world position to another, returning the closest visible, pickable Model whose world bounds it strikes.
// If nothing is hit, nil is returned.
func RayTest(from, to Vector, models ...*Model) *RayHit {

	var closest *RayHit

	for _, model := range models {

		if model == nil || !model.Visible() || !model.Pickable {
			continue
		}

		dist, ok := boundsRayTest(from, to, model.WorldBounds())
		if !ok {
			continue
		}

		if closest == nil || dist < closest.Distance {
			closest = &RayHit{
				Object:   model,
				Position: from.Add(to.Sub(from).Unit().Scale(dist)),
				Distance: dist,
			}
		}

	}

	return closest

}

// boundsRayTest is a slab test of the segment from -> to against an axis-aligned box.
func boundsRayTest(from, to Vector, bounds Dimensions) (float64, bool) {

	rayLine := to.Sub(from)
	rayLineUnit := rayLine.Unit()

	t1 := (bounds.Min.X - from.X) / rayLineUnit.X
	t2 := (bounds.Max.X - from.X) / rayLineUnit.X
	t3 := (bounds.Min.Y - from.Y) / rayLineUnit.Y
	t4 := (bounds.Max.Y - from.Y) / rayLineUnit.Y
	t5 := (bounds.Min.Z - from.Z) / rayLineUnit.Z
	t6 := (bounds.Max.Z - from.Z) / rayLineUnit.Z

	tmin := math.Max(math.Max(math.Min(t1, t2), math.Min(t3, t4)), math.Min(t5, t6))
	tmax := math.Min(math.Min(math.Max(t1, t2), math.Max(t3, t4)), math.Max(t5, t6))

	if math.IsNaN(tmin) || math.IsNaN(tmax) {
		return 0, false
	}

	// Box is behind the ray, or the ray misses it
	if tmax < 0 || tmin > tmax {
		return 0, false
	}

	vecLength := tmin

	// The ray starts inside of the box
	if tmin < 0 {
		vecLength = 0
	}

	if vecLength*vecLength > rayLine.MagnitudeSquared() {
		return 0, false
	}

	return vecLength, true

}
