package ebiten3d

import "github.com/solarlune/showroom"

// screenTriangle is a triangle that survived culling, already projected to screen pixels and shaded.
type screenTriangle struct {
	points [3]showroom.Vector
	color  showroom.Color
	depth  float64
	model  *showroom.Model
}

// triangleBucket sorts triangles back to front by dropping them into depth bins; triangles in the same bin keep the
// order they were added in.
type triangleBucket struct {
	bins     [][]screenTriangle
	min, max float64
	all      []screenTriangle
}

func newTriangleBucket(binCount int) *triangleBucket {
	if binCount < 1 {
		binCount = 1
	}
	return &triangleBucket{bins: make([][]screenTriangle, binCount)}
}

func (b *triangleBucket) Clear() {
	for i := range b.bins {
		b.bins[i] = b.bins[i][:0]
	}
	b.all = b.all[:0]
}

func (b *triangleBucket) Add(tri screenTriangle) {
	if len(b.all) == 0 || tri.depth < b.min {
		b.min = tri.depth
	}
	if len(b.all) == 0 || tri.depth > b.max {
		b.max = tri.depth
	}
	b.all = append(b.all, tri)
}

func (b *triangleBucket) Len() int {
	return len(b.all)
}

// Sort distributes the added triangles into bins; call it once everything has been added.
func (b *triangleBucket) Sort() {

	binCount := len(b.bins)
	rangeDiff := b.max - b.min

	if rangeDiff == 0 {
		rangeDiff = 0.001
	}

	for _, tri := range b.all {
		t := (tri.depth - b.min) / rangeDiff * float64(binCount)
		target := int(t)
		if target > binCount-1 {
			target = binCount - 1
		}
		if target < 0 {
			target = 0
		}
		b.bins[target] = append(b.bins[target], tri)
	}

}

// ForEach runs forEach for every sorted triangle, farthest first.
func (b *triangleBucket) ForEach(forEach func(index int, tri screenTriangle)) {
	index := 0
	for binIndex := len(b.bins) - 1; binIndex >= 0; binIndex-- {
		for _, tri := range b.bins[binIndex] {
			forEach(index, tri)
			index++
		}
	}
}
