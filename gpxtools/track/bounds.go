package track

import "fmt"

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries from given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLng -= inc
	b.MaxLat += inc
	b.MaxLng += inc
	return b
}

// Contains reports whether the given position lies within the boundaries
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat() >= b.MinLat && p.Lat() <= b.MaxLat &&
		p.Lng() >= b.MinLng && p.Lng() <= b.MaxLng
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%.6f, %.6f] - [%.6f, %.6f]", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
}
