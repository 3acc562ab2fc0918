package track

import (
	"math"

	"github.com/golang/geo/s1"
)

// EarthRadius is the Earth mean radius in meters
const EarthRadius = 6371000

// Distance returns the great-circle distance in meters between two positions
// using the haversine formula.
func Distance(from, to LatLng) float64 {
	dLat := toRadians(to.Lat() - from.Lat())
	dLng := toRadians(to.Lng() - from.Lng())

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(from.Lat()))*math.Cos(toRadians(to.Lat()))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// Length returns the summed distance in meters between consecutive positions
func Length[P LatLng](points []P) float64 {
	var d float64
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

func toRadians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}
