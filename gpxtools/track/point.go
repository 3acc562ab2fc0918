package track

import (
	"time"
)

// Point is a recorded position along a track
type Point struct {
	Latitude, Longitude float64
	Elevation           float64
	Time                time.Time
}

// LatLng is anything positioned by a latitude and longitude in degrees
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}
