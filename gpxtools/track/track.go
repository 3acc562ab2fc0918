package track

import (
	"math"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Track represents a gps track made of a serie of points
type Track struct {
	Points []Point

	segment gpx.GPXTrackSegment
}

// Stats track statistics
type Stats struct {
	Points         int
	Duration       time.Duration
	ElevationGain  float64
	ElevationLoss  float64
	StartElevation float64
	EndElevation   float64
	Distance       float64
}

// elevation changes below this many meters are treated as barometric noise
const elevationChangeThreshold = 18

// New Create a track from the given gpx points
func New(pts *[]gpx.GPXPoint) *Track {
	gPts := make([]Point, len(*pts))
	for i, p := range *pts {
		gPts[i] = Point{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Elevation: p.Elevation.Value(),
			Time:      p.Timestamp,
		}
	}

	return &Track{
		Points:  gPts,
		segment: gpx.GPXTrackSegment{Points: *pts},
	}
}

// FromGPX builds a track out of the first segment of the first track
func FromGPX(g *gpx.GPX) *Track {
	if len(g.Tracks) == 0 || len(g.Tracks[0].Segments) == 0 {
		return New(&[]gpx.GPXPoint{})
	}
	return New(&g.Tracks[0].Segments[0].Points)
}

// Stats retrieves statistics from the track
func (t *Track) Stats() Stats {
	if len(t.Points) == 0 {
		return Stats{}
	}

	tb := t.segment.TimeBounds()
	gain, loss := t.elevationGainLoss(elevationChangeThreshold)

	return Stats{
		Points:         len(t.Points),
		Duration:       tb.EndTime.Sub(tb.StartTime),
		ElevationGain:  gain,
		ElevationLoss:  loss,
		StartElevation: t.Points[0].Elevation,
		EndElevation:   t.Points[len(t.Points)-1].Elevation,
		Distance:       Length(t.Points),
	}
}

// Bounds returns the boundaries of the track
func (t *Track) Bounds() Bounds {
	b := t.segment.Bounds()
	return Bounds{
		MinLat: b.MinLatitude,
		MinLng: b.MinLongitude,
		MaxLat: b.MaxLatitude,
		MaxLng: b.MaxLongitude,
	}
}

func (t *Track) elevationGainLoss(threshold float64) (float64, float64) {
	elevations := t.segment.Elevations()
	selectedElevations := []float64{}
	i := 0
	for _, e := range elevations {
		if e.NotNull() {
			if i == 0 || math.Abs(e.Value()-selectedElevations[i-1]) > threshold {
				selectedElevations = append(selectedElevations, e.Value())
				i++
			}
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selectedElevations); i++ {
		d := selectedElevations[i] - selectedElevations[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}
