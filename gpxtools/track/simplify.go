package track

import (
	"errors"
	"math"
)

// ErrInvalidThreshold is returned when the distance threshold is negative or not a number
var ErrInvalidThreshold = errors.New("threshold must be a non-negative number of meters")

// Simplified holds the outcome of a track simplification
type Simplified[P LatLng] struct {
	Points  []P // retained points, in their original order
	Total   int // number of input points
	Removed int // number of points dropped
}

// Simplify drops every point closer than thresholdMeters to the point right
// before it in the input. The comparison is always made against the original
// predecessor, whether or not that predecessor was kept, and the first point
// is never dropped. The input slice is left untouched.
func Simplify[P LatLng](points []P, thresholdMeters float64) (Simplified[P], error) {
	if err := ValidateThreshold(thresholdMeters); err != nil {
		return Simplified[P]{}, err
	}

	kept := make([]P, 0, len(points))
	for i, p := range points {
		if i > 0 && Distance(p, points[i-1]) < thresholdMeters {
			continue
		}
		kept = append(kept, p)
	}

	return Simplified[P]{
		Points:  kept,
		Total:   len(points),
		Removed: len(points) - len(kept),
	}, nil
}

// ValidateThreshold checks that thresholdMeters can be used to simplify a track
func ValidateThreshold(thresholdMeters float64) error {
	if thresholdMeters < 0 || math.IsNaN(thresholdMeters) {
		return ErrInvalidThreshold
	}
	return nil
}
