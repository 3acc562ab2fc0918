package convert

import (
	"math"
	"strconv"
	"time"
)

// seriously US?
const feetToMeter = 3.28084

const metersInMile = 1609.344

// ToFeet returns the given distance in meters to feet
// because we live in the US, and this country is still using the deprecated imperial
// system instead of the metric system like the rest of the world.
func ToFeet(meters float64) float64 {
	return meters * feetToMeter
}

// ToMiles returns the given distance in meters to miles
func ToMiles(meters float64) float64 {
	return meters / metersInMile
}

// ToKilometers returns the given distance in meters to kilometers
func ToKilometers(meters float64) float64 {
	return meters / 1000
}

// ToDaysHoursMin splits a duration in days, hours and minutes. Negative durations give zeros.
func ToDaysHoursMin(d time.Duration) (int, int, int) {
	if d <= 0 {
		return 0, 0, 0
	}

	minutes := int(d / time.Minute)
	return minutes / (24 * 60), (minutes / 60) % 24, minutes % 60
}

// Ftoan formats a float rounded to the nearest integer
func Ftoan(f float64) string {
	return strconv.Itoa(int(math.Round(f)))
}
