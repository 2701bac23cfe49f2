package directions

import (
	"fmt"
	"math"
)

const (
	// WalkingSpeed is the assumed walking pace in meters per second.
	WalkingSpeed = 1.4

	// UnitsPerMeter converts map units into meters.
	UnitsPerMeter = 10.0
)

// EstimateWalkingTime formats the time needed to walk distance map units:
// "N seconds" below one minute, "Mm Ss" otherwise.
func EstimateWalkingTime(distance float64) string {
	if math.IsNaN(distance) || distance < 0 {
		distance = 0
	}
	seconds := distance / UnitsPerMeter / WalkingSpeed

	if seconds < 60 {
		return fmt.Sprintf("%d seconds", int64(math.Round(seconds)))
	}

	minutes := int64(math.Floor(seconds / 60))
	rest := int64(math.Round(math.Mod(seconds, 60)))
	if rest == 60 {
		minutes++
		rest = 0
	}
	return fmt.Sprintf("%dm %ds", minutes, rest)
}
