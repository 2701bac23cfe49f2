package directions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateWalkingTime(t *testing.T) {
	tests := []struct {
		distance float64
		want     string
	}{
		{0, "0 seconds"},
		{100, "7 seconds"},
		{573.6, "41 seconds"},
		{839, "60 seconds"},
		{840, "1m 0s"},
		{1000, "1m 11s"},
		{1676, "2m 0s"},
		{8400, "10m 0s"},
		{-50, "0 seconds"},
		{math.NaN(), "0 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateWalkingTime(tt.distance))
		})
	}
}
