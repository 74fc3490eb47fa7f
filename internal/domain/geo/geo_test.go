package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(42.3601, -71.0589, 42.3601, -71.0589))
}

func TestDistanceKm_OneTenthDegreeOfLongitudeAtEquator(t *testing.T) {
	// 0.1° of longitude at the equator is about 11.1 km.
	km := DistanceKm(0, 0, 0, 0.1)
	assert.InDelta(t, 11.1, km, 0.05)
}

func TestDistanceKm_Antipodal(t *testing.T) {
	// Half the Earth's circumference, roughly 20015 km.
	km := DistanceKm(0, 0, 0, 180)
	assert.InDelta(t, 20015, km, 50)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(42.3601, -71.0589, 42.3736, -71.1189)
	b := DistanceKm(42.3736, -71.1189, 42.3601, -71.0589)
	assert.InDelta(t, a, b, 1e-9)
}

func TestPointsForDistance_Floor(t *testing.T) {
	assert.Equal(t, 5, PointsForDistance(0))
	assert.Equal(t, 5, PointsForDistance(0.49))
	assert.Equal(t, 5, PointsForDistance(0.5))
	assert.Equal(t, 6, PointsForDistance(0.61))
}

func TestPointsForDistance_Proportional(t *testing.T) {
	assert.Equal(t, 111, PointsForDistance(11.1))
	assert.Equal(t, 25, PointsForDistance(2.55))
}

func TestPointsForDistance_Monotonic(t *testing.T) {
	distances := []float64{0, 0.2, 0.5, 1, 2.5, 5, 11.1, 42, 100}
	prev := -1
	for _, d := range distances {
		p := PointsForDistance(d)
		assert.GreaterOrEqual(t, p, prev, "points must not decrease with distance %f", d)
		prev = p
	}
}

func TestEstimatedHours(t *testing.T) {
	assert.InDelta(t, 0.74, EstimatedHours(11.1, 15), 1e-9)
	assert.InDelta(t, 1.0, EstimatedHours(15, 15), 1e-9)
	assert.InDelta(t, 0.0, EstimatedHours(0, 15), 1e-9)
}

func TestEstimatedHours_DefaultSpeedFallback(t *testing.T) {
	assert.Equal(t, EstimatedHours(30, DefaultAvgSpeedKmh), EstimatedHours(30, 0))
	assert.Equal(t, EstimatedHours(30, DefaultAvgSpeedKmh), EstimatedHours(30, -1))
}
