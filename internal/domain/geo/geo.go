// Package geo provides the pure distance and scoring functions that drive
// package matching and volunteer incentives.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DefaultAvgSpeedKmh is the assumed transport speed when estimating how long
// a delivery takes. 15 km/h approximates mixed bike/foot/transit trips.
const DefaultAvgSpeedKmh = 15.0

// MinPoints is the floor every delivery earns regardless of distance.
const MinPoints = 5

// PointsPerKm scales the reward proportionally to trip distance.
const PointsPerKm = 10

// DistanceKm returns the great-circle (haversine) distance in kilometers
// between two (latitude, longitude) pairs in decimal degrees. Identical
// points yield exactly 0; antipodal points are handled without error.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	if lat1 == lat2 && lng1 == lng2 {
		return 0
	}

	// orb points are (lon, lat).
	meters := orbgeo.DistanceHaversine(orb.Point{lng1, lat1}, orb.Point{lng2, lat2})

	return meters / 1000.0
}

// PointsForDistance converts a trip distance into reward points:
// max(5, floor(10 × km)). The floor guarantees even trivial trips net an
// incentive, while longer trips pay proportionally more.
func PointsForDistance(km float64) int {
	points := int(math.Floor(km * PointsPerKm))
	if points < MinPoints {
		return MinPoints
	}

	return points
}

// EstimatedHours converts a trip distance into transport hours at the given
// average speed, rounded to 2 decimal places. A non-positive speed falls
// back to DefaultAvgSpeedKmh.
func EstimatedHours(km, avgSpeedKmh float64) float64 {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = DefaultAvgSpeedKmh
	}

	return math.Round(km/avgSpeedKmh*100) / 100
}
