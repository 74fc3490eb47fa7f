package usecase

import (
	"context"

	"github.com/google/uuid"
)

// LeaderboardEntry is one ranked row of the volunteer leaderboard.
type LeaderboardEntry struct {
	UserID              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	Points              int       `json:"points"`
	TotalHours          float64   `json:"total_hours"`
	DeliveriesCompleted int       `json:"deliveries_completed"`
	Rank                int       `json:"rank"`
}

// VolunteerStats is a volunteer's aggregate activity view.
type VolunteerStats struct {
	UserID               uuid.UUID `json:"user_id"`
	Name                 string    `json:"name"`
	Points               int       `json:"points"`
	TotalHours           float64   `json:"total_hours"`
	PackagesClaimed      int       `json:"packages_claimed"`
	PackagesPickedUp     int       `json:"packages_picked_up"`
	PackagesDelivered    int       `json:"packages_delivered"`
	AvgPointsPerDelivery float64   `json:"average_points_per_delivery"`
}

// Leaderboard sort keys.
const (
	SortByPoints     = "points"
	SortByDeliveries = "deliveries"
	SortByHours      = "hours"
)

// VolunteerUsecase exposes volunteer-facing aggregate views.
type VolunteerUsecase interface {
	// Leaderboard ranks volunteers by the given key, highest first.
	Leaderboard(ctx context.Context, limit int, sortBy string) ([]*LeaderboardEntry, error)

	// Stats returns a volunteer's own activity counters.
	Stats(ctx context.Context, volunteerID uuid.UUID) (*VolunteerStats, error)
}
