package impl

import (
	"context"
	"log/slog"
	"sort"

	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLeaderboardLimit = 10

// volunteerService implements the VolunteerUsecase interface.
type volunteerService struct {
	userRepo    repository.UserRepository
	packageRepo repository.PackageRepository
	logger      *slog.Logger
}

// VolunteerServiceParams holds dependencies for VolunteerService, injected by Fx.
type VolunteerServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	PackageRepo repository.PackageRepository
	Logger      *slog.Logger
}

// NewVolunteerService is the constructor for volunteerService.
func NewVolunteerService(params VolunteerServiceParams) usecase.VolunteerUsecase {
	return &volunteerService{
		userRepo:    params.UserRepo,
		packageRepo: params.PackageRepo,
		logger:      params.Logger,
	}
}

// Leaderboard ranks all volunteers by the requested key, highest first.
// Ties keep a stable order, so ranks are deterministic across calls.
func (s *volunteerService) Leaderboard(ctx context.Context, limit int, sortBy string) ([]*usecase.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	switch sortBy {
	case usecase.SortByPoints, usecase.SortByDeliveries, usecase.SortByHours:
	case "":
		sortBy = usecase.SortByPoints
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("sort key must be points, deliveries or hours")
	}

	volunteers, err := s.userRepo.FindVolunteers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find volunteers")
	}

	entries := make([]*usecase.LeaderboardEntry, 0, len(volunteers))
	for _, v := range volunteers {
		if v.VolunteerProfile == nil {
			continue
		}

		delivered, err := s.packageRepo.CountByVolunteerAndStatuses(ctx, v.ID, entity.StatusCompleted)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count completed deliveries")
		}

		entries = append(entries, &usecase.LeaderboardEntry{
			UserID:              v.ID,
			Name:                v.Name,
			Points:              v.VolunteerProfile.Points,
			TotalHours:          v.VolunteerProfile.TotalHours,
			DeliveriesCompleted: int(delivered),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		switch sortBy {
		case usecase.SortByDeliveries:
			return entries[i].DeliveriesCompleted > entries[j].DeliveriesCompleted
		case usecase.SortByHours:
			return entries[i].TotalHours > entries[j].TotalHours
		default:
			return entries[i].Points > entries[j].Points
		}
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}

// Stats returns a volunteer's aggregate activity counters.
func (s *volunteerService) Stats(ctx context.Context, volunteerID uuid.UUID) (*usecase.VolunteerStats, error) {
	user, err := s.userRepo.FindUserByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}
	if user.VolunteerProfile == nil {
		return nil, domainerrors.ErrForbidden
	}

	claimed, err := s.packageRepo.CountByVolunteerAndStatuses(ctx, volunteerID,
		entity.StatusAssigned, entity.StatusPickedUp, entity.StatusCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count claimed packages")
	}

	pickedUp, err := s.packageRepo.CountByVolunteerAndStatuses(ctx, volunteerID,
		entity.StatusPickedUp, entity.StatusCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count picked up packages")
	}

	delivered, err := s.packageRepo.CountByVolunteerAndStatuses(ctx, volunteerID, entity.StatusCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed deliveries")
	}

	stats := &usecase.VolunteerStats{
		UserID:            volunteerID,
		Name:              user.Name,
		Points:            user.VolunteerProfile.Points,
		TotalHours:        user.VolunteerProfile.TotalHours,
		PackagesClaimed:   int(claimed),
		PackagesPickedUp:  int(pickedUp),
		PackagesDelivered: int(delivered),
	}
	if delivered > 0 {
		stats.AvgPointsPerDelivery = float64(stats.Points) / float64(delivered)
	}

	return stats, nil
}
