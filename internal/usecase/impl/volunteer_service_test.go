package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	mockRepo "reflourish/internal/mocks/repository"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// volunteerServiceFixtures holds all test dependencies for volunteer service tests.
type volunteerServiceFixtures struct {
	service     usecase.VolunteerUsecase
	userRepo    *mockRepo.MockUserRepository
	packageRepo *mockRepo.MockPackageRepository
}

func createTestVolunteerService(t *testing.T) volunteerServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	packageRepo := mockRepo.NewMockPackageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewVolunteerService(VolunteerServiceParams{
		UserRepo:    userRepo,
		PackageRepo: packageRepo,
		Logger:      logger,
	})

	return volunteerServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		packageRepo: packageRepo,
	}
}

func testVolunteer(name string, points int, hours float64) *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:   id,
		Name: name,
		Role: entity.RoleVolunteer,
		VolunteerProfile: &entity.VolunteerProfile{
			UserID:     id,
			Points:     points,
			TotalHours: hours,
		},
	}
}

func TestVolunteerService_Leaderboard_SortByPoints(t *testing.T) {
	fx := createTestVolunteerService(t)

	ctx := context.Background()
	first := testVolunteer("First", 300, 2)
	second := testVolunteer("Second", 200, 9)
	third := testVolunteer("Third", 100, 5)

	fx.userRepo.EXPECT().
		FindVolunteers(ctx).
		Return([]*entity.User{third, first, second}, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, third.ID, entity.StatusCompleted).Return(1, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, first.ID, entity.StatusCompleted).Return(3, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, second.ID, entity.StatusCompleted).Return(2, nil)

	entries, err := fx.service.Leaderboard(ctx, 10, usecase.SortByPoints)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Second", entries[1].Name)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "Third", entries[2].Name)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestVolunteerService_Leaderboard_SortByHours(t *testing.T) {
	fx := createTestVolunteerService(t)

	ctx := context.Background()
	busiest := testVolunteer("Busiest", 100, 9)
	other := testVolunteer("Other", 300, 2)

	fx.userRepo.EXPECT().
		FindVolunteers(ctx).
		Return([]*entity.User{other, busiest}, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, other.ID, entity.StatusCompleted).Return(5, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, busiest.ID, entity.StatusCompleted).Return(4, nil)

	entries, err := fx.service.Leaderboard(ctx, 10, usecase.SortByHours)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Busiest", entries[0].Name)
}

func TestVolunteerService_Leaderboard_DefaultSortAndLimit(t *testing.T) {
	fx := createTestVolunteerService(t)

	ctx := context.Background()
	volunteers := make([]*entity.User, 0, defaultLeaderboardLimit+2)
	for i := 0; i < defaultLeaderboardLimit+2; i++ {
		v := testVolunteer("Volunteer", i, 0)
		volunteers = append(volunteers, v)
		fx.packageRepo.EXPECT().
			CountByVolunteerAndStatuses(ctx, v.ID, entity.StatusCompleted).Return(0, nil)
	}

	fx.userRepo.EXPECT().FindVolunteers(ctx).Return(volunteers, nil)

	entries, err := fx.service.Leaderboard(ctx, 0, "")

	require.NoError(t, err)
	assert.Len(t, entries, defaultLeaderboardLimit)
	// Empty sort key defaults to points, highest first.
	assert.Equal(t, defaultLeaderboardLimit+1, entries[0].Points)
}

func TestVolunteerService_Leaderboard_InvalidSortKey(t *testing.T) {
	fx := createTestVolunteerService(t)

	entries, err := fx.service.Leaderboard(context.Background(), 10, "charisma")

	require.Error(t, err)
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVolunteerService_Stats_Success(t *testing.T) {
	fx := createTestVolunteerService(t)

	ctx := context.Background()
	volunteer := testVolunteer("Alex", 220, 4.5)

	fx.userRepo.EXPECT().FindUserByID(ctx, volunteer.ID).Return(volunteer, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, volunteer.ID,
			entity.StatusAssigned, entity.StatusPickedUp, entity.StatusCompleted).
		Return(6, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, volunteer.ID, entity.StatusPickedUp, entity.StatusCompleted).
		Return(5, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, volunteer.ID, entity.StatusCompleted).
		Return(4, nil)

	stats, err := fx.service.Stats(ctx, volunteer.ID)

	require.NoError(t, err)
	assert.Equal(t, 220, stats.Points)
	assert.InDelta(t, 4.5, stats.TotalHours, 1e-9)
	assert.Equal(t, 6, stats.PackagesClaimed)
	assert.Equal(t, 5, stats.PackagesPickedUp)
	assert.Equal(t, 4, stats.PackagesDelivered)
	assert.InDelta(t, 55.0, stats.AvgPointsPerDelivery, 1e-9)
}

func TestVolunteerService_Stats_NoDeliveries(t *testing.T) {
	fx := createTestVolunteerService(t)

	ctx := context.Background()
	volunteer := testVolunteer("Newbie", 0, 0)

	fx.userRepo.EXPECT().FindUserByID(ctx, volunteer.ID).Return(volunteer, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, volunteer.ID,
			entity.StatusAssigned, entity.StatusPickedUp, entity.StatusCompleted).
		Return(0, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, volunteer.ID, entity.StatusPickedUp, entity.StatusCompleted).
		Return(0, nil)
	fx.packageRepo.EXPECT().
		CountByVolunteerAndStatuses(ctx, volunteer.ID, entity.StatusCompleted).
		Return(0, nil)

	stats, err := fx.service.Stats(ctx, volunteer.ID)

	require.NoError(t, err)
	assert.Zero(t, stats.AvgPointsPerDelivery)
}

func TestVolunteerService_Stats_NotAVolunteer(t *testing.T) {
	fx := createTestVolunteerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleStore}, nil)

	stats, err := fx.service.Stats(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVolunteerService_Stats_UserNotFound(t *testing.T) {
	fx := createTestVolunteerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	stats, err := fx.service.Stats(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
