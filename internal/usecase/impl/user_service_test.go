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
	mockSvc "reflourish/internal/mocks/service"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:       userRepo,
		PasswordHasher: hasher,
		TokenService:   tokenService,
		Logger:         logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_VolunteerSuccess(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alex Chen",
		Email:    "alex@example.com",
		Password: "Password123!",
		Role:     entity.RoleVolunteer,
	}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleVolunteer, user.Role)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			require.NotNil(t, user.VolunteerProfile)
			assert.Zero(t, user.VolunteerProfile.Points)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), []string{"volunteer"}).
		Return("access_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestUserService_Register_StoreSuccess(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:      "Corner Bakery",
		Email:     "bakery@example.com",
		Password:  "Password123!",
		Role:      entity.RoleStore,
		Address:   "1 Main St",
		Latitude:  42.3601,
		Longitude: -71.0589,
	}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			require.NotNil(t, user.StoreProfile)
			assert.Equal(t, input.Address, user.StoreProfile.Address)
			assert.Equal(t, input.Latitude, user.StoreProfile.Latitude)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID"), []string{"store"}).
		Return("access_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStore, output.User.Role)
}

func TestUserService_Register_StoreWithoutAddress(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Corner Bakery",
		Email:    "bakery@example.com",
		Password: "Password123!",
		Role:     entity.RoleStore,
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "Password123!",
		Role:     entity.Role("admin"),
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alex Chen",
		Email:    "alex@example.com",
		Password: "Password123!",
		Role:     entity.RoleVolunteer,
	}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alex Chen",
		Email:    "alex@example.com",
		Password: "Password123!",
		Role:     entity.RoleVolunteer,
	}

	// Another registration with the same email landed between the
	// availability check and the insert; the unique constraint catches it.
	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alex@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleVolunteer,
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(userID, []string{"volunteer"}).
		Return("access_token", nil)

	output, err := fx.service.Login(ctx, user.Email, "Password123!")

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alex@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleVolunteer,
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, user.Email, "wrong")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, "ghost@example.com", "Password123!")

	require.Error(t, err)
	assert.Nil(t, output)
	// Indistinguishable from a wrong password on purpose.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
