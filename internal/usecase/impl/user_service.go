package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "reflourish/internal/delivery/context"
	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	"reflourish/internal/domain/service"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

func (s *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Register creates a new account with the role fixed by the registration
// endpoint. The role can never change afterwards.
func (s *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}
	if input.Role != entity.RoleVolunteer && input.Address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required for this role")
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch input.Role {
	case entity.RoleStore:
		user.StoreProfile = &entity.StoreProfile{
			UserID:    user.ID,
			Address:   input.Address,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			UpdatedAt: now,
		}
	case entity.RoleVolunteer:
		user.VolunteerProfile = &entity.VolunteerProfile{
			UserID:    user.ID,
			UpdatedAt: now,
		}
	case entity.RoleFoodBank:
		user.FoodBankProfile = &entity.FoodBankProfile{
			UserID:    user.ID,
			Address:   input.Address,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			UpdatedAt: now,
		}
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := s.tokenService.GenerateToken(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	s.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", string(user.Role)))

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// Login verifies credentials and issues an access token. The same error is
// returned for an unknown email and a wrong password.
func (s *userService) Login(ctx context.Context, email, password string) (*usecase.AuthOutput, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.passwordHasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// GetProfile retrieves the caller's account with its role profile.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}
