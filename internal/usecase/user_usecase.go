package usecase

import (
	"context"

	"reflourish/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the fields for a new account. Address and
// coordinates are required for stores and food banks; volunteers supply
// their location per request instead.
type RegisterInput struct {
	Name      string      `json:"name" validate:"required"`
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=8"`
	Role      entity.Role `json:"-"`
	Address   string      `json:"address"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}

// AuthOutput is the result of a successful registration or login.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// UserUsecase exposes account registration, login and profile lookup.
type UserUsecase interface {
	// Register creates a new account with the given fixed role.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (*AuthOutput, error)

	// GetProfile retrieves the caller's account with its role profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
