package repository

import (
	"context"

	"reflourish/internal/domain/entity"
	"reflourish/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInsufficientPoints is returned when a conditional point deduction
	// would drive a volunteer's balance negative.
	ErrInsufficientPoints = errors.New("insufficient point balance")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user together with its role profile.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user (with role profile) by ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user (with role profile) by email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindVolunteers retrieves all volunteer users with their profiles.
	FindVolunteers(ctx context.Context) ([]*entity.User, error)

	// CreditVolunteer adds points and hours to a volunteer's materialized
	// balance. Only ever called alongside a ledger append, inside the same
	// transaction.
	CreditVolunteer(ctx context.Context, volunteerID uuid.UUID, points int, hours float64) error

	// DeductVolunteerPoints subtracts points from a volunteer's balance as
	// a conditional update that only succeeds while the balance covers the
	// deduction. Returns ErrInsufficientPoints otherwise.
	DeductVolunteerPoints(ctx context.Context, volunteerID uuid.UUID, points int) error
}
