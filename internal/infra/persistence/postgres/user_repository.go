package postgres

import (
	"context"
	"time"

	"reflourish/internal/domain/entity"
	"reflourish/internal/domain/repository"
	"reflourish/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user entity together with its role profile.
// GORM's Create with associations inserts the profile row alongside the
// user row.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a single user by their unique ID, preloading the role profile.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("StoreProfile").
		Preload("VolunteerProfile").
		Preload("FoodBankProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a single user by their email address, preloading the role profile.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("StoreProfile").
		Preload("VolunteerProfile").
		Preload("FoodBankProfile").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindVolunteers retrieves all volunteer users with their profiles.
func (repo *userRepository) FindVolunteers(ctx context.Context) ([]*entity.User, error) {
	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("VolunteerProfile").
		Where("role = ?", string(entity.RoleVolunteer)).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find volunteers")
	}

	users := make([]*entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, toUserDomain(m))
	}

	return users, nil
}

// CreditVolunteer adds points and hours to the volunteer's materialized
// counters. Only ever called inside the delivery settlement transaction,
// alongside the ledger append.
func (repo *userRepository) CreditVolunteer(ctx context.Context, volunteerID uuid.UUID, points int, hours float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VolunteerProfileModel{}).
		Where("user_id = ?", volunteerID).
		Updates(map[string]any{
			"points":      gorm.Expr("points + ?", points),
			"total_hours": gorm.Expr("total_hours + ?", hours),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to credit volunteer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeductVolunteerPoints subtracts points as a conditional update that only
// succeeds while the cached balance covers the deduction, so two concurrent
// redemptions can never overdraw.
func (repo *userRepository) DeductVolunteerPoints(ctx context.Context, volunteerID uuid.UUID, points int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VolunteerProfileModel{}).
		Where("user_id = ? AND points >= ?", volunteerID, points).
		Updates(map[string]any{
			"points":     gorm.Expr("points - ?", points),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deduct volunteer points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientPoints
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.StoreProfile != nil {
		user.StoreProfile = &entity.StoreProfile{
			UserID:    data.StoreProfile.UserID,
			Address:   data.StoreProfile.Address,
			Latitude:  data.StoreProfile.Latitude,
			Longitude: data.StoreProfile.Longitude,
			UpdatedAt: data.StoreProfile.UpdatedAt,
		}
	}
	if data.VolunteerProfile != nil {
		user.VolunteerProfile = &entity.VolunteerProfile{
			UserID:     data.VolunteerProfile.UserID,
			Points:     data.VolunteerProfile.Points,
			TotalHours: data.VolunteerProfile.TotalHours,
			UpdatedAt:  data.VolunteerProfile.UpdatedAt,
		}
	}
	if data.FoodBankProfile != nil {
		user.FoodBankProfile = &entity.FoodBankProfile{
			UserID:    data.FoodBankProfile.UserID,
			Address:   data.FoodBankProfile.Address,
			Latitude:  data.FoodBankProfile.Latitude,
			Longitude: data.FoodBankProfile.Longitude,
			UpdatedAt: data.FoodBankProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
	}

	if data.StoreProfile != nil {
		userM.StoreProfile = &model.StoreProfileModel{
			UserID:    data.StoreProfile.UserID,
			Address:   data.StoreProfile.Address,
			Latitude:  data.StoreProfile.Latitude,
			Longitude: data.StoreProfile.Longitude,
		}
	}
	if data.VolunteerProfile != nil {
		userM.VolunteerProfile = &model.VolunteerProfileModel{
			UserID:     data.VolunteerProfile.UserID,
			Points:     data.VolunteerProfile.Points,
			TotalHours: data.VolunteerProfile.TotalHours,
		}
	}
	if data.FoodBankProfile != nil {
		userM.FoodBankProfile = &model.FoodBankProfileModel{
			UserID:    data.FoodBankProfile.UserID,
			Address:   data.FoodBankProfile.Address,
			Latitude:  data.FoodBankProfile.Latitude,
			Longitude: data.FoodBankProfile.Longitude,
		}
	}

	return userM
}
