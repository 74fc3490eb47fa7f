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

// packageRepository implements the domain.PackageRepository interface using GORM.
//
// Every transition method is one conditional UPDATE whose WHERE clause
// re-checks the expected pre-state. RowsAffected == 0 means some other
// writer got there first (or the row does not exist); the follow-up read
// only disambiguates which of the two it was.
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

// CreatePackage persists a new package with status pending.
func (repo *packageRepository) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	pkgM := fromPackageDomain(pkg)

	if err := repo.db.WithContext(ctx).Create(pkgM).Error; err != nil {
		return errors.Wrap(err, "failed to create package")
	}

	pkg.CreatedAt = pkgM.CreatedAt

	return nil
}

// FindPackageByID retrieves a package by its unique ID.
func (repo *packageRepository) FindPackageByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	var pkgM model.PackageModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&pkgM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by id")
	}

	return toPackageDomain(&pkgM), nil
}

// FindPendingPackages retrieves all packages currently visible to volunteers.
func (repo *packageRepository) FindPendingPackages(ctx context.Context) ([]*entity.Package, error) {
	var models []*model.PackageModel
	err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.StatusPending)).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending packages")
	}

	return toPackageDomains(models), nil
}

// FindPackagesByStore retrieves all packages offered by a store.
func (repo *packageRepository) FindPackagesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Package, error) {
	var models []*model.PackageModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find packages by store")
	}

	return toPackageDomains(models), nil
}

// FindPackagesByVolunteer retrieves all packages ever claimed by a volunteer.
func (repo *packageRepository) FindPackagesByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Package, error) {
	var models []*model.PackageModel
	err := repo.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("claimed_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find packages by volunteer")
	}

	return toPackageDomains(models), nil
}

// ClaimPackage atomically assigns a pending package to a volunteer. The
// WHERE status = 'pending' guard is what resolves concurrent claims: only
// one UPDATE can match, every later one affects zero rows.
func (repo *packageRepository) ClaimPackage(ctx context.Context, update *repository.ClaimUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PackageModel{}).
		Where("id = ? AND status = ?", update.PackageID, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":        string(entity.StatusAssigned),
			"volunteer_id":  update.VolunteerID,
			"points_value":  update.PointsValue,
			"estimated_hrs": update.EstimatedHrs,
			"handoff_data":  update.HandoffData,
			"claimed_at":    update.ClaimedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim package")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMiss(ctx, update.PackageID, repository.ErrPackageNotPending)
	}

	return nil
}

// MarkPickedUp transitions assigned → picked_up with the given timestamp.
func (repo *packageRepository) MarkPickedUp(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PackageModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusAssigned)).
		Updates(map[string]any{
			"status":       string(entity.StatusPickedUp),
			"picked_up_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark package picked up")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMiss(ctx, id, repository.ErrPackageStateConflict)
	}

	return nil
}

// MarkDelivered transitions picked_up → completed, recording the receiving
// food bank and the delivery timestamp.
func (repo *packageRepository) MarkDelivered(ctx context.Context, id uuid.UUID, foodBankID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PackageModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPickedUp)).
		Updates(map[string]any{
			"status":       string(entity.StatusCompleted),
			"food_bank_id": foodBankID,
			"delivered_at": at,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark package delivered")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMiss(ctx, id, repository.ErrPackageStateConflict)
	}

	return nil
}

// CancelPackage transitions pending → cancelled.
func (repo *packageRepository) CancelPackage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PackageModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Update("status", string(entity.StatusCancelled))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to cancel package")
	}
	if result.RowsAffected == 0 {
		return repo.classifyMiss(ctx, id, repository.ErrPackageNotPending)
	}

	return nil
}

// CountByVolunteerAndStatuses counts a volunteer's packages in any of the given statuses.
func (repo *packageRepository) CountByVolunteerAndStatuses(ctx context.Context, volunteerID uuid.UUID, statuses ...entity.PackageStatus) (int64, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusStrings = append(statusStrings, string(status))
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PackageModel{}).
		Where("volunteer_id = ? AND status IN ?", volunteerID, statusStrings).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count packages by volunteer and statuses")
	}

	return count, nil
}

// FindCompletedBetween retrieves packages delivered within [from, to).
func (repo *packageRepository) FindCompletedBetween(ctx context.Context, from, to time.Time) ([]*entity.Package, error) {
	var models []*model.PackageModel
	err := repo.db.WithContext(ctx).
		Where("status = ? AND delivered_at >= ? AND delivered_at < ?", string(entity.StatusCompleted), from, to).
		Order("delivered_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find completed packages")
	}

	return toPackageDomains(models), nil
}

// classifyMiss distinguishes "row missing" from "row in the wrong state"
// after a conditional update affected zero rows.
func (repo *packageRepository) classifyMiss(ctx context.Context, id uuid.UUID, conflictErr error) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PackageModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check package existence")
	}
	if count == 0 {
		return repository.ErrPackageNotFound
	}

	return conflictErr
}

// --- Mapper Functions ---

// toPackageDomain converts a GORM PackageModel to a domain Package entity.
func toPackageDomain(data *model.PackageModel) *entity.Package {
	if data == nil {
		return nil
	}

	return &entity.Package{
		ID:           data.ID,
		StoreID:      data.StoreID,
		VolunteerID:  data.VolunteerID,
		FoodBankID:   data.FoodBankID,
		Status:       entity.PackageStatus(data.Status),
		PickupPIN:    data.PickupPIN,
		WeightKg:     data.WeightKg,
		Category:     data.Category,
		WindowStart:  data.WindowStart,
		WindowEnd:    data.WindowEnd,
		Instructions: data.Instructions,
		PointsValue:  data.PointsValue,
		EstimatedHrs: data.EstimatedHrs,
		HandoffData:  data.HandoffData,
		CreatedAt:    data.CreatedAt,
		ClaimedAt:    data.ClaimedAt,
		PickedUpAt:   data.PickedUpAt,
		DeliveredAt:  data.DeliveredAt,
	}
}

func toPackageDomains(models []*model.PackageModel) []*entity.Package {
	pkgs := make([]*entity.Package, 0, len(models))
	for _, m := range models {
		pkgs = append(pkgs, toPackageDomain(m))
	}

	return pkgs
}

// fromPackageDomain converts a domain Package entity to a GORM PackageModel.
func fromPackageDomain(data *entity.Package) *model.PackageModel {
	if data == nil {
		return nil
	}

	return &model.PackageModel{
		ID:           data.ID,
		StoreID:      data.StoreID,
		VolunteerID:  data.VolunteerID,
		FoodBankID:   data.FoodBankID,
		Status:       string(data.Status),
		PickupPIN:    data.PickupPIN,
		WeightKg:     data.WeightKg,
		Category:     data.Category,
		WindowStart:  data.WindowStart,
		WindowEnd:    data.WindowEnd,
		Instructions: data.Instructions,
		PointsValue:  data.PointsValue,
		EstimatedHrs: data.EstimatedHrs,
		HandoffData:  data.HandoffData,
		CreatedAt:    data.CreatedAt,
		ClaimedAt:    data.ClaimedAt,
		PickedUpAt:   data.PickedUpAt,
		DeliveredAt:  data.DeliveredAt,
	}
}
