package postgres

import (
	"context"

	"reflourish/internal/domain/entity"
	"reflourish/internal/domain/repository"
	"reflourish/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ledgerRepository implements the domain.LedgerRepository interface using GORM.
// Append-only: the table is never updated or deleted from.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// AppendEntry persists a new immutable ledger entry.
func (repo *ledgerRepository) AppendEntry(ctx context.Context, entry *entity.LedgerEntry) error {
	entryM := fromLedgerDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to append ledger entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindEntriesByUser retrieves all entries for a user, newest first.
func (repo *ledgerRepository) FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var models []*model.LedgerEntryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ledger entries by user")
	}

	return toLedgerDomains(models), nil
}

// FindEntriesByUserAndKind retrieves a user's entries of one kind, newest first.
func (repo *ledgerRepository) FindEntriesByUserAndKind(ctx context.Context, userID uuid.UUID, kind entity.TransactionKind) ([]*entity.LedgerEntry, error) {
	var models []*model.LedgerEntryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ledger entries by user and kind")
	}

	return toLedgerDomains(models), nil
}

// SumPointsByUser returns the sum of all point deltas for a user.
func (repo *ledgerRepository) SumPointsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var sum int64
	err := repo.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_change), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum ledger points by user")
	}

	return int(sum), nil
}

// CountEntriesByPackage counts entries referencing a package.
func (repo *ledgerRepository) CountEntriesByPackage(ctx context.Context, packageID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LedgerEntryModel{}).
		Where("package_id = ?", packageID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count ledger entries by package")
	}

	return count, nil
}

// --- Mapper Functions ---

func toLedgerDomain(data *model.LedgerEntryModel) *entity.LedgerEntry {
	if data == nil {
		return nil
	}

	return &entity.LedgerEntry{
		ID:           data.ID,
		UserID:       data.UserID,
		PackageID:    data.PackageID,
		PointsChange: data.PointsChange,
		Kind:         entity.TransactionKind(data.Kind),
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
	}
}

func toLedgerDomains(models []*model.LedgerEntryModel) []*entity.LedgerEntry {
	entries := make([]*entity.LedgerEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, toLedgerDomain(m))
	}

	return entries
}

func fromLedgerDomain(data *entity.LedgerEntry) *model.LedgerEntryModel {
	if data == nil {
		return nil
	}

	return &model.LedgerEntryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		PackageID:    data.PackageID,
		PointsChange: data.PointsChange,
		Kind:         string(data.Kind),
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
	}
}
