package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"reflourish/config"
	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	mockRepo "reflourish/internal/mocks/repository"
	mockSvc "reflourish/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// racingPackageRepo is an in-memory PackageRepository honoring the same
// conditional-update semantics as the SQL implementation: a claim only
// lands while the stored status is still pending.
type racingPackageRepo struct {
	mu  sync.Mutex
	pkg *entity.Package
}

func (r *racingPackageRepo) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pkg = pkg

	return nil
}

func (r *racingPackageRepo) FindPackageByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pkg == nil || r.pkg.ID != id {
		return nil, repository.ErrPackageNotFound
	}
	snapshot := *r.pkg

	return &snapshot, nil
}

func (r *racingPackageRepo) ClaimPackage(ctx context.Context, update *repository.ClaimUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pkg == nil || r.pkg.ID != update.PackageID {
		return repository.ErrPackageNotFound
	}
	if r.pkg.Status != entity.StatusPending {
		return repository.ErrPackageNotPending
	}

	volunteerID := update.VolunteerID
	claimedAt := update.ClaimedAt
	r.pkg.Status = entity.StatusAssigned
	r.pkg.VolunteerID = &volunteerID
	r.pkg.PointsValue = update.PointsValue
	r.pkg.EstimatedHrs = update.EstimatedHrs
	r.pkg.HandoffData = update.HandoffData
	r.pkg.ClaimedAt = &claimedAt

	return nil
}

func (r *racingPackageRepo) FindPendingPackages(ctx context.Context) ([]*entity.Package, error) {
	return nil, nil
}

func (r *racingPackageRepo) FindPackagesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Package, error) {
	return nil, nil
}

func (r *racingPackageRepo) FindPackagesByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Package, error) {
	return nil, nil
}

func (r *racingPackageRepo) MarkPickedUp(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repository.ErrPackageStateConflict
}

func (r *racingPackageRepo) MarkDelivered(ctx context.Context, id, foodBankID uuid.UUID, at time.Time) error {
	return repository.ErrPackageStateConflict
}

func (r *racingPackageRepo) CancelPackage(ctx context.Context, id uuid.UUID) error {
	return repository.ErrPackageNotPending
}

func (r *racingPackageRepo) CountByVolunteerAndStatuses(ctx context.Context, volunteerID uuid.UUID, statuses ...entity.PackageStatus) (int64, error) {
	return 0, nil
}

func (r *racingPackageRepo) FindCompletedBetween(ctx context.Context, from, to time.Time) ([]*entity.Package, error) {
	return nil, nil
}

func TestPackageService_Claim_ConcurrentExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	packageID := uuid.New()
	storeID := uuid.New()

	pkgRepo := &racingPackageRepo{pkg: &entity.Package{
		ID:      packageID,
		StoreID: storeID,
		Status:  entity.StatusPending,
	}}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().
		FindUserByID(mock.Anything, storeID).
		Return(testStore(storeID, 0, 0), nil)

	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	qrcodeSvc.EXPECT().
		EncodeHandoff(mock.AnythingOfType("*service.HandoffPayload")).
		Return("encoded", nil)

	service := NewPackageService(PackageServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		PackageRepo: pkgRepo,
		UserRepo:    userRepo,
		LedgerRepo:  mockRepo.NewMockLedgerRepository(t),
		QRCodeSvc:   qrcodeSvc,
		Config: &config.Config{Delivery: &config.DeliveryConfig{
			AvgSpeedKmh:     15,
			DefaultRadiusKm: 10,
			MaxRadiusKm:     50,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	const claimants = 8
	volunteerIDs := make([]uuid.UUID, claimants)
	errs := make([]error, claimants)
	var wg sync.WaitGroup
	var start sync.WaitGroup
	start.Add(1)

	for i := range claimants {
		volunteerIDs[i] = uuid.New()
		wg.Add(1)
		go func() {
			defer wg.Done()
			start.Wait()
			_, errs[i] = service.Claim(ctx, packageID, volunteerIDs[i], 0, 0.01)
		}()
	}

	start.Done()
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrPackageNotPending)
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent claimant must win")

	final, err := pkgRepo.FindPackageByID(ctx, packageID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, final.Status)
	require.NotNil(t, final.VolunteerID)
}
