package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"reflourish/config"
	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	"reflourish/internal/domain/service"
	mockRepo "reflourish/internal/mocks/repository"
	mockSvc "reflourish/internal/mocks/service"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// packageServiceFixtures holds all test dependencies for package service tests.
type packageServiceFixtures struct {
	service     usecase.PackageUsecase
	txManager   *mockRepo.MockTransactionManager
	packageRepo *mockRepo.MockPackageRepository
	userRepo    *mockRepo.MockUserRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
	qrcodeSvc   *mockSvc.MockQRCodeService
	pinPolicy   *mockSvc.MockPINAttemptPolicy
}

func createTestPackageService(t *testing.T) packageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	packageRepo := mockRepo.NewMockPackageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	pinPolicy := mockSvc.NewMockPINAttemptPolicy(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Delivery: &config.DeliveryConfig{
			AvgSpeedKmh:     15,
			DefaultRadiusKm: 10,
			MaxRadiusKm:     50,
		},
	}

	service := NewPackageService(PackageServiceParams{
		TxManager:   txManager,
		PackageRepo: packageRepo,
		UserRepo:    userRepo,
		LedgerRepo:  ledgerRepo,
		QRCodeSvc:   qrcodeSvc,
		PINPolicy:   pinPolicy,
		Config:      cfg,
		Logger:      logger,
	})

	return packageServiceFixtures{
		service:     service,
		txManager:   txManager,
		packageRepo: packageRepo,
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		qrcodeSvc:   qrcodeSvc,
		pinPolicy:   pinPolicy,
	}
}

func testStore(storeID uuid.UUID, lat, lng float64) *entity.User {
	return &entity.User{
		ID:   storeID,
		Name: "Corner Bakery",
		Role: entity.RoleStore,
		StoreProfile: &entity.StoreProfile{
			UserID:    storeID,
			Address:   "1 Main St",
			Latitude:  lat,
			Longitude: lng,
		},
	}
}

func TestPackageService_CreatePackage_Success(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	storeID := uuid.New()
	input := &usecase.CreatePackageInput{
		WeightKg:    4.5,
		Category:    "bakery",
		WindowStart: time.Now().Add(time.Hour),
		WindowEnd:   time.Now().Add(3 * time.Hour),
	}

	fx.packageRepo.EXPECT().
		CreatePackage(ctx, mock.AnythingOfType("*entity.Package")).
		Return(nil)

	pkg, err := fx.service.CreatePackage(ctx, storeID, input)

	require.NoError(t, err)
	assert.Equal(t, storeID, pkg.StoreID)
	assert.Equal(t, entity.StatusPending, pkg.Status)
	assert.Len(t, pkg.PickupPIN, 4)
	assert.GreaterOrEqual(t, pkg.PickupPIN, "1000")
	assert.LessOrEqual(t, pkg.PickupPIN, "9999")
	assert.NotEqual(t, uuid.Nil, pkg.ID)
}

func TestPackageService_CreatePackage_ValidationFailures(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	storeID := uuid.New()
	start := time.Now().Add(time.Hour)
	end := start.Add(2 * time.Hour)

	cases := []struct {
		name  string
		input *usecase.CreatePackageInput
	}{
		{"zero weight", &usecase.CreatePackageInput{WeightKg: 0, Category: "produce", WindowStart: start, WindowEnd: end}},
		{"negative weight", &usecase.CreatePackageInput{WeightKg: -1, Category: "produce", WindowStart: start, WindowEnd: end}},
		{"missing category", &usecase.CreatePackageInput{WeightKg: 2, Category: "", WindowStart: start, WindowEnd: end}},
		{"inverted window", &usecase.CreatePackageInput{WeightKg: 2, Category: "produce", WindowStart: end, WindowEnd: start}},
		{"empty window", &usecase.CreatePackageInput{WeightKg: 2, Category: "produce", WindowStart: start, WindowEnd: start}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pkg, err := fx.service.CreatePackage(ctx, storeID, tc.input)

			require.Error(t, err)
			assert.Nil(t, pkg)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPackageService_Claim_Success(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	storeID := uuid.New()
	volunteerID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{ID: packageID, StoreID: storeID, Status: entity.StatusPending}, nil)

	// Store at the equator origin; the volunteer claims from 0.1 degrees of
	// longitude away, roughly 11.1 km.
	fx.userRepo.EXPECT().
		FindUserByID(ctx, storeID).
		Return(testStore(storeID, 0, 0), nil)

	fx.qrcodeSvc.EXPECT().
		EncodeHandoff(mock.AnythingOfType("*service.HandoffPayload")).
		Return(`{"handoff":"data"}`, nil)

	fx.packageRepo.EXPECT().
		ClaimPackage(ctx, mock.AnythingOfType("*repository.ClaimUpdate")).
		Run(func(ctx context.Context, update *repository.ClaimUpdate) {
			assert.Equal(t, packageID, update.PackageID)
			assert.Equal(t, volunteerID, update.VolunteerID)
			assert.Equal(t, 111, update.PointsValue)
			assert.InDelta(t, 0.74, update.EstimatedHrs, 1e-9)
		}).
		Return(nil)

	pkg, err := fx.service.Claim(ctx, packageID, volunteerID, 0, 0.1)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, pkg.Status)
	require.NotNil(t, pkg.VolunteerID)
	assert.Equal(t, volunteerID, *pkg.VolunteerID)
	assert.Equal(t, 111, pkg.PointsValue)
	assert.InDelta(t, 0.74, pkg.EstimatedHrs, 1e-9)
	assert.NotEmpty(t, pkg.HandoffData)
	assert.NotNil(t, pkg.ClaimedAt)
}

func TestPackageService_Claim_NotPending(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()
	otherVolunteer := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			StoreID:     uuid.New(),
			Status:      entity.StatusAssigned,
			VolunteerID: &otherVolunteer,
		}, nil)

	pkg, err := fx.service.Claim(ctx, packageID, volunteerID, 0, 0)

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotPending)
}

func TestPackageService_Claim_LostRace(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	storeID := uuid.New()
	volunteerID := uuid.New()

	// The read still sees pending, but the conditional update loses to a
	// concurrent claimant.
	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{ID: packageID, StoreID: storeID, Status: entity.StatusPending}, nil)
	fx.userRepo.EXPECT().
		FindUserByID(ctx, storeID).
		Return(testStore(storeID, 0, 0), nil)
	fx.qrcodeSvc.EXPECT().
		EncodeHandoff(mock.AnythingOfType("*service.HandoffPayload")).
		Return("encoded", nil)
	fx.packageRepo.EXPECT().
		ClaimPackage(ctx, mock.AnythingOfType("*repository.ClaimUpdate")).
		Return(repository.ErrPackageNotPending)

	pkg, err := fx.service.Claim(ctx, packageID, volunteerID, 0, 0.01)

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotPending)
}

func TestPackageService_ConfirmPickup_Success(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			Status:      entity.StatusAssigned,
			VolunteerID: &volunteerID,
			PickupPIN:   "4821",
		}, nil)

	fx.pinPolicy.EXPECT().Allow(packageID, volunteerID).Return(true)
	fx.pinPolicy.EXPECT().Reset(packageID, volunteerID).Return()

	fx.packageRepo.EXPECT().
		MarkPickedUp(ctx, packageID, mock.AnythingOfType("time.Time")).
		Return(nil)

	pkg, err := fx.service.ConfirmPickup(ctx, packageID, volunteerID, "4821")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPickedUp, pkg.Status)
	assert.NotNil(t, pkg.PickedUpAt)
}

func TestPackageService_ConfirmPickup_WrongVolunteer(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	assignedVolunteer := uuid.New()
	impostor := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			Status:      entity.StatusAssigned,
			VolunteerID: &assignedVolunteer,
			PickupPIN:   "4821",
		}, nil)

	pkg, err := fx.service.ConfirmPickup(ctx, packageID, impostor, "4821")

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, domainerrors.ErrNotAssignedVolunteer)
}

func TestPackageService_ConfirmPickup_WrongPIN(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			Status:      entity.StatusAssigned,
			VolunteerID: &volunteerID,
			PickupPIN:   "4821",
		}, nil)

	fx.pinPolicy.EXPECT().Allow(packageID, volunteerID).Return(true)
	fx.pinPolicy.EXPECT().RecordFailure(packageID, volunteerID).Return()

	pkg, err := fx.service.ConfirmPickup(ctx, packageID, volunteerID, "0000")

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPIN)
}

func TestPackageService_ConfirmPickup_AttemptsExceeded(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			Status:      entity.StatusAssigned,
			VolunteerID: &volunteerID,
			PickupPIN:   "4821",
		}, nil)

	fx.pinPolicy.EXPECT().Allow(packageID, volunteerID).Return(false)

	pkg, err := fx.service.ConfirmPickup(ctx, packageID, volunteerID, "4821")

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, domainerrors.ErrPINAttemptsExceeded)
}

func TestPackageService_ConfirmPickup_InvalidState(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			Status:      entity.StatusPickedUp,
			VolunteerID: &volunteerID,
			PickupPIN:   "4821",
		}, nil)

	pkg, err := fx.service.ConfirmPickup(ctx, packageID, volunteerID, "4821")

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPackageService_ConfirmDelivery_Success(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()
	operatorID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:           packageID,
			Status:       entity.StatusPickedUp,
			VolunteerID:  &volunteerID,
			PickupPIN:    "4821",
			PointsValue:  111,
			EstimatedHrs: 0.74,
		}, nil)

	fx.pinPolicy.EXPECT().Allow(packageID, operatorID).Return(true)
	fx.pinPolicy.EXPECT().Reset(packageID, operatorID).Return()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackageRepo := mockRepo.NewMockPackageRepository(t)
			mockLedgerRepo := mockRepo.NewMockLedgerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().PackageRepo().Return(mockPackageRepo)
			mockFactory.EXPECT().LedgerRepo().Return(mockLedgerRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockPackageRepo.EXPECT().
				MarkDelivered(ctx, packageID, operatorID, mock.AnythingOfType("time.Time")).
				Return(nil)

			mockLedgerRepo.EXPECT().
				AppendEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
				Run(func(ctx context.Context, entry *entity.LedgerEntry) {
					assert.Equal(t, volunteerID, entry.UserID)
					require.NotNil(t, entry.PackageID)
					assert.Equal(t, packageID, *entry.PackageID)
					assert.Equal(t, 111, entry.PointsChange)
					assert.Equal(t, entity.KindDelivery, entry.Kind)
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				CreditVolunteer(ctx, volunteerID, 111, 0.74).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.ledgerRepo.EXPECT().
		SumPointsByUser(ctx, volunteerID).
		Return(153, nil)

	result, err := fx.service.ConfirmDelivery(ctx, packageID, operatorID, "4821")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, result.Package.Status)
	assert.Equal(t, volunteerID, result.VolunteerID)
	assert.Equal(t, 111, result.PointsAwarded)
	assert.InDelta(t, 0.74, result.HoursAccrued, 1e-9)
	assert.Equal(t, 153, result.NewBalance)
	require.NotNil(t, result.Package.FoodBankID)
	assert.Equal(t, operatorID, *result.Package.FoodBankID)
}

func TestPackageService_ConfirmDelivery_AlreadyCompleted(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()
	operatorID := uuid.New()

	// A second confirmation finds the package already completed: no ledger
	// write ever happens, so the volunteer can never be credited twice.
	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			Status:      entity.StatusCompleted,
			VolunteerID: &volunteerID,
			PickupPIN:   "4821",
		}, nil)

	result, err := fx.service.ConfirmDelivery(ctx, packageID, operatorID, "4821")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPackageService_ConfirmDelivery_ConcurrentStateConflict(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()
	operatorID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:          packageID,
			Status:      entity.StatusPickedUp,
			VolunteerID: &volunteerID,
			PickupPIN:   "4821",
		}, nil)

	fx.pinPolicy.EXPECT().Allow(packageID, operatorID).Return(true)
	fx.pinPolicy.EXPECT().Reset(packageID, operatorID).Return()

	// The conditional update inside the transaction loses to a concurrent
	// confirmation; the whole transaction fails without any ledger write.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackageRepo := mockRepo.NewMockPackageRepository(t)

			mockFactory.EXPECT().PackageRepo().Return(mockPackageRepo)
			mockPackageRepo.EXPECT().
				MarkDelivered(ctx, packageID, operatorID, mock.AnythingOfType("time.Time")).
				Return(repository.ErrPackageStateConflict)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidTransition)

	result, err := fx.service.ConfirmDelivery(ctx, packageID, operatorID, "4821")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPackageService_ConfirmDeliveryScan_Success(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	volunteerID := uuid.New()
	operatorID := uuid.New()

	fx.qrcodeSvc.EXPECT().
		ParseHandoff("scanned-qr-data").
		Return(&service.HandoffPayload{
			PackageID:   packageID,
			VolunteerID: volunteerID,
			Points:      111,
		}, nil)

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{
			ID:           packageID,
			Status:       entity.StatusPickedUp,
			VolunteerID:  &volunteerID,
			PickupPIN:    "4821",
			PointsValue:  111,
			EstimatedHrs: 0.74,
		}, nil)

	fx.pinPolicy.EXPECT().Allow(packageID, operatorID).Return(true)
	fx.pinPolicy.EXPECT().Reset(packageID, operatorID).Return()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPackageRepo := mockRepo.NewMockPackageRepository(t)
			mockLedgerRepo := mockRepo.NewMockLedgerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().PackageRepo().Return(mockPackageRepo)
			mockFactory.EXPECT().LedgerRepo().Return(mockLedgerRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockPackageRepo.EXPECT().
				MarkDelivered(ctx, packageID, operatorID, mock.AnythingOfType("time.Time")).
				Return(nil)
			mockLedgerRepo.EXPECT().
				AppendEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
				Return(nil)
			mockUserRepo.EXPECT().
				CreditVolunteer(ctx, volunteerID, 111, 0.74).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.ledgerRepo.EXPECT().
		SumPointsByUser(ctx, volunteerID).
		Return(111, nil)

	result, err := fx.service.ConfirmDeliveryScan(ctx, operatorID, "scanned-qr-data", "4821")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, result.Package.Status)
	assert.Equal(t, 111, result.PointsAwarded)
}

func TestPackageService_ConfirmDeliveryScan_BadPayload(t *testing.T) {
	fx := createTestPackageService(t)

	fx.qrcodeSvc.EXPECT().
		ParseHandoff("not a handoff payload").
		Return(nil, errors.New("invalid handoff payload"))

	result, err := fx.service.ConfirmDeliveryScan(context.Background(), uuid.New(), "not a handoff payload", "4821")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPackageService_Cancel_Success(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	storeID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{ID: packageID, StoreID: storeID, Status: entity.StatusPending}, nil)
	fx.packageRepo.EXPECT().
		CancelPackage(ctx, packageID).
		Return(nil)

	err := fx.service.Cancel(ctx, packageID, storeID)

	require.NoError(t, err)
}

func TestPackageService_Cancel_NotOwner(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{ID: packageID, StoreID: uuid.New(), Status: entity.StatusPending}, nil)

	err := fx.service.Cancel(ctx, packageID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPackageService_Cancel_AlreadyClaimed(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()
	storeID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{ID: packageID, StoreID: storeID, Status: entity.StatusAssigned}, nil)
	fx.packageRepo.EXPECT().
		CancelPackage(ctx, packageID).
		Return(repository.ErrPackageNotPending)

	err := fx.service.Cancel(ctx, packageID, storeID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPackageService_HandoffQR_Unclaimed(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{ID: packageID, Status: entity.StatusPending}, nil)

	png, err := fx.service.HandoffQR(ctx, packageID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestPackageService_HandoffQR_Success(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(&entity.Package{ID: packageID, Status: entity.StatusAssigned, HandoffData: "encoded"}, nil)
	fx.qrcodeSvc.EXPECT().
		RenderPNG("encoded").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.HandoffQR(ctx, packageID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPackageService_GetPackage_NotFound(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(nil, repository.ErrPackageNotFound)

	pkg, err := fx.service.GetPackage(ctx, packageID)

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestPackageService_ListAvailable_FiltersAndAdvisoryFigures(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	nearStore := uuid.New()
	farStore := uuid.New()

	near := &entity.Package{ID: uuid.New(), StoreID: nearStore, Status: entity.StatusPending, Category: "produce"}
	far := &entity.Package{ID: uuid.New(), StoreID: farStore, Status: entity.StatusPending, Category: "produce"}
	wrongCategory := &entity.Package{ID: uuid.New(), StoreID: nearStore, Status: entity.StatusPending, Category: "bakery"}

	fx.packageRepo.EXPECT().
		FindPendingPackages(ctx).
		Return([]*entity.Package{near, far, wrongCategory}, nil)

	// The near store is ~1.1 km from the caller, the far one ~111 km and
	// outside the 10 km radius.
	fx.userRepo.EXPECT().FindUserByID(ctx, nearStore).Return(testStore(nearStore, 0, 0.01), nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, farStore).Return(testStore(farStore, 0, 1), nil)

	lat, lng := 0.0, 0.0
	results, err := fx.service.ListAvailable(ctx, &usecase.AvailableFilter{
		Latitude:  &lat,
		Longitude: &lng,
		RadiusKm:  10,
		Category:  "produce",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.ID, results[0].Package.ID)
	assert.InDelta(t, 1.11, results[0].DistanceKm, 0.05)
	assert.Equal(t, 11, results[0].AdvisoryPoints)
	assert.InDelta(t, 0.07, results[0].AdvisoryHours, 0.01)
}

func TestPackageService_ListAvailable_NoLocationSkipsDistance(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	storeID := uuid.New()
	pending := &entity.Package{ID: uuid.New(), StoreID: storeID, Status: entity.StatusPending, Category: "produce"}

	fx.packageRepo.EXPECT().
		FindPendingPackages(ctx).
		Return([]*entity.Package{pending}, nil)
	fx.userRepo.EXPECT().
		FindUserByID(ctx, storeID).
		Return(testStore(storeID, 40, -70), nil)

	results, err := fx.service.ListAvailable(ctx, &usecase.AvailableFilter{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].DistanceKm)
	assert.Zero(t, results[0].AdvisoryPoints)
}

func TestPackageService_ListAvailable_MinPointsWithoutLocation(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	storeID := uuid.New()
	pending := &entity.Package{ID: uuid.New(), StoreID: storeID, Status: entity.StatusPending, Category: "produce"}

	fx.packageRepo.EXPECT().
		FindPendingPackages(ctx).
		Return([]*entity.Package{pending}, nil)
	fx.userRepo.EXPECT().
		FindUserByID(ctx, storeID).
		Return(testStore(storeID, 40, -70), nil)

	// No location means no advisory points, so a min-points threshold has
	// nothing to compare against and must not empty the list.
	results, err := fx.service.ListAvailable(ctx, &usecase.AvailableFilter{MinPoints: 50})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, pending.ID, results[0].Package.ID)
	assert.Zero(t, results[0].AdvisoryPoints)
}

func TestPackageService_ListMine_ByRole(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	userID := uuid.New()
	pkgs := []*entity.Package{{ID: uuid.New()}}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleVolunteer}, nil)
	fx.packageRepo.EXPECT().
		FindPackagesByVolunteer(ctx, userID).
		Return(pkgs, nil)

	result, err := fx.service.ListMine(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, pkgs, result)
}

func TestPackageService_Claim_RepoError(t *testing.T) {
	fx := createTestPackageService(t)

	ctx := context.Background()
	packageID := uuid.New()

	fx.packageRepo.EXPECT().
		FindPackageByID(ctx, packageID).
		Return(nil, errors.New("connection reset"))

	pkg, err := fx.service.Claim(ctx, packageID, uuid.New(), 0, 0)

	require.Error(t, err)
	assert.Nil(t, pkg)
	assert.NotErrorIs(t, err, domainerrors.ErrPackageNotFound)
}
