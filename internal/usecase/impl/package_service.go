// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"reflourish/config"
	deliverycontext "reflourish/internal/delivery/context"
	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/geo"
	"reflourish/internal/domain/repository"
	"reflourish/internal/domain/service"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// volunteersTopic is the FCM topic volunteer devices subscribe to for
// new-package announcements.
const volunteersTopic = "volunteers"

// packageService implements the PackageUsecase interface: the lifecycle
// engine owning every package status transition.
type packageService struct {
	txManager   repository.TransactionManager
	packageRepo repository.PackageRepository
	userRepo    repository.UserRepository
	ledgerRepo  repository.LedgerRepository
	qrcodeSvc   service.QRCodeService
	pinPolicy   service.PINAttemptPolicy
	notifier    service.NotificationService
	cfg         *config.Config
	logger      *slog.Logger
}

// PackageServiceParams holds dependencies for PackageService, injected by Fx.
type PackageServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PackageRepo repository.PackageRepository
	UserRepo    repository.UserRepository
	LedgerRepo  repository.LedgerRepository
	QRCodeSvc   service.QRCodeService
	PINPolicy   service.PINAttemptPolicy    `optional:"true"`
	Notifier    service.NotificationService `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPackageService is the constructor for packageService.
func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	return &packageService{
		txManager:   params.TxManager,
		packageRepo: params.PackageRepo,
		userRepo:    params.UserRepo,
		ledgerRepo:  params.LedgerRepo,
		qrcodeSvc:   params.QRCodeSvc,
		pinPolicy:   params.PINPolicy,
		notifier:    params.Notifier,
		cfg:         params.Config,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *packageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreatePackage validates and persists a new pending package for a store.
func (s *packageService) CreatePackage(ctx context.Context, storeID uuid.UUID, input *usecase.CreatePackageInput) (*entity.Package, error) {
	if input.WeightKg <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("weight must be positive")
	}
	if input.Category == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category is required")
	}
	if !input.WindowStart.Before(input.WindowEnd) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pickup window start must be before its end")
	}

	pin, err := generatePIN()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate handoff PIN")
	}

	pkg := &entity.Package{
		ID:           uuid.New(),
		StoreID:      storeID,
		Status:       entity.StatusPending,
		PickupPIN:    pin,
		WeightKg:     input.WeightKg,
		Category:     input.Category,
		WindowStart:  input.WindowStart,
		WindowEnd:    input.WindowEnd,
		Instructions: input.Instructions,
		CreatedAt:    time.Now(),
	}

	if err := s.packageRepo.CreatePackage(ctx, pkg); err != nil {
		return nil, errors.Wrap(err, "failed to create package")
	}

	s.log(ctx).Info("Package created",
		slog.Any("packageID", pkg.ID),
		slog.Any("storeID", storeID),
		slog.String("category", pkg.Category),
	)

	s.announcePackage(ctx, pkg)

	return pkg, nil
}

// announcePackage pushes a best-effort "new package" notification to the
// volunteers topic. Failures are logged, never surfaced: the package is
// already persisted and visible to availability queries.
func (s *packageService) announcePackage(ctx context.Context, pkg *entity.Package) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.SendTopicNotification(ctx, volunteersTopic,
		"New package available",
		fmt.Sprintf("%.1f kg of %s is waiting for pickup", pkg.WeightKg, pkg.Category),
		map[string]string{"package_id": pkg.ID.String()},
	)
	if err != nil {
		s.log(ctx).Warn("Failed to announce package", slog.Any("packageID", pkg.ID), slog.Any("error", err))
	}
}

// GetPackage retrieves one package by ID.
func (s *packageService) GetPackage(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	return pkg, nil
}

// ListAvailable returns pending packages matching the filter. Distance,
// points and hours are computed per-request from the caller's position and
// are advisory only; nothing is persisted here.
func (s *packageService) ListAvailable(ctx context.Context, filter *usecase.AvailableFilter) ([]*usecase.AvailablePackage, error) {
	pending, err := s.packageRepo.FindPendingPackages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending packages")
	}

	radius := filter.RadiusKm
	if radius <= 0 {
		radius = s.cfg.Delivery.DefaultRadiusKm
	}
	if radius > s.cfg.Delivery.MaxRadiusKm {
		radius = s.cfg.Delivery.MaxRadiusKm
	}

	results := make([]*usecase.AvailablePackage, 0, len(pending))
	for _, pkg := range pending {
		if filter.Category != "" && pkg.Category != filter.Category {
			continue
		}

		store, err := s.findStore(ctx, pkg.StoreID)
		if err != nil {
			s.log(ctx).Warn("Skipping package with unresolvable store",
				slog.Any("packageID", pkg.ID), slog.Any("storeID", pkg.StoreID), slog.Any("error", err))

			continue
		}

		result := &usecase.AvailablePackage{
			Package:      pkg,
			StoreName:    store.Name,
			StoreAddress: store.StoreProfile.Address,
		}

		if filter.Latitude != nil && filter.Longitude != nil {
			km := geo.DistanceKm(*filter.Latitude, *filter.Longitude,
				store.StoreProfile.Latitude, store.StoreProfile.Longitude)
			if km > radius {
				continue
			}

			result.DistanceKm = km
			result.AdvisoryPoints = geo.PointsForDistance(km)
			result.AdvisoryHours = geo.EstimatedHours(km, s.cfg.Delivery.AvgSpeedKmh)
		}

		// Min-points is advisory like the figures it compares against:
		// without a caller location nothing is computed, so nothing is
		// filtered.
		if filter.MinPoints > 0 && filter.Latitude != nil && result.AdvisoryPoints < filter.MinPoints {
			continue
		}

		results = append(results, result)
	}

	return results, nil
}

// ListMine returns the caller's packages according to their role.
func (s *packageService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Package, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	switch user.Role {
	case entity.RoleStore:
		pkgs, err := s.packageRepo.FindPackagesByStore(ctx, userID)

		return pkgs, errors.Wrap(err, "failed to find packages by store")
	case entity.RoleVolunteer:
		pkgs, err := s.packageRepo.FindPackagesByVolunteer(ctx, userID)

		return pkgs, errors.Wrap(err, "failed to find packages by volunteer")
	default:
		// Food bank operators see the pending queue awaiting claims.
		pkgs, err := s.packageRepo.FindPendingPackages(ctx)

		return pkgs, errors.Wrap(err, "failed to find pending packages")
	}
}

// Claim atomically reserves a pending package for a volunteer. The status
// pre-check below is a fast path only: the repository's conditional update
// is what guarantees that exactly one concurrent claimant wins.
func (s *packageService) Claim(ctx context.Context, packageID, volunteerID uuid.UUID, lat, lng float64) (*entity.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	if pkg.Status != entity.StatusPending {
		return nil, domainerrors.ErrPackageNotPending
	}

	store, err := s.findStore(ctx, pkg.StoreID)
	if err != nil {
		return nil, err
	}

	km := geo.DistanceKm(lat, lng, store.StoreProfile.Latitude, store.StoreProfile.Longitude)
	points := geo.PointsForDistance(km)
	hours := geo.EstimatedHours(km, s.cfg.Delivery.AvgSpeedKmh)

	handoff, err := s.qrcodeSvc.EncodeHandoff(&service.HandoffPayload{
		PackageID:   packageID,
		VolunteerID: volunteerID,
		Points:      points,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode handoff payload")
	}

	now := time.Now()
	update := &repository.ClaimUpdate{
		PackageID:    packageID,
		VolunteerID:  volunteerID,
		PointsValue:  points,
		EstimatedHrs: hours,
		HandoffData:  handoff,
		ClaimedAt:    now,
	}

	if err := s.packageRepo.ClaimPackage(ctx, update); err != nil {
		if errors.Is(err, repository.ErrPackageNotPending) {
			// Lost the race: another volunteer's conditional write landed first.
			return nil, domainerrors.ErrPackageNotPending
		}
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to claim package")
	}

	pkg.Status = entity.StatusAssigned
	pkg.VolunteerID = &volunteerID
	pkg.PointsValue = points
	pkg.EstimatedHrs = hours
	pkg.HandoffData = handoff
	pkg.ClaimedAt = &now

	s.log(ctx).Info("Package claimed",
		slog.Any("packageID", packageID),
		slog.Any("volunteerID", volunteerID),
		slog.Int("points", points),
	)

	return pkg, nil
}

// ConfirmPickup advances assigned → picked_up after the assigned volunteer
// proves physical presence at the store with the handoff PIN.
func (s *packageService) ConfirmPickup(ctx context.Context, packageID, volunteerID uuid.UUID, pin string) (*entity.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	if !pkg.IsAssignedTo(volunteerID) {
		return nil, domainerrors.ErrNotAssignedVolunteer
	}
	if pkg.Status != entity.StatusAssigned {
		return nil, domainerrors.ErrInvalidTransition
	}

	if err := s.verifyPIN(ctx, pkg, volunteerID, pin); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.packageRepo.MarkPickedUp(ctx, packageID, now); err != nil {
		if errors.Is(err, repository.ErrPackageStateConflict) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to mark package picked up")
	}

	pkg.Status = entity.StatusPickedUp
	pkg.PickedUpAt = &now

	s.log(ctx).Info("Package picked up", slog.Any("packageID", packageID), slog.Any("volunteerID", volunteerID))

	return pkg, nil
}

// ConfirmDelivery advances picked_up → completed and settles the incentive:
// one ledger credit plus the hours accrual, inside a single transaction with
// the status flip. The conditional status update inside the transaction is
// what makes a double credit impossible — the second confirmation finds the
// package already completed and nothing is written.
func (s *packageService) ConfirmDelivery(ctx context.Context, packageID, operatorID uuid.UUID, pin string) (*usecase.DeliveryResult, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	if pkg.Status != entity.StatusPickedUp {
		return nil, domainerrors.ErrInvalidTransition
	}
	if pkg.VolunteerID == nil {
		// Unreachable if the state machine held; fail loudly rather than credit nobody.
		return nil, domainerrors.ErrInternalError.WithDetails("picked up package has no volunteer")
	}
	volunteerID := *pkg.VolunteerID

	if err := s.verifyPIN(ctx, pkg, operatorID, pin); err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PackageRepo().MarkDelivered(ctx, packageID, operatorID, now); err != nil {
			if errors.Is(err, repository.ErrPackageStateConflict) {
				return domainerrors.ErrInvalidTransition
			}

			return errors.Wrap(err, "failed to mark package delivered")
		}

		entry := &entity.LedgerEntry{
			ID:           uuid.New(),
			UserID:       volunteerID,
			PackageID:    &packageID,
			PointsChange: pkg.PointsValue,
			Kind:         entity.KindDelivery,
			Description:  fmt.Sprintf("Delivered package %s", packageID),
			CreatedAt:    now,
		}
		if err := repoFactory.LedgerRepo().AppendEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to append delivery ledger entry")
		}

		if err := repoFactory.UserRepo().CreditVolunteer(ctx, volunteerID, pkg.PointsValue, pkg.EstimatedHrs); err != nil {
			return errors.Wrap(err, "failed to credit volunteer balance")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	pkg.Status = entity.StatusCompleted
	pkg.FoodBankID = &operatorID
	pkg.DeliveredAt = &now

	balance, err := s.ledgerRepo.SumPointsByUser(ctx, volunteerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum volunteer ledger")
	}

	s.log(ctx).Info("Package delivered",
		slog.Any("packageID", packageID),
		slog.Any("volunteerID", volunteerID),
		slog.Int("pointsAwarded", pkg.PointsValue),
	)

	return &usecase.DeliveryResult{
		Package:       pkg,
		VolunteerID:   volunteerID,
		PointsAwarded: pkg.PointsValue,
		HoursAccrued:  pkg.EstimatedHrs,
		NewBalance:    balance,
	}, nil
}

// ConfirmDeliveryScan resolves the package from a scanned handoff QR payload
// and runs the regular delivery confirmation against it. The PIN is still
// required: the QR only identifies the package, it never proves the handoff.
func (s *packageService) ConfirmDeliveryScan(ctx context.Context, operatorID uuid.UUID, scannedData, pin string) (*usecase.DeliveryResult, error) {
	payload, err := s.qrcodeSvc.ParseHandoff(scannedData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unrecognized handoff QR payload")
	}

	return s.ConfirmDelivery(ctx, payload.PackageID, operatorID, pin)
}

// Cancel withdraws a still-pending package.
func (s *packageService) Cancel(ctx context.Context, packageID, storeID uuid.UUID) error {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return domainerrors.ErrPackageNotFound
		}

		return errors.Wrap(err, "failed to find package by ID")
	}

	if pkg.StoreID != storeID {
		return domainerrors.ErrForbidden
	}

	if err := s.packageRepo.CancelPackage(ctx, packageID); err != nil {
		if errors.Is(err, repository.ErrPackageNotPending) {
			// A volunteer may already be en route; assigned and later
			// packages can never be withdrawn.
			return domainerrors.ErrInvalidTransition
		}

		return errors.Wrap(err, "failed to cancel package")
	}

	s.log(ctx).Info("Package cancelled", slog.Any("packageID", packageID), slog.Any("storeID", storeID))

	return nil
}

// HandoffQR renders the package's handoff QR code as a PNG.
func (s *packageService) HandoffQR(ctx context.Context, packageID uuid.UUID) ([]byte, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	if pkg.HandoffData == "" {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("handoff QR is issued when the package is claimed")
	}

	png, err := s.qrcodeSvc.RenderPNG(pkg.HandoffData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render handoff QR")
	}

	return png, nil
}

// verifyPIN runs the attempt-policy gate and the PIN comparison for both
// handoff confirmations.
func (s *packageService) verifyPIN(ctx context.Context, pkg *entity.Package, actorID uuid.UUID, pin string) error {
	if s.pinPolicy != nil && !s.pinPolicy.Allow(pkg.ID, actorID) {
		return domainerrors.ErrPINAttemptsExceeded
	}

	if !pkg.VerifyPIN(pin) {
		if s.pinPolicy != nil {
			s.pinPolicy.RecordFailure(pkg.ID, actorID)
		}
		s.log(ctx).Warn("Handoff PIN mismatch", slog.Any("packageID", pkg.ID), slog.Any("actorID", actorID))

		return domainerrors.ErrInvalidPIN
	}

	if s.pinPolicy != nil {
		s.pinPolicy.Reset(pkg.ID, actorID)
	}

	return nil
}

// findStore loads a user and ensures it carries a store profile.
func (s *packageService) findStore(ctx context.Context, storeID uuid.UUID) (*entity.User, error) {
	store, err := s.userRepo.FindUserByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}
	if store.StoreProfile == nil {
		return nil, domainerrors.ErrInternalError.WithDetails("package owner has no store profile")
	}

	return store, nil
}

// generatePIN draws a uniform 4-digit handoff PIN in [1000, 9999].
// Collisions across packages are acceptable: the PIN is scoped per package.
func generatePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%04d", 1000+n.Int64()), nil
}
