package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"reflourish/internal/delivery/http/response"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PackageHandler holds dependencies for package lifecycle handlers.
type PackageHandler struct {
	uc     usecase.PackageUsecase
	logger *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler, injected by Fx.
func NewPackageHandler(uc usecase.PackageUsecase, logger *slog.Logger) *PackageHandler {
	return &PackageHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles a store posting a new surplus package.
func (h *PackageHandler) Create(c echo.Context) error {
	storeID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreatePackageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	pkg, err := h.uc.CreatePackage(c.Request().Context(), storeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The PIN is excluded from the entity's JSON; the store sees it once here.
	return response.Success(c, http.StatusCreated, map[string]any{
		"package":    pkg,
		"pickup_pin": pkg.PickupPIN,
	}, "Package created successfully")
}

// ListAvailable handles the volunteer-facing availability query.
func (h *PackageHandler) ListAvailable(c echo.Context) error {
	filter := &usecase.AvailableFilter{
		Category: c.QueryParam("category"),
	}

	if latStr := c.QueryParam("lat"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
		}
		filter.Latitude = &lat
	}
	if lngStr := c.QueryParam("lng"); lngStr != "" {
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
		}
		filter.Longitude = &lng
	}
	if (filter.Latitude == nil) != (filter.Longitude == nil) {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng must be provided together")
	}
	if radiusStr := c.QueryParam("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid radius")
		}
		filter.RadiusKm = radius
	}
	if minPointsStr := c.QueryParam("minPoints"); minPointsStr != "" {
		minPoints, err := strconv.Atoi(minPointsStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid minPoints")
		}
		filter.MinPoints = minPoints
	}

	packages, err := h.uc.ListAvailable(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, packages, "Available packages retrieved")
}

// Get handles retrieving one package by ID.
func (h *PackageHandler) Get(c echo.Context) error {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package ID")
	}

	pkg, err := h.uc.GetPackage(c.Request().Context(), packageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pkg, "Package retrieved")
}

// ListMine handles listing the caller's packages.
func (h *PackageHandler) ListMine(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	packages, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, packages, "Packages retrieved")
}

// ClaimInput is the request body for claiming a package.
type ClaimInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// Claim handles a volunteer claiming a pending package.
func (h *PackageHandler) Claim(c echo.Context) error {
	volunteerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package ID")
	}

	var input *ClaimInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	pkg, err := h.uc.Claim(c.Request().Context(), packageID, volunteerID, input.Latitude, input.Longitude)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pkg, "Package claimed successfully")
}

// PINInput is the request body for both handoff confirmations.
type PINInput struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}

// ConfirmPickup handles the store-side handoff: the assigned volunteer
// enters the package's PIN at pickup.
func (h *PackageHandler) ConfirmPickup(c echo.Context) error {
	volunteerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package ID")
	}

	var input *PINInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	pkg, err := h.uc.ConfirmPickup(c.Request().Context(), packageID, volunteerID, input.PIN)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pkg, "Pickup confirmed")
}

// ConfirmDelivery handles the food bank-side handoff: the operator enters
// the same PIN at delivery, which settles the volunteer's credit.
func (h *PackageHandler) ConfirmDelivery(c echo.Context) error {
	operatorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package ID")
	}

	var input *PINInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.ConfirmDelivery(c.Request().Context(), packageID, operatorID, input.PIN)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Delivery confirmed")
}

// ScanDeliveryInput is the request body for QR-scan delivery confirmation.
type ScanDeliveryInput struct {
	Data string `json:"data" validate:"required"`
	PIN  string `json:"pin" validate:"required,len=4,numeric"`
}

// ConfirmDeliveryScan handles delivery confirmation from a scanned handoff
// QR code: the package is resolved from the payload, the PIN check stays.
func (h *PackageHandler) ConfirmDeliveryScan(c echo.Context) error {
	operatorID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *ScanDeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.ConfirmDeliveryScan(c.Request().Context(), operatorID, input.Data, input.PIN)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Delivery confirmed")
}

// Cancel handles a store withdrawing a still-pending package.
func (h *PackageHandler) Cancel(c echo.Context) error {
	storeID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package ID")
	}

	if err := h.uc.Cancel(c.Request().Context(), packageID, storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Package cancelled")
}

// HandoffQR serves the claimed package's handoff QR code as a PNG image.
func (h *PackageHandler) HandoffQR(c echo.Context) error {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid package ID")
	}

	png, err := h.uc.HandoffQR(c.Request().Context(), packageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
