package handler

import (
	"log/slog"
	"net/http"

	"reflourish/internal/delivery/http/response"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LedgerHandler holds dependencies for ledger and reward handlers.
type LedgerHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler, injected by Fx.
func NewLedgerHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetBalance returns the caller's current point balance.
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	balance, err := h.uc.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"balance": balance}, "Balance retrieved")
}

// GetHistory returns the caller's full ledger history.
func (h *LedgerHandler) GetHistory(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.uc.GetHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Ledger history retrieved")
}

// ListRewards returns the active reward catalog.
func (h *LedgerHandler) ListRewards(c echo.Context) error {
	rewards, err := h.uc.ListRewards(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rewards, "Rewards retrieved")
}

// Redeem debits a reward's cost from the caller's balance.
func (h *LedgerHandler) Redeem(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	rewardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reward ID")
	}

	result, err := h.uc.RedeemReward(c.Request().Context(), userID, rewardID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Reward redeemed successfully")
}

// GetRedemptions returns the caller's past reward redemptions.
func (h *LedgerHandler) GetRedemptions(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.uc.GetRedemptions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Redemptions retrieved")
}
