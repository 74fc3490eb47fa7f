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

// VolunteerHandler holds dependencies for volunteer aggregate views.
type VolunteerHandler struct {
	uc     usecase.VolunteerUsecase
	logger *slog.Logger
}

// NewVolunteerHandler is the constructor for VolunteerHandler, injected by Fx.
func NewVolunteerHandler(uc usecase.VolunteerUsecase, logger *slog.Logger) *VolunteerHandler {
	return &VolunteerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Leaderboard returns the ranked volunteer leaderboard.
func (h *VolunteerHandler) Leaderboard(c echo.Context) error {
	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
		limit = parsed
	}

	entries, err := h.uc.Leaderboard(c.Request().Context(), limit, c.QueryParam("sortBy"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Leaderboard retrieved")
}

// Stats returns the caller's own activity counters.
func (h *VolunteerHandler) Stats(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.uc.Stats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved")
}
