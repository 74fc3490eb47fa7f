package handler

import (
	"log/slog"
	"net/http"
	"time"

	"reflourish/internal/delivery/http/response"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// MetricsHandler holds dependencies for the externally-triggered metrics
// rollup and the insight report endpoints.
type MetricsHandler struct {
	metricsUC usecase.MetricsUsecase
	insightUC usecase.InsightUsecase
	logger    *slog.Logger
}

// NewMetricsHandler is the constructor for MetricsHandler, injected by Fx.
func NewMetricsHandler(metricsUC usecase.MetricsUsecase, insightUC usecase.InsightUsecase, logger *slog.Logger) *MetricsHandler {
	return &MetricsHandler{
		metricsUC: metricsUC,
		insightUC: insightUC,
		logger:    logger,
	}
}

// RunRollup triggers the daily rollup for one day. There is no in-process
// scheduler; an external timer (cron, cloud scheduler) calls this endpoint.
func (h *MetricsHandler) RunRollup(c echo.Context) error {
	day := time.Now().UTC().AddDate(0, 0, -1)
	if dateStr := c.QueryParam("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	summary, err := h.metricsUC.RunDailyRollup(c.Request().Context(), day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Rollup completed")
}

// GetRollups serves rollup rows for a date range, optionally per store.
func (h *MetricsHandler) GetRollups(c echo.Context) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if fromStr := c.QueryParam("from"); fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid from date, expected YYYY-MM-DD")
		}
		from = parsed
	}
	if toStr := c.QueryParam("to"); toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid to date, expected YYYY-MM-DD")
		}
		to = parsed
	}

	var storeID *uuid.UUID
	if storeStr := c.QueryParam("store"); storeStr != "" {
		parsed, err := uuid.Parse(storeStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid store ID")
		}
		storeID = &parsed
	}

	rollups, err := h.metricsUC.GetRollups(c.Request().Context(), storeID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rollups, "Rollups retrieved")
}

// WeeklyInsight serves the LLM-generated weekly report.
func (h *MetricsHandler) WeeklyInsight(c echo.Context) error {
	report, err := h.insightUC.WeeklyReport(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Weekly insight generated")
}
