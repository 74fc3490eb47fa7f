package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "reflourish/internal/delivery/context"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	"reflourish/internal/domain/service"
	"reflourish/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// insightReportService implements the InsightUsecase interface.
type insightReportService struct {
	rollupRepo repository.RollupRepository
	insight    service.InsightService
	logger     *slog.Logger
}

// InsightReportServiceParams holds dependencies for InsightReportService, injected by Fx.
type InsightReportServiceParams struct {
	fx.In

	RollupRepo repository.RollupRepository
	Insight    service.InsightService `optional:"true"`
	Logger     *slog.Logger
}

// NewInsightReportService is the constructor for insightReportService.
func NewInsightReportService(params InsightReportServiceParams) usecase.InsightUsecase {
	return &insightReportService{
		rollupRepo: params.RollupRepo,
		insight:    params.Insight,
		logger:     params.Logger,
	}
}

// WeeklyReport builds a prompt over the last seven days of rollups and
// relays the provider's JSON verbatim. The provider call happens with no
// locks held and is bounded only by the request context.
func (s *insightReportService) WeeklyReport(ctx context.Context) (json.RawMessage, error) {
	if s.insight == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("insight provider is not configured")
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -7)

	rollups, err := s.rollupRepo.FindRollups(ctx, nil, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rollups")
	}

	var sb strings.Builder
	sb.WriteString("You are an analyst for a food waste redistribution platform. ")
	sb.WriteString("Summarize the past week of activity in JSON with keys ")
	sb.WriteString(`"headline", "trends" and "recommendations". Daily per-store figures:` + "\n")
	if len(rollups) == 0 {
		sb.WriteString("(no completed deliveries this week)\n")
	}
	for _, r := range rollups {
		fmt.Fprintf(&sb, "- %s store=%s packages=%d weight_kg=%.1f points=%d hours=%.2f\n",
			r.Day.Format("2006-01-02"), r.StoreID, r.PackagesCount, r.TotalWeightKg, r.TotalPoints, r.TotalHours)
	}

	report, err := s.insight.GenerateInsight(ctx, sb.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate weekly insight")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Weekly insight generated", slog.Int("rollups", len(rollups)))

	return report, nil
}
