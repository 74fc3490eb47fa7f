package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"reflourish/config"
	"reflourish/internal/delivery"
	"reflourish/internal/delivery/http"
	"reflourish/internal/delivery/http/middleware"
	"reflourish/internal/delivery/http/router/handler"
	"reflourish/internal/domain/service"
	"reflourish/internal/infra/auth"
	"reflourish/internal/infra/insight"
	logs "reflourish/internal/infra/log"
	"reflourish/internal/infra/notification"
	"reflourish/internal/infra/persistence/postgres"
	"reflourish/internal/infra/policy"
	"reflourish/internal/infra/qrcode"
	"reflourish/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPackageRepository,
			postgres.NewLedgerRepository,
			postgres.NewRewardRepository,
			postgres.NewRollupRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			policy.NewPINAttemptPolicy,
			newFirebaseService,
			newInsightService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newInsightService creates the LLM insight client when configured
func newInsightService(cfg *config.Config) (service.InsightService, error) {
	if cfg.Insight == nil || cfg.Insight.APIKey == "" {
		return nil, nil // Insight provider is optional
	}

	return insight.NewClaudeClient(cfg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPackageService,
			impl.NewLedgerService,
			impl.NewVolunteerService,
			impl.NewMetricsService,
			impl.NewInsightReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPackageHandler,
			handler.NewLedgerHandler,
			handler.NewVolunteerHandler,
			handler.NewMetricsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
