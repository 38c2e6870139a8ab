package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	cataloghttp "github.com/delicias-da-thai/storefront/internal/domains/catalog/adapters/http"
	catalogmemory "github.com/delicias-da-thai/storefront/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/delicias-da-thai/storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/delicias-da-thai/storefront/internal/domains/catalog/application"
	catalogports "github.com/delicias-da-thai/storefront/internal/domains/catalog/ports"

	settingshttp "github.com/delicias-da-thai/storefront/internal/domains/settings/adapters/http"
	settingsmemory "github.com/delicias-da-thai/storefront/internal/domains/settings/adapters/memory"
	settingspostgres "github.com/delicias-da-thai/storefront/internal/domains/settings/adapters/persistence/postgres"
	settingsapp "github.com/delicias-da-thai/storefront/internal/domains/settings/application"
	settingsports "github.com/delicias-da-thai/storefront/internal/domains/settings/ports"

	operatorshttp "github.com/delicias-da-thai/storefront/internal/domains/operators/adapters/http"
	operatorsmemory "github.com/delicias-da-thai/storefront/internal/domains/operators/adapters/memory"
	operatorspostgres "github.com/delicias-da-thai/storefront/internal/domains/operators/adapters/persistence/postgres"
	operatorsapp "github.com/delicias-da-thai/storefront/internal/domains/operators/application"
	operatorsports "github.com/delicias-da-thai/storefront/internal/domains/operators/ports"

	orderinghttp "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/http"
	orderingmemory "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/memory"
	orderingobs "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/observability"
	orderingpostgres "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/persistence/postgres"
	orderingsources "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/sources"
	orderingworkflows "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/workflows"
	orderingapp "github.com/delicias-da-thai/storefront/internal/domains/ordering/application"
	orderingdomain "github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	orderingports "github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"

	"github.com/delicias-da-thai/storefront/internal/platform/migrations"
	platformobservability "github.com/delicias-da-thai/storefront/internal/platform/observability"
	platformpostgres "github.com/delicias-da-thai/storefront/internal/platform/postgres"
)

// Run boots the storefront HTTP API with observability, repositories, and
// the order submission workflow wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		return err
	}

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			return err
		}
	}

	catalogService := catalogapp.NewService(buildProductRepository(db))
	settingsService := settingsapp.NewService(buildSettingsRepositories(db))
	operatorService := operatorsapp.NewService(buildOperatorStores(db, cfg.SessionTTL))
	seedAdminOperator(ctx, logger, operatorService, cfg)

	archive := buildArchiveRepository(db, logger)
	var orderWorkflows orderingports.WorkflowOrchestrator = orderingworkflows.NewInlineOrderWorkflows(archive)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal unavailable, archiving orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = orderingworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal order submission workflow enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	coreOrdering := orderingapp.NewService(
		orderingmemory.NewCartStore(),
		orderingsources.NewCatalogSource(catalogService),
		orderingsources.NewZoneSource(settingsService),
		orderingsources.NewStoreGate(settingsService),
		orderingapp.WithComposer(orderingdomain.MessageComposer{
			StoreName:  cfg.StoreName,
			StorePhone: cfg.StorePhone,
		}),
		orderingapp.WithOrchestrator(orderWorkflows),
	)
	orderingService := orderingobs.New(
		coreOrdering,
		orderingobs.WithLogger(logger),
		orderingobs.WithTracer(instruments.Tracer("internal.ordering.application")),
		orderingobs.WithMeter(instruments.Meter("internal.ordering.application")),
	)

	router := NewRouter(serviceName, cfg, Handlers{
		Catalog:   cataloghttp.NewHandler(catalogService),
		Settings:  settingshttp.NewHandler(settingsService),
		Ordering:  orderinghttp.NewHandler(orderingService, archive),
		Operators: operatorshttp.NewHandler(operatorService),
	}, operatorService)

	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildProductRepository(db *gorm.DB) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	return catalogpostgres.NewRepository(db)
}

func buildSettingsRepositories(db *gorm.DB) (settingsports.SettingsRepository, settingsports.ZoneRepository) {
	if db == nil {
		return settingsmemory.NewSettingsRepository(), settingsmemory.NewZoneRepository()
	}
	return settingspostgres.NewSettingsRepository(db), settingspostgres.NewZoneRepository(db)
}

func buildOperatorStores(db *gorm.DB, sessionTTL time.Duration) (operatorsports.Repository, operatorsports.SessionStore) {
	if db == nil {
		return operatorsmemory.NewRepository(), operatorsmemory.NewSessionStore(sessionTTL)
	}
	return operatorspostgres.NewRepository(db), operatorspostgres.NewSessionStore(db, sessionTTL)
}

func buildArchiveRepository(db *gorm.DB, logger *slog.Logger) orderingports.ArchiveRepository {
	if db == nil {
		logger.Warn("order archive running in memory, submitted orders will not survive restarts")
		return orderingmemory.NewArchiveRepository()
	}
	return orderingpostgres.NewArchiveRepository(db)
}

// seedAdminOperator creates the bootstrap operator account when credentials
// are provided and the account does not exist yet.
func seedAdminOperator(ctx context.Context, logger *slog.Logger, service operatorsports.Service, cfg Config) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}
	if _, err := service.GetByUsername(ctx, cfg.AdminUsername); err == nil {
		return
	}
	if _, err := service.CreateOperator(ctx, cfg.AdminUsername, cfg.AdminPassword, "Administrador"); err != nil {
		logger.Warn("failed to seed admin operator", slog.String("error", err.Error()))
		return
	}
	logger.Info("admin operator seeded", slog.String("username", cfg.AdminUsername))
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
