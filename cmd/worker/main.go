package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	orderingmemory "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/memory"
	orderingpostgres "github.com/delicias-da-thai/storefront/internal/domains/ordering/adapters/persistence/postgres"
	orderingports "github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
	orderactivities "github.com/delicias-da-thai/storefront/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/delicias-da-thai/storefront/internal/durable/temporal/workflows/orders"
	"github.com/delicias-da-thai/storefront/internal/platform/migrations"
	platformobservability "github.com/delicias-da-thai/storefront/internal/platform/observability"
	platformpostgres "github.com/delicias-da-thai/storefront/internal/platform/postgres"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()
	const serviceName = "storefront-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	archive, cleanupRepo := buildArchiveRepository(ctx, logger)
	defer cleanupRepo()
	activities := orderactivities.NewActivities(archive)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderSubmissionTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderSubmissionWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderSubmissionWorkflowName})
	w.RegisterActivityWithOptions(activities.ArchiveOrder, activity.RegisterOptions{Name: orderactivities.ArchiveOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderSubmissionTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildArchiveRepository(ctx context.Context, logger *slog.Logger) (orderingports.ArchiveRepository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		logger.Warn("worker archiving orders in memory, records will not survive restarts")
		return orderingmemory.NewArchiveRepository(), cleanup
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, archiving in memory", slog.String("error", err.Error()))
		cleanup()
		return orderingmemory.NewArchiveRepository(), func() {}
	}
	logger.Info("worker order archive configured with postgres")
	return orderingpostgres.NewArchiveRepository(db), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
