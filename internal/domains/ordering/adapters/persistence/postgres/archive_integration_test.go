//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/ordering/ports"
	"github.com/delicias-da-thai/storefront/internal/platform/migrations"
)

func setupArchivePostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func submittedOrder(id string, at time.Time) *domain.SubmittedOrder {
	return &domain.SubmittedOrder{
		ID:           id,
		CustomerName: "Ana",
		Mode:         domain.ModePickup,
		Subtotal:     decimal.NewFromInt(90),
		DeliveryFee:  decimal.Zero,
		Total:        decimal.NewFromInt(90),
		Message:      "*NOVO PEDIDO*",
		SubmittedAt:  at,
	}
}

func TestArchiveRepository_SaveIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupArchivePostgresContainer(t)
	defer cleanup()

	repo := NewArchiveRepository(db)
	ctx := context.Background()

	order := submittedOrder("o-1", time.Now().UTC().Truncate(time.Second))
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, "Ana", saved.CustomerName)
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(90)))

	// replaying the same submission must not duplicate or overwrite
	order.CustomerName = "Outra"
	again, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.CustomerName)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestArchiveRepository_ListNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupArchivePostgresContainer(t)
	defer cleanup()

	repo := NewArchiveRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	_, err := repo.Save(ctx, submittedOrder("o-1", base.Add(-time.Hour)))
	require.NoError(t, err)
	_, err = repo.Save(ctx, submittedOrder("o-2", base))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o-2", list[0].ID)
	assert.Equal(t, "o-1", list[1].ID)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, ports.ErrOrderNotFound)
}
