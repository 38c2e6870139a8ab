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

	"github.com/delicias-da-thai/storefront/internal/domains/catalog/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/catalog/ports"
	"github.com/delicias-da-thai/storefront/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func mustProduct(t *testing.T, id, name string, price int64, category domain.Category) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(id, name, decimal.NewFromInt(price), category)
	require.NoError(t, err)
	return product
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "p-1", "Bolo de Cenoura", 45, domain.CategoryReady)

	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, product.ID, saved.ID)
	assert.True(t, saved.Available)

	fetched, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, fetched.Name)
	assert.True(t, product.Price.Equal(fetched.Price))
	assert.Equal(t, product.Category, fetched.Category)
}

func TestRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "p-1", "Torta de Limao", 60, domain.CategoryReady)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	product.SetAvailable(false)
	require.NoError(t, product.SetPrice(decimal.NewFromInt(65)))
	updated, err := repo.Save(ctx, product)
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(65)))
	assert.True(t, updated.MadeToOrder())
}

func TestRepository_ListSortedByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, mustProduct(t, "p-1", "Pudim", 30, domain.CategoryReady))
	require.NoError(t, err)
	_, err = repo.Save(ctx, mustProduct(t, "p-2", "Brownie", 12, domain.CategoryReady))
	require.NoError(t, err)
	_, err = repo.Save(ctx, mustProduct(t, "p-3", "Torta", 60, domain.CategoryMadeToOrder))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Brownie", list[0].Name)
	assert.Equal(t, "Pudim", list[1].Name)
	assert.Equal(t, "Torta", list[2].Name)
}

func TestRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "p-1", "Brigadeiro", 3, domain.CategoryReady)
	_, err := repo.Save(ctx, product)
	require.NoError(t, err)

	err = repo.Delete(ctx, product.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
