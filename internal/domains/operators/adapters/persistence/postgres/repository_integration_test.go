//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/delicias-da-thai/storefront/internal/domains/operators/domain"
	"github.com/delicias-da-thai/storefront/internal/domains/operators/ports"
	"github.com/delicias-da-thai/storefront/internal/platform/migrations"
)

func setupOperatorsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func TestRepository_SaveAndGetByUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOperatorsPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	operator, err := domain.NewOperator("op-1", "thai", "segredo1")
	require.NoError(t, err)
	operator.DisplayName = "Thai"

	_, err = repo.Save(ctx, operator)
	require.NoError(t, err)

	fetched, err := repo.GetByUsername(ctx, "thai")
	require.NoError(t, err)
	assert.Equal(t, "Thai", fetched.DisplayName)
	assert.True(t, fetched.CheckPassword("segredo1"))

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSessionStore_SaveLookupPurge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOperatorsPostgresContainer(t)
	defer cleanup()

	ctx := context.Background()

	store := NewSessionStore(db, time.Hour)
	require.NoError(t, store.Save(ctx, "thai", "tok-1"))

	username, err := store.Lookup(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "thai", username)

	// an already-expired session must not resolve and must be purgeable
	expiring := NewSessionStore(db, time.Nanosecond)
	require.NoError(t, expiring.Save(ctx, "thai", "tok-2"))
	time.Sleep(10 * time.Millisecond)

	_, err = store.Lookup(ctx, "tok-2")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)

	require.NoError(t, store.PurgeExpired(ctx))

	username, err = store.Lookup(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "thai", username)

	require.NoError(t, store.Delete(ctx, "thai"))
	_, err = store.Lookup(ctx, "tok-1")
	assert.ErrorIs(t, err, ports.ErrInvalidCredentials)
}
