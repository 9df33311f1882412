package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bakery/pkg/domain/model"
	"bakery/pkg/infrastructure/auth"
	"bakery/pkg/infrastructure/storage"
)

func TestSeed(t *testing.T) {
	cfg := storage.Config{Driver: storage.DriverSQLite, Path: filepath.Join(t.TempDir(), "seed.db")}
	require.NoError(t, storage.MigrateUp(cfg))
	db, err := storage.Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	users := storage.NewUserRepository(db)
	products := storage.NewProductRepository(db)
	passwords := auth.NewPasswordManager(bcrypt.MinCost)

	require.NoError(t, seed(ctx, users, products, passwords))

	admin, err := users.FindByEmail(ctx, "admin@mail.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	ok, err := passwords.Check(admin.HashedPassword, "password123")
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := products.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(seedProducts))
	for _, p := range all {
		require.NotNil(t, p.UserID)
		assert.Equal(t, admin.ID, *p.UserID)
		assert.LessOrEqual(t, p.PrepDays, model.MaxPrepDays)
	}

	err = seed(ctx, users, products, passwords)
	assert.ErrorIs(t, err, model.ErrStoreConflict)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("BAKERY_DB_DRIVER", "sqlite")
	t.Setenv("BAKERY_DB_PATH", "/tmp/bakery.db")
	t.Setenv("BAKERY_TOKEN_TTL", "24h")

	c, err := parseEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddress)
	assert.Equal(t, storage.Config{
		Driver: "sqlite", Host: "localhost:3306", Name: "bakery", User: "bakery", Path: "/tmp/bakery.db",
	}, c.storage())
	assert.Equal(t, "24h0m0s", c.TokenTTL.String())

	t.Setenv("BAKERY_TOKEN_TTL", "soon")
	_, err = parseEnv()
	assert.Error(t, err)
}
