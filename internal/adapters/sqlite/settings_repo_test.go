package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/anketa/internal/adapters/sqlite"
)

func TestSettingsRepository_Get(t *testing.T) {
	db := setupTestDB(t)
	seedSetting(t, db, "letters.first_word", "кот")
	repo := sqlite.NewSettingsRepository(db)

	value, ok, err := repo.Get(context.Background(), "letters.first_word")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "кот", value)

	_, ok, err = repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSettingsRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewSettingsRepository(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "k", "one"))
	require.NoError(t, repo.Set(ctx, "k", "two"))

	value, ok, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "two", value)
}
