package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain"
)

func sampleTask(t *testing.T) *domain.Task {
	due, err := domain.ParseDate("2025-01-10")
	require.NoError(t, err)
	task, err := domain.NewTask("Buy milk", "2% milk", due, "High")
	require.NoError(t, err)
	return task
}

func TestCreateStores_JSON(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "nested", "td")

	stores, err := CreateStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	info, err := os.Stat(cfg.Storage.DataDir)
	require.NoError(t, err, "data directory should be created")
	assert.True(t, info.IsDir())

	assert.Equal(t, cfg.GetPendingPath(), stores.Pending.Location())
	assert.Equal(t, cfg.GetCompletedPath(), stores.Completed.Location())

	require.NoError(t, stores.Pending.Save(context.Background(), []*domain.Task{sampleTask(t)}))
	_, err = os.Stat(cfg.GetPendingPath())
	assert.NoError(t, err)
}

func TestCreateStores_JSONFileModeFollowsDirMode(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Storage.DirPermissions = 0700

	stores, err := CreateStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	require.NoError(t, stores.Completed.Save(context.Background(), []*domain.Task{sampleTask(t)}))

	info, err := os.Stat(cfg.GetCompletedPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCreateStores_SQLite(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Storage.Backend = BackendSQLite

	stores, err := CreateStores(cfg)
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()
	task := sampleTask(t)
	require.NoError(t, stores.Pending.Save(ctx, []*domain.Task{task}))

	pending, err := stores.Pending.Load(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, task.Equal(pending[0]))

	completed, err := stores.Completed.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, completed, "collections share a database but not rows")

	_, err = os.Stat(cfg.GetDatabasePath())
	assert.NoError(t, err)
}

func TestCreateStores_UnknownBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = "csv"

	_, err := CreateStores(cfg)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestCreateTestStores(t *testing.T) {
	stores, err := CreateTestStores()
	require.NoError(t, err)
	defer stores.Close()

	loaded, err := stores.Pending.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStores_CloseWithoutBackend(t *testing.T) {
	assert.NoError(t, (&Stores{}).Close())
}
