package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/logging"
	"todo/internal/registry"
	"todo/internal/repository/jsonfile"
)

// testApp is an App on JSON stores in a temp dir with captured output.
type testApp struct {
	*App
	out *bytes.Buffer
	cfg *config.Config
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = restore })

	cfg := config.NewConfig()
	cfg.Storage.DataDir = t.TempDir()

	pending, err := jsonfile.New(cfg.GetPendingPath())
	require.NoError(t, err)
	completed, err := jsonfile.New(cfg.GetCompletedPath())
	require.NoError(t, err)

	reg, err := registry.New(context.Background(), pending, completed,
		registry.WithLogger(logging.Discard().WithField("test", t.Name())))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &testApp{App: NewApp(reg, cfg, out), out: out, cfg: cfg}
}

// reload reads the stored collections back through fresh stores.
func (a *testApp) reload(t *testing.T) *registry.Registry {
	t.Helper()
	pending, err := jsonfile.New(a.cfg.GetPendingPath())
	require.NoError(t, err)
	completed, err := jsonfile.New(a.cfg.GetCompletedPath())
	require.NoError(t, err)
	reg, err := registry.New(context.Background(), pending, completed,
		registry.WithLogger(logging.Discard().WithField("test", t.Name())))
	require.NoError(t, err)
	return reg
}

func (a *testApp) addTask(t *testing.T, title, due, priority string) *domain.Task {
	t.Helper()
	d, err := domain.ParseDate(due)
	require.NoError(t, err)
	task, err := domain.NewTask(title, title+" description", d, priority)
	require.NoError(t, err)
	require.NoError(t, a.registry.Add(context.Background(), task))
	return task
}
