package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRoutes_ServesSiteFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Docs</h1>"), 0o644))

	s := New(Options{SiteDir: dir})
	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "<h1>Docs</h1>")
}

func TestRoutes_Healthz(t *testing.T) {
	s := New(Options{SiteDir: t.TempDir()})
	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_MetricsMountedWhenConfigured(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})
	s := New(Options{SiteDir: t.TempDir(), Metrics: metrics})
	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "metrics", string(body))
}

func TestRequestLogging_RecoversFromPanic(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	ts := httptest.NewServer(withRequestLogging(testLogger(t), panicking))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestWatch_TriggersDebouncedRebuild(t *testing.T) {
	watched := t.TempDir()
	model := filepath.Join(watched, "model.yaml")
	require.NoError(t, os.WriteFile(model, []byte("nodes: []\n"), 0o644))

	var builds atomic.Int32
	s := New(Options{
		SiteDir:  t.TempDir(),
		Debounce: 50 * time.Millisecond,
		Build: func(context.Context) error {
			builds.Add(1)
			return nil
		},
	})
	require.NoError(t, s.Watch(watched))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.watchLoop(ctx)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(model, []byte("nodes: []\n"), 0o644))
	}

	require.Eventually(t, func() bool {
		return builds.Load() >= 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRun_FailsWhenInitialBuildFails(t *testing.T) {
	s := New(Options{
		SiteDir: t.TempDir(),
		Addr:    "127.0.0.1:0",
		Build: func(context.Context) error {
			return os.ErrPermission
		},
	})
	err := s.Run(context.Background())
	require.ErrorIs(t, err, os.ErrPermission)
}
