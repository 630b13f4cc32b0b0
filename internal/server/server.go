// Package server provides the preview HTTP server: it serves the generated
// site, exposes health and metrics endpoints, and rebuilds the site when
// watched input files change.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docrender/internal/logfields"
)

// BuildFunc regenerates the site. It is invoked once at startup and again
// after watched files change.
type BuildFunc func(ctx context.Context) error

// Options configures a preview Server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// SiteDir is the directory the generated site is served from.
	SiteDir string
	// Build regenerates the site; nil disables rebuilds.
	Build BuildFunc
	// Metrics, when non-nil, is mounted at /metrics.
	Metrics http.Handler
	// Debounce collapses bursts of file events into one rebuild.
	Debounce time.Duration
}

// Server serves a generated documentation site with rebuild-on-change.
type Server struct {
	opts    Options
	httpSrv *http.Server
	watcher *fsnotify.Watcher

	mu       sync.Mutex
	rebuildT *time.Timer
}

// New constructs a preview server.
func New(opts Options) *Server {
	if opts.Debounce <= 0 {
		opts.Debounce = 300 * time.Millisecond
	}
	s := &Server{opts: opts}
	s.httpSrv = &http.Server{
		Addr:              opts.Addr,
		Handler:           withRequestLogging(slog.Default(), s.routes()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	if s.opts.Metrics != nil {
		mux.Handle("/metrics", s.opts.Metrics)
	}
	mux.Handle("/", http.FileServer(http.Dir(s.opts.SiteDir)))
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Watch registers input paths whose changes trigger a rebuild. It must be
// called before Run.
func (s *Server) Watch(paths ...string) error {
	if s.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		s.watcher = w
	}
	for _, path := range paths {
		if err := s.watcher.Add(path); err != nil {
			return err
		}
	}
	return nil
}

// Run builds once, then serves until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if s.opts.Build != nil {
		if err := s.opts.Build(ctx); err != nil {
			return err
		}
	}
	if s.watcher != nil {
		go s.watchLoop(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", logfields.Addr(s.opts.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

func (s *Server) watchLoop(ctx context.Context) {
	defer func() {
		if err := s.watcher.Close(); err != nil {
			slog.Warn("Failed to close watcher", logfields.Error(err))
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.scheduleRebuild(ctx, event.Name)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// scheduleRebuild debounces rebuilds so editor save bursts build once.
func (s *Server) scheduleRebuild(ctx context.Context, trigger string) {
	if s.opts.Build == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rebuildT != nil {
		s.rebuildT.Stop()
	}
	s.rebuildT = time.AfterFunc(s.opts.Debounce, func() {
		slog.Info("Input changed, rebuilding", logfields.Model(trigger))
		if err := s.opts.Build(ctx); err != nil {
			slog.Error("Rebuild failed", logfields.Error(err))
		}
	})
}
