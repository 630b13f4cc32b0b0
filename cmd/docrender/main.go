package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docrender/internal/config"
	"git.home.luguber.info/inful/docrender/internal/generator"
	"git.home.luguber.info/inful/docrender/internal/location"
	"git.home.luguber.info/inful/docrender/internal/metrics"
	"git.home.luguber.info/inful/docrender/internal/modelfile"
	"git.home.luguber.info/inful/docrender/internal/server"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docrender.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Model  string `short:"m" help:"Documentation model file" default:"model.yaml"`
		Output string `short:"o" help:"Output directory for generated site"`
	} `cmd:"" help:"Render the documentation model into a static HTML site"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Serve struct {
		Model  string `short:"m" help:"Documentation model file" default:"model.yaml"`
		Listen string `short:"l" help:"Listen address (overrides configuration)"`
	} `cmd:"" help:"Serve the generated site and rebuild on model changes"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg := loadConfig()
		if err := runBuild(cfg, CLI.Build.Model, CLI.Build.Output, metrics.NoopRecorder{}); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration written", "path", CLI.Config)
	case "serve":
		cfg := loadConfig()
		if err := runServe(cfg, CLI.Serve.Model, CLI.Serve.Listen); err != nil {
			slog.Error("Serve failed", "error", err)
			os.Exit(1)
		}
	}
}

// loadConfig loads the configuration file, falling back to defaults when the
// file does not exist and no explicit path was given.
func loadConfig() *config.Config {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		if _, statErr := os.Stat(CLI.Config); os.IsNotExist(statErr) && CLI.Config == "docrender.yaml" {
			slog.Debug("No configuration file found, using defaults")
			return config.Default()
		}
		slog.Error("Failed to load configuration", "error", err, "path", CLI.Config)
		os.Exit(1)
	}
	return cfg
}

func runBuild(cfg *config.Config, modelPath, outputDir string, recorder metrics.Recorder) error {
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}

	nodes, err := modelfile.Load(modelPath)
	if err != nil {
		return err
	}

	locations, err := location.ForName(cfg.Output.Locations)
	if err != nil {
		return err
	}

	gen, err := generator.New(generator.Options{
		Root:      outputDir,
		SiteTitle: cfg.Site.Title,
		Locations: locations,
		Recorder:  recorder,
		Clean:     cfg.Output.Clean,
	})
	if err != nil {
		return err
	}
	return gen.Generate(nodes)
}

func runServe(cfg *config.Config, modelPath, listen string) error {
	if listen == "" {
		listen = cfg.Server.Listen
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var metricsHandler http.Handler
	if cfg.Server.Metrics {
		registry := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
		metricsHandler = metrics.HTTPHandler(registry)
	}

	srv := server.New(server.Options{
		Addr:    listen,
		SiteDir: cfg.Output.Directory,
		Metrics: metricsHandler,
		Build: func(context.Context) error {
			return runBuild(cfg, modelPath, cfg.Output.Directory, recorder)
		},
	})
	if err := srv.Watch(modelPath); err != nil {
		return err
	}
	if _, err := os.Stat(CLI.Config); err == nil {
		if err := srv.Watch(CLI.Config); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return srv.Run(ctx)
}
