package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-760/portfolio-v2/internal/cms"
	"github.com/dev-760/portfolio-v2/internal/config"
	"github.com/dev-760/portfolio-v2/internal/contact"
	"github.com/dev-760/portfolio-v2/internal/content"
	"github.com/dev-760/portfolio-v2/internal/entry"
	"github.com/dev-760/portfolio-v2/internal/gallery"
	"github.com/dev-760/portfolio-v2/internal/observability"
	"github.com/dev-760/portfolio-v2/internal/status"
)

// pagesDir holds the markdown pages, relative to the content root.
const pagesDir = "pages"

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates per request and disables asset caching.
	devMode bool
	baseURL = "http://localhost:8080"

	entryDelay = entry.DefaultDelay
	transition = gallery.DefaultTransition

	site           *content.Store
	pageClient     *cms.Client
	markdown       = cms.NewRenderer()
	contactService *contact.Service
	health         *status.Monitor
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.StringSlice("env-file")...)
	if err != nil {
		return err
	}
	if cmd.IsSet("addr") {
		host, port, err := splitAddr(cmd.String("addr"))
		if err != nil {
			return err
		}
		cfg.Host, cfg.Port = host, port
	}
	if cmd.IsSet("content") {
		cfg.ContentDir = cmd.String("content")
	}
	if cmd.IsSet("templates") {
		cfg.TemplatesDir = cmd.String("templates")
	}
	if cmd.IsSet("public") {
		cfg.PublicDir = cmd.String("public")
	}
	if cmd.Bool("dev") {
		cfg.Dev = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := setup(cfg, logger); err != nil {
		return err
	}
	if !devMode {
		// Parse templates once in production
		if _, err := templates(); err != nil {
			return fmt.Errorf("parse templates: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           newRouter(logger, !cfg.Dev),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("configuration loaded",
		zap.String("addr", srv.Addr),
		zap.String("content_dir", cfg.ContentDir),
		zap.String("base_url", cfg.BaseURL),
		zap.Bool("dev", cfg.Dev),
	)

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.WatchContent() {
		g.Go(func() error {
			return site.Watch(gCtx, func() {
				pageClient.Invalidate()
				logger.Info("content reloaded")
			})
		})
	}

	g.Go(func() error {
		logger.Info("web listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("context cancelled, shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown", zap.Error(err))
		}
		return errShutdown
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errShutdown) {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// errShutdown stops the group once the server has drained.
var errShutdown = errors.New("shutdown")

// setup wires the package-level services from cfg.
func setup(cfg *config.Config, logger *zap.Logger) error {
	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir
	devMode = cfg.Dev
	baseURL = cfg.BaseURL
	entryDelay = cfg.EntryDelay
	transition = cfg.Transition

	store, err := content.Open(cfg.ContentDir, logger)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	site = store
	pageClient = cms.NewClient(filepath.Join(cfg.ContentDir, pagesDir), markdown)
	pageClient.SetCacheDuration(cfg.CacheTTL)
	contactService = contact.NewService(logger.Named("contact"), cfg.ContactPerMinute, cfg.ContactBurst)
	health = newHealthMonitor(cfg.CacheTTL)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "portfolio",
		Usage:  "Bilingual artist portfolio web server",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "HTTP listen address (host:port)",
				Sources: cli.EnvVars("ADDR"),
			},
			&cli.StringFlag{
				Name:  "content",
				Usage: "content directory (catalog, locales, pages)",
			},
			&cli.StringFlag{
				Name:  "templates",
				Usage: "templates directory",
			},
			&cli.StringFlag{
				Name:  "public",
				Usage: "public assets directory",
			},
			&cli.BoolFlag{
				Name:    "dev",
				Usage:   "reparse templates per request and watch content",
				Sources: cli.EnvVars("DEV"),
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to load before reading the environment",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		os.Exit(1)
	}
}
