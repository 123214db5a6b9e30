// Package main is the entry point for the site API. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/MiguelCav2025/sitecav/internal/adapters/http"
	"github.com/MiguelCav2025/sitecav/internal/adapters/http/handlers"
	"github.com/MiguelCav2025/sitecav/internal/adapters/http/middleware"

	"github.com/MiguelCav2025/sitecav/internal/adapters/clients/mail"
	"github.com/MiguelCav2025/sitecav/internal/adapters/http/dto"
	"github.com/MiguelCav2025/sitecav/internal/adapters/repository"
	"github.com/MiguelCav2025/sitecav/internal/adapters/store"
	"github.com/MiguelCav2025/sitecav/internal/app"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/platform/health"
	"github.com/MiguelCav2025/sitecav/internal/platform/httpclient"
	"github.com/MiguelCav2025/sitecav/internal/platform/logging"
	"github.com/MiguelCav2025/sitecav/internal/platform/telemetry"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

const (
	backendServiceName    = "backend"
	filesPrefix           = "/files"
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile, config.WithDotEnv(".env"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry, profile)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph, opening the stores.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	tables := do.MustInvoke[*store.Tables](injector)
	defer func() {
		if err := tables.Close(); err != nil {
			logger.Error("closing table store", slog.Any("error", err))
		}
	}()

	registerHealthChecks(injector, cfg)
	logger.Info("content stores ready",
		slog.String("backend", cfg.Backend.Driver),
		slog.String("storage", cfg.Storage.Driver),
	)

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-sigCtx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, backendServiceName, metrics, logger,
			httpclient.WithHeader("apikey", cfg.Backend.APIKey),
			httpclient.WithHeader("Authorization", "Bearer "+cfg.Backend.APIKey),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*store.Tables, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return store.OpenTables(context.Background(), cfg.Backend, client, logger)
	})

	do.Provide(injector, func(i do.Injector) (*store.Objects, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		filesURL := fmt.Sprintf("http://localhost:%d%s", cfg.Server.Port, filesPrefix)
		return store.OpenObjects(context.Background(), cfg.Storage, client, filesURL, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.Mailer, error) {
		if !cfg.Mail.Enabled {
			return mail.Disabled{}, nil
		}
		return mail.NewSMTP(cfg.Mail, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Services, error) {
		tables := do.MustInvoke[*store.Tables](i)
		objects := do.MustInvoke[*store.Objects](i)
		repos := repository.NewRepositories(tables.Store)

		return app.NewServices(app.Dependencies{
			Sources: app.PageSources{
				Banners:               repos.Banners,
				StudentProjects:       repos.StudentProjects,
				InstitutionalProjects: repos.InstitutionalProjects,
				Photos:                repos.Photos,
				Downloads:             repos.Downloads,
				Bibliographies:        repos.Bibliographies,
				Videos:                repos.Videos,
			},
			ProcessData:   repos.ProcessData,
			Storage:       objects.Storage,
			Mailer:        do.MustInvoke[ports.Mailer](i),
			MaxUploadSize: cfg.Upload.MaxSize,
			Metrics:       do.MustInvoke[*telemetry.Metrics](i),
			Logger:        logger,
		}), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[*app.Services](i)
		maxUpload := cfg.Upload.MaxSize

		return adapthttp.Handlers{
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
			Pages:   handlers.NewPageHandler(svc.Pages, svc.Process, svc.Contact),
			Process: handlers.NewProcessHandler(svc.Process),

			Banners:               handlers.NewCatalogHandler[content.Banner, dto.BannerRequest](svc.Banners, maxUpload),
			StudentProjects:       handlers.NewCatalogHandler[content.StudentProject, dto.StudentProjectRequest](svc.StudentProjects, maxUpload),
			InstitutionalProjects: handlers.NewOrderedCatalogHandler[content.InstitutionalProject, dto.InstitutionalProjectRequest](svc.InstitutionalProjects, maxUpload),
			Gallery:               handlers.NewOrderedCatalogHandler[content.Photo, dto.PhotoRequest](svc.Photos, maxUpload),
			Downloads:             handlers.NewCatalogHandler[content.Download, dto.DownloadRequest](svc.Downloads, maxUpload),
			Bibliographies:        handlers.NewCatalogHandler[content.Bibliography, dto.BibliographyRequest](svc.Bibliographies, maxUpload),
			Videos:                handlers.NewCatalogHandler[content.ReferenceVideo, dto.VideoRequest](svc.Videos, maxUpload),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		objects := do.MustInvoke[*store.Objects](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		opts := adapthttp.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		}
		if cfg.Auth.Enabled {
			opts.AdminAuth = middleware.AdminAuth([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.Audience)
		}
		if objects.Files != nil {
			opts.Files = objects.Files
		}

		return adapthttp.NewRouter(h, opts,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthChecks registers the backend checks once the graph is wired.
// The hosted table store reports through the shared client, so the client is
// only registered separately when storage alone is hosted.
func registerHealthChecks(injector *do.RootScope, cfg *config.Config) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	tables := do.MustInvoke[*store.Tables](injector)

	if tables.Health != nil {
		registry.Register(tables.Health)
	}
	if cfg.Storage.Driver == config.DriverHosted && cfg.Backend.Driver != config.DriverHosted {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}
}
