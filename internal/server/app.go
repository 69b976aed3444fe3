// Package server wires configuration, the store, services and the HTTP API
// into a runnable application with explicit startup and shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/coursehub/internal/logging"
	"github.com/dmitrijs2005/coursehub/internal/server/config"
	"github.com/dmitrijs2005/coursehub/internal/server/httpapi"
	"github.com/dmitrijs2005/coursehub/internal/server/password"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/coursehub/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  repomanager.RepositoryManager
	server *httpapi.HTTPServer
}

// openStore is a seam for tests.
var openStore = repomanager.Open

// NewApp connects to the store, checks it is reachable and applies
// migrations. Any failure here is fatal for the process.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("store unreachable: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher, err := password.FromConfig(cfg)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	us, err := services.NewUserService(store, hasher, cfg)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	handlers := httpapi.NewHandlers(us,
		services.NewEnrollmentService(store),
		services.NewTutorService(store),
		services.NewRatingService(store),
		store,
		logger.With("module", "http_api"))

	router, err := httpapi.NewRouter(handlers, httpapi.RouterConfig{
		BasePath:      cfg.BasePath,
		Secret:        []byte(cfg.SecretKey),
		AllowedOrigin: cfg.AllowedOrigin,
		AuthRateLimit: cfg.AuthRateLimit,
		Metrics:       cfg.MetricsEnabled,
		Logger:        logger.With("module", "http"),
	})
	if err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("router init error: %w", err)
	}

	logger.Info(ctx, "Store ready", "kind", cfg.StoreKind)

	return &App{
		config: cfg,
		logger: logger,
		store:  store,
		server: httpapi.NewHTTPServer(cfg.EndpointAddrHTTP, router, logger, cfg.ShutdownTimeout),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts the HTTP server down and closes the store.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	serveErr := app.server.Run(ctx)
	if serveErr != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", serveErr.Error())
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := app.store.Close(closeCtx); err != nil {
		app.logger.Error(closeCtx, "Store close failed", "error", err.Error())
	}

	app.logger.Info(closeCtx, "App stopped")
	return serveErr
}
