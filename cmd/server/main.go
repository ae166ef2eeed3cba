package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/hello-service/internal/http/health"
	"github.com/janisto/hello-service/internal/http/v1/routes"
	"github.com/janisto/hello-service/internal/platform/apiconfig"
	"github.com/janisto/hello-service/internal/platform/config"
	applog "github.com/janisto/hello-service/internal/platform/logging"
	"github.com/janisto/hello-service/internal/platform/metrics"
	appmiddleware "github.com/janisto/hello-service/internal/platform/middleware"
	"github.com/janisto/hello-service/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiTitle        = "Hello Service API"
	maxRequestBytes = 1 << 20 // 1 MB
	metricsPath     = "/metrics"
)

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogError(context.Background(), "invalid log level", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, nil); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails, then shuts down
// gracefully. A nil listener binds cfg.Addr().
func run(ctx context.Context, cfg config.Config, ln net.Listener) error {
	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector(nil)
	}
	srv := newServer(cfg.Addr(), newRouter(collector))

	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", srv.Addr); err != nil {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("version", Version),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("serve %s: %w", srv.Addr, err)
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// newRouter assembles middleware, probes, metrics and the API. A nil
// collector leaves /metrics unmounted.
func newRouter(collector *metrics.Collector) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(apiconfig.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For. Only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
	)
	if collector != nil {
		router.Use(collector.Middleware())
	}
	router.Use(
		respond.Recoverer(),
		chimiddleware.GetHead,
	)

	health.Register(router)
	if collector != nil {
		router.Method(http.MethodGet, metricsPath, collector.Handler())
	}

	api := humachi.New(router, apiconfig.New(apiTitle, Version))
	routes.Register(api)

	return router
}
