package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/historicolocaticio/landing/internal/api/router"
	"github.com/historicolocaticio/landing/internal/app/bootstrap"
	appconfig "github.com/historicolocaticio/landing/internal/config"
	"github.com/historicolocaticio/landing/internal/http/handlers"
	httpmiddleware "github.com/historicolocaticio/landing/internal/http/middleware"
	"github.com/historicolocaticio/landing/internal/landing"
	"github.com/historicolocaticio/landing/internal/leads"
	"github.com/historicolocaticio/landing/internal/observability/metrics"
	"github.com/historicolocaticio/landing/internal/web"
	"github.com/historicolocaticio/landing/pkg/logging"
)

const sessionSweepInterval = time.Minute

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to read .env:", err)
	}

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting landing page server",
		"env", cfg.Env,
		"port", cfg.Port,
		"session_store", cfg.SessionStore,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := buildApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer app.close()

	go app.runJanitors(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server error", "error", err)
		app.close()
		os.Exit(1)
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		app.close()
		os.Exit(1)
	}
	logger.Info("server stopped")
}

type application struct {
	server   *http.Server
	sessions *bootstrap.SessionBackend
	limiter  *httpmiddleware.RateLimiter
	logger   *logging.Logger
}

func (a *application) runJanitors(ctx context.Context) {
	if a.sessions.Memory != nil {
		go a.sessions.Memory.RunJanitor(ctx, sessionSweepInterval)
	}
	if a.limiter != nil {
		a.limiter.RunJanitor(ctx)
	}
}

func (a *application) close() {
	if err := a.sessions.Close(); err != nil {
		a.logger.Warn("failed to close session store", "error", err)
	}
}

// setupMetrics returns the /metrics handler and the lead metrics registered
// on a dedicated registry.
func setupMetrics() (http.Handler, *metrics.LeadMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewLeadMetrics(reg)
}

func buildApp(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*application, error) {
	content := landing.DefaultContent()
	sessions := bootstrap.BuildSessionStore(ctx, cfg, len(content.FAQ), logger)

	metricsHandler, leadMetrics := setupMetrics()
	if !cfg.MetricsEnabled {
		metricsHandler = nil
	}

	submitter := leads.NewLogSubmitter(logger)
	svc := landing.NewService(landing.ServiceConfig{
		Store:          sessions.Store,
		Submitter:      submitter,
		Content:        content,
		Metrics:        leadMetrics,
		Logger:         logger,
		SuccessDisplay: cfg.LeadSuccessDisplay,
	})

	renderer, err := web.NewRenderer()
	if err != nil {
		_ = sessions.Close()
		return nil, err
	}

	var limiter *httpmiddleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	var pinger handlers.Pinger
	if sessions.Redis != nil {
		pinger = sessions
	}

	r := router.New(&router.Config{
		Logger:         logger,
		PageHandler:    handlers.NewPageHandler(svc, renderer, logger),
		LeadsHandler:   leads.NewHandler(submitter, leadMetrics, logger),
		HealthHandler:  handlers.NewHealthHandler(pinger, logger),
		StaticHandler:  web.StaticHandler(),
		MetricsHandler: metricsHandler,
		SessionCookie: httpmiddleware.SessionCookie{
			Name:   cfg.SessionCookieName,
			TTL:    cfg.SessionTTL,
			Secure: cfg.SessionCookieSecure,
		},
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        limiter,
	})

	return &application{
		server: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      otelhttp.NewHandler(r, "landing.http"),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		sessions: sessions,
		limiter:  limiter,
		logger:   logger,
	}, nil
}
