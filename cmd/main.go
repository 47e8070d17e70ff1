package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/adenchik/leadboard/internal/adapters/dotaapi"
	"github.com/adenchik/leadboard/internal/adapters/http/api"
	"github.com/adenchik/leadboard/internal/adapters/http/site"
	"github.com/adenchik/leadboard/internal/adapters/http/swagger"
	"github.com/adenchik/leadboard/internal/adapters/repository"
	"github.com/adenchik/leadboard/internal/app"
	"github.com/adenchik/leadboard/internal/config"
	"github.com/adenchik/leadboard/internal/fetcher"
	"github.com/adenchik/leadboard/internal/scheduler"
	"github.com/adenchik/leadboard/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	// The custom metrics registry replaces the default Go collectors.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Schema initialization failure is the only fatal condition.
	db, err := repository.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open database", logger.Error(err))
		return
	}
	defer db.Close()
	if err := repository.Migrate(db); err != nil {
		log.Error(ctx, "failed to migrate database", logger.Error(err))
		return
	}
	store := repository.NewSQLStore(db)

	client := dotaapi.New(
		dotaapi.WithBaseURL(cfg.APIBaseURL),
		dotaapi.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.FetchTimeoutSec) * time.Second,
		}),
	)
	fetch := fetcher.New(client,
		fetcher.WithVariant(cfg.LeaderboardVariant),
		fetcher.WithLogger(log.Named("fetcher")),
	)

	sched := scheduler.New(fetch, store,
		scheduler.WithLogger(log.Named("scheduler")),
		scheduler.WithFallbackSleep(time.Duration(cfg.FallbackSleepSec)*time.Second),
		scheduler.WithEmptySleep(time.Duration(cfg.EmptySleepSec)*time.Second),
		scheduler.WithErrorSleep(time.Duration(cfg.ErrorSleepSec)*time.Second),
	)
	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		sched.Run(ctx)
	}()

	svc := app.New(store, app.WithLogger(log.Named("app")))

	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)
	swagger.Register(ctx, mux)
	site.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal; the same ctx interrupts the scheduler's
	// sleep so the process exits promptly.
	<-ctx.Done()
	log.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	<-schedDone

	log.Info(ctx, "stopped")
}
