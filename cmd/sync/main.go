// Command sync runs a single fetch-and-persist cycle and exits. Useful for
// seeding a fresh database or refreshing one from cron instead of the
// long-running service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adenchik/leadboard/internal/adapters/dotaapi"
	"github.com/adenchik/leadboard/internal/adapters/repository"
	"github.com/adenchik/leadboard/internal/config"
	"github.com/adenchik/leadboard/internal/fetcher"
	"github.com/adenchik/leadboard/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	db, err := repository.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open database", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	if err := repository.Migrate(db); err != nil {
		log.Error(ctx, "failed to migrate database", logger.Error(err))
		os.Exit(1)
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

	snap := fetch.FetchAll(ctx)
	if snap == nil {
		log.Error(ctx, "no region returned any data")
		os.Exit(1)
	}

	total := 0
	for region, rows := range snap.Regions {
		if len(rows) == 0 {
			continue
		}
		if err := store.ReplaceRegion(ctx, region, rows); err != nil {
			log.Error(ctx, "failed to persist region",
				logger.String("region", region.String()), logger.Error(err))
			os.Exit(1)
		}
		total += len(rows)
	}
	if err := store.UpsertMetadata(ctx, repository.KeyTimePosted, snap.TimePosted); err != nil {
		log.Error(ctx, "failed to persist metadata", logger.Error(err))
		os.Exit(1)
	}
	if err := store.UpsertMetadata(ctx, repository.KeyNextScheduledPostTime, snap.NextScheduledPostTime); err != nil {
		log.Error(ctx, "failed to persist metadata", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "sync complete",
		logger.String("database", cfg.DatabasePath),
		logger.Int("regions", len(snap.Regions)),
		logger.Int("players", total),
	)
}
