// Command retrieve downloads a Wiktionary dump snapshot, extracts dictionary
// entries from it and replaces the stored dictionary with the result.
// It is intended to be run offline on a schedule, not as part of a server.
//
// Flags:
//
//	--snapshot  dump date to process (YYYYMMDD, default: latest available)
//	--dry-run   parse the dump without writing to DB
//
// The WIKI_DUMP environment variable is an alternative to --snapshot.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pverdier/wikidict/internal/adapter/postgres"
	"github.com/pverdier/wikidict/internal/adapter/postgres/word"
	"github.com/pverdier/wikidict/internal/app"
	"github.com/pverdier/wikidict/internal/builder"
	"github.com/pverdier/wikidict/internal/config"
	"github.com/pverdier/wikidict/internal/dump"
	"github.com/pverdier/wikidict/internal/locale"
	"github.com/pverdier/wikidict/internal/wikitext"
)

var errNoSnapshots = errors.New("no snapshots available on the dump index")

// Compile-time interface assertions.
var (
	_ builder.EntryRepo  = (*word.Repo)(nil)
	_ builder.PageParser = (*wikitext.Parser)(nil)
)

func main() {
	snapshotFlag := flag.String("snapshot", "", "dump date to process (YYYYMMDD, default: latest)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dump without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("retrieve starting",
		slog.String("version", app.BuildVersion()),
		slog.String("locale", cfg.Wiktionary.Locale))

	// CLI flags override config.
	if *snapshotFlag != "" {
		cfg.Wiktionary.Snapshot = *snapshotFlag
	}
	if *dryRunFlag {
		cfg.Wiktionary.DryRun = true
	}
	if !cfg.Wiktionary.DryRun && cfg.Database.DSN == "" {
		logger.Error("database.dsn is required unless --dry-run is set")
		os.Exit(1)
	}

	tables, err := locale.For(cfg.Wiktionary.Locale)
	if err != nil {
		logger.Error("unsupported locale", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Wiktionary.DataDir, 0o755); err != nil {
		logger.Error("create data dir", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Dump download plus full parse of ~4M pages; generous timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 6*time.Hour)
	defer cancel()

	fetcher := dump.NewFetcher(cfg.Wiktionary.Locale, cfg.Wiktionary.DataDir, logger)

	date, xmlPath, err := fetchDump(ctx, fetcher, cfg.Wiktionary.Snapshot, logger)
	if err != nil {
		logger.Error("fetch dump", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var repo builder.EntryRepo
	if !cfg.Wiktionary.DryRun {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		repo = word.NewRepo(pool, postgres.NewTxManager(pool))
	}

	pipeline := builder.NewPipeline(logger, wikitext.NewParser(tables, logger), repo, builder.Config{
		Workers:   cfg.Wiktionary.Workers,
		BatchSize: cfg.Wiktionary.BatchSize,
		DryRun:    cfg.Wiktionary.DryRun,
	})

	stats, err := pipeline.Run(ctx, xmlPath, date)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("retrieve completed",
		slog.String("snapshot", date),
		slog.Int("entries", stats.Entries),
		slog.Duration("duration", stats.Duration))
}

// fetchDump resolves which snapshot to download and returns its date and the
// decompressed XML path. With no pinned snapshot the latest one is tried
// first; if its download fails (typically a dump still being generated) the
// previous snapshot is tried once before giving up.
func fetchDump(ctx context.Context, fetcher *dump.Fetcher, pinned string, logger *slog.Logger) (string, string, error) {
	if pinned != "" {
		path, err := fetcher.Download(ctx, pinned)
		return pinned, path, err
	}

	dates, err := fetcher.Snapshots(ctx)
	if err != nil {
		return "", "", err
	}
	if len(dates) == 0 {
		return "", "", errNoSnapshots
	}

	date := dates[len(dates)-1]
	path, err := fetcher.Download(ctx, date)
	if err == nil {
		return date, path, nil
	}
	if len(dates) < 2 {
		return "", "", err
	}

	logger.Warn("latest snapshot unavailable, falling back to previous",
		slog.String("latest", date),
		slog.String("error", err.Error()))

	date = dates[len(dates)-2]
	path, err = fetcher.Download(ctx, date)
	return date, path, err
}
