// Package builder turns a decompressed dump into persisted dictionary
// entries: pages are streamed, parsed by a worker pool and stored as one
// snapshot.
package builder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pverdier/wikidict/internal/domain"
	"github.com/pverdier/wikidict/internal/dump"
)

// PageParser extracts entry data from one page's wikitext.
type PageParser interface {
	Parse(word, code string, force bool) (pronunciation, genre string, definitions []string)
}

// EntryRepo is what the pipeline needs from persistence.
type EntryRepo interface {
	ReplaceSnapshot(ctx context.Context, snap domain.Snapshot, entries []domain.Entry, batchSize int) error
}

// Config holds pipeline tuning knobs.
type Config struct {
	Workers   int
	BatchSize int
	// DryRun parses the whole dump but skips persistence.
	DryRun bool
}

// Stats summarizes one run.
type Stats struct {
	Pages    int
	Skipped  int
	Failed   int
	Entries  int
	Duration time.Duration
}

// Pipeline orchestrates stream → parse → persist for one dump snapshot.
type Pipeline struct {
	log    *slog.Logger
	parser PageParser
	repo   EntryRepo
	cfg    Config
}

func NewPipeline(log *slog.Logger, parser PageParser, repo EntryRepo, cfg Config) *Pipeline {
	return &Pipeline{log: log, parser: parser, repo: repo, cfg: cfg}
}

// Run processes the decompressed dump at dumpPath and persists the result
// under snapshotDate. A run yielding zero entries aborts with
// domain.ErrEmptyDictionary: that means the section patterns no longer match
// the dump, not a sparse dump.
func (p *Pipeline) Run(ctx context.Context, dumpPath, snapshotDate string) (Stats, error) {
	start := time.Now()

	f, err := os.Open(dumpPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open dump: %w", err)
	}
	defer f.Close()

	p.log.Info("processing dump",
		slog.String("path", dumpPath),
		slog.String("snapshot", snapshotDate),
		slog.Int("workers", p.cfg.Workers))

	entries, stats, err := p.build(ctx, f)
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, err
	}
	if len(entries) == 0 {
		return stats, domain.ErrEmptyDictionary
	}
	stats.Entries = len(entries)

	if p.cfg.DryRun {
		p.log.Info("dry run, skipping persistence", slog.Int("entries", stats.Entries))
		return stats, nil
	}

	snap := domain.Snapshot{
		ID:         uuid.New(),
		Date:       snapshotDate,
		EntryCount: len(entries),
		ImportedAt: time.Now().UTC(),
	}
	if err := p.repo.ReplaceSnapshot(ctx, snap, entries, p.cfg.BatchSize); err != nil {
		return stats, fmt.Errorf("persist snapshot %s: %w", snapshotDate, err)
	}

	stats.Duration = time.Since(start)
	p.log.Info("dump processed",
		slog.Int("pages", stats.Pages),
		slog.Int("entries", stats.Entries),
		slog.Int("skipped", stats.Skipped),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", stats.Duration))
	return stats, nil
}

// build fans pages out to a worker pool and collects entries into a map
// keyed by word. Page order carries no meaning, so workers race freely; the
// final slice is sorted for deterministic persistence.
func (p *Pipeline) build(ctx context.Context, r io.Reader) ([]domain.Entry, Stats, error) {
	workers := p.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	pages := make(chan dump.Page, workers*2)
	results := make(chan domain.Entry, workers*2)

	var total, skipped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(pages)
		return dump.Pages(r, func(page dump.Page) error {
			if err := gctx.Err(); err != nil {
				return err
			}
			total.Add(1)
			select {
			case pages <- page:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for page := range pages {
				entry, panicked := p.parsePage(page)
				if panicked {
					failed.Add(1)
					continue
				}
				if entry == nil {
					skipped.Add(1)
					continue
				}
				select {
				case results <- *entry:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	byWord := make(map[string]domain.Entry)
	for e := range results {
		byWord[e.Word] = e
	}

	stats := Stats{
		Pages:   int(total.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	entries := make([]domain.Entry, 0, len(byWord))
	for _, e := range byWord {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	return entries, stats, nil
}

// parsePage turns one page into an entry, or nil when the page yields none.
// A panic while parsing is recovered and logged with the page title so one
// broken page never aborts the batch.
func (p *Pipeline) parsePage(page dump.Page) (entry *domain.Entry, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("page parse panic",
				slog.String("title", page.Title),
				slog.Any("panic", r))
			entry, panicked = nil, true
		}
	}()

	if domain.SkipTitle(page.Title) {
		return nil, false
	}

	word := domain.NormalizeKey(page.Title)
	pronunciation, genre, definitions := p.parser.Parse(word, page.Wikitext, false)
	if len(definitions) == 0 {
		return nil, false
	}

	return &domain.Entry{
		ID:            uuid.New(),
		Word:          word,
		Pronunciation: pronunciation,
		Genre:         genre,
		Definitions:   definitions,
		CreatedAt:     time.Now().UTC(),
	}, false
}
