// Package word is the PostgreSQL repository for dictionary entries and
// snapshot bookkeeping.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pverdier/wikidict/internal/adapter/postgres"
	"github.com/pverdier/wikidict/internal/domain"
)

// psql builds queries with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo persists dictionary entries.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

func NewRepo(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ReplaceSnapshot swaps the dictionary content in one transaction: the
// snapshot row is upserted by date, previous entries are cleared and the new
// ones batch-inserted in chunks of batchSize. Either everything lands or
// nothing does.
func (r *Repo) ReplaceSnapshot(ctx context.Context, snap domain.Snapshot, entries []domain.Entry, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 1000
	}

	return r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		q := postgres.QuerierFromCtx(txCtx, r.pool)

		_, err := q.Exec(txCtx,
			`INSERT INTO dict_snapshots (id, date, entry_count, imported_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (date) DO UPDATE
			 SET entry_count = EXCLUDED.entry_count, imported_at = EXCLUDED.imported_at`,
			snap.ID, snap.Date, snap.EntryCount, snap.ImportedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert snapshot: %w", err)
		}

		if _, err := q.Exec(txCtx, `DELETE FROM dict_entries`); err != nil {
			return fmt.Errorf("clear entries: %w", err)
		}

		for start := 0; start < len(entries); start += batchSize {
			end := min(start+batchSize, len(entries))
			if err := r.insertBatch(txCtx, q, entries[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
}

// insertBatch inserts one chunk of entries using pgx.Batch. Duplicate words
// cannot occur within a run (the dictionary map is keyed by word), so a
// conflict means a concurrent writer and is surfaced as an error.
func (r *Repo) insertBatch(ctx context.Context, q postgres.Querier, entries []domain.Entry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO dict_entries (id, word, pronunciation, genre, definitions, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, e.Word, e.Pronunciation, e.Genre, e.Definitions, e.CreatedAt,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for _, e := range entries {
		if _, err := results.Exec(); err != nil {
			return mapError(err, "entry", e.Word)
		}
	}
	return nil
}

// GetByWord returns the entry for an exact word key.
// Returns domain.ErrNotFound when the word is absent.
func (r *Repo) GetByWord(ctx context.Context, word string) (*domain.Entry, error) {
	query, args, err := psql.
		Select("id", "word", "pronunciation", "genre", "definitions", "created_at").
		From("dict_entries").
		Where(sq.Eq{"word": word}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var e domain.Entry
	err = q.QueryRow(ctx, query, args...).
		Scan(&e.ID, &e.Word, &e.Pronunciation, &e.Genre, &e.Definitions, &e.CreatedAt)
	if err != nil {
		return nil, mapError(err, "entry", word)
	}
	return &e, nil
}

// SearchPrefix returns up to limit entries whose word starts with prefix,
// ordered alphabetically.
func (r *Repo) SearchPrefix(ctx context.Context, prefix string, limit int) ([]domain.Entry, error) {
	query, args, err := psql.
		Select("id", "word", "pronunciation", "genre", "definitions", "created_at").
		From("dict_entries").
		Where(sq.Like{"word": escapeLike(prefix) + "%"}).
		OrderBy("word").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.Word, &e.Pronunciation, &e.Genre, &e.Definitions, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, _, err := psql.Select("COUNT(*)").From("dict_entries").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// LatestSnapshot returns the most recent snapshot by date.
// Returns domain.ErrNotFound when no run has been persisted yet.
func (r *Repo) LatestSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	query, _, err := psql.
		Select("id", "date", "entry_count", "imported_at").
		From("dict_snapshots").
		OrderBy("date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var s domain.Snapshot
	err = q.QueryRow(ctx, query).Scan(&s.ID, &s.Date, &s.EntryCount, &s.ImportedAt)
	if err != nil {
		return nil, mapError(err, "snapshot", "latest")
	}
	return &s, nil
}

// escapeLike escapes LIKE metacharacters in a user-supplied prefix.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
