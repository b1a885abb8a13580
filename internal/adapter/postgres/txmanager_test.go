//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pverdier/wikidict/internal/adapter/postgres"
	"github.com/pverdier/wikidict/internal/adapter/postgres/testhelper"
)

// snapshotExists checks whether a snapshot row with the given date exists.
func snapshotExists(t *testing.T, pool *pgxpool.Pool, date string) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM dict_snapshots WHERE date = $1)`,
		date,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("snapshotExists query: %v", err)
	}
	return exists
}

func insertSnapshot(ctx context.Context, q postgres.Querier, date string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO dict_snapshots (id, date, entry_count, imported_at)
		 VALUES ($1, $2, 0, now())`,
		uuid.New(), date,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertSnapshot(ctx, postgres.QuerierFromCtx(ctx, pool), "20210101")
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !snapshotExists(t, pool, "20210101") {
		t.Fatal("expected snapshot to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertSnapshot(ctx, postgres.QuerierFromCtx(ctx, pool), "20210102"); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("RunInTx error = %v, want sentinel", err)
	}

	if snapshotExists(t, pool, "20210102") {
		t.Fatal("expected snapshot to be rolled back")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			if err := insertSnapshot(ctx, postgres.QuerierFromCtx(ctx, pool), "20210103"); err != nil {
				return err
			}
			panic("boom")
		})
	}()

	if snapshotExists(t, pool, "20210103") {
		t.Fatal("expected snapshot to be rolled back after panic")
	}
}
