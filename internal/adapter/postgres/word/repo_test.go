//go:build integration

package word_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pverdier/wikidict/internal/adapter/postgres"
	"github.com/pverdier/wikidict/internal/adapter/postgres/testhelper"
	"github.com/pverdier/wikidict/internal/adapter/postgres/word"
	"github.com/pverdier/wikidict/internal/domain"
)

func newRepo(t *testing.T) *word.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return word.NewRepo(pool, postgres.NewTxManager(pool))
}

func makeEntry(w, pron, genre string, defs ...string) domain.Entry {
	return domain.Entry{
		ID:            uuid.New(),
		Word:          w,
		Pronunciation: pron,
		Genre:         genre,
		Definitions:   defs,
		CreatedAt:     time.Now().UTC(),
	}
}

func makeSnapshot(date string, count int) domain.Snapshot {
	return domain.Snapshot{
		ID:         uuid.New(),
		Date:       date,
		EntryCount: count,
		ImportedAt: time.Now().UTC(),
	}
}

func TestReplaceSnapshot_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	entries := []domain.Entry{
		makeEntry("chat", "ʃa", "m", "Félin domestique.", "<i>(Familier)</i> Bavardage en ligne."),
		makeEntry("chien", "ʃjɛ̃", "m", "Canidé domestique."),
		makeEntry("eau", "o", "f", "H<sub>2</sub>O."),
	}

	err := repo.ReplaceSnapshot(ctx, makeSnapshot("20260101", len(entries)), entries, 2)
	require.NoError(t, err)

	got, err := repo.GetByWord(ctx, "chat")
	require.NoError(t, err)
	assert.Equal(t, "ʃa", got.Pronunciation)
	assert.Equal(t, "m", got.Genre)
	// Definition order must survive the text[] round trip.
	assert.Equal(t, []string{"Félin domestique.", "<i>(Familier)</i> Bavardage en ligne."}, got.Definitions)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(entries), count)

	snap, err := repo.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20260101", snap.Date)
	assert.Equal(t, len(entries), snap.EntryCount)
}

func TestReplaceSnapshot_ReplacesPreviousRun(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first := []domain.Entry{makeEntry("ancien", "ɑ̃.sjɛ̃", "m", "Qui existe depuis longtemps.")}
	require.NoError(t, repo.ReplaceSnapshot(ctx, makeSnapshot("20260201", 1), first, 100))

	second := []domain.Entry{makeEntry("nouveau", "nu.vo", "m", "Qui vient d'apparaître.")}
	require.NoError(t, repo.ReplaceSnapshot(ctx, makeSnapshot("20260301", 1), second, 100))

	_, err := repo.GetByWord(ctx, "ancien")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.GetByWord(ctx, "nouveau")
	require.NoError(t, err)
	assert.Equal(t, "nouveau", got.Word)

	snap, err := repo.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20260301", snap.Date)
}

func TestGetByWord_NotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByWord(context.Background(), "introuvable")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchPrefix(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	entries := []domain.Entry{
		makeEntry("chanter", "ʃɑ̃.te", "", "Émettre des sons musicaux."),
		makeEntry("chat", "ʃa", "m", "Félin domestique."),
		makeEntry("chaton", "ʃa.tɔ̃", "m", "Jeune chat."),
		makeEntry("chien", "ʃjɛ̃", "m", "Canidé domestique."),
	}
	require.NoError(t, repo.ReplaceSnapshot(ctx, makeSnapshot("20260401", len(entries)), entries, 100))

	got, err := repo.SearchPrefix(ctx, "cha", 10)
	require.NoError(t, err)

	words := make([]string, len(got))
	for i, e := range got {
		words[i] = e.Word
	}
	assert.Equal(t, []string{"chanter", "chat", "chaton"}, words)

	limited, err := repo.SearchPrefix(ctx, "cha", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	// LIKE metacharacters in the prefix must be literal.
	none, err := repo.SearchPrefix(ctx, "cha%", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReplaceSnapshot_ValidationErrors(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	// Empty definitions violate the table check constraint.
	bad := domain.Entry{
		ID:          uuid.New(),
		Word:        "vide",
		Definitions: []string{},
		CreatedAt:   time.Now().UTC(),
	}
	err := repo.ReplaceSnapshot(ctx, makeSnapshot("20260501", 1), []domain.Entry{bad}, 100)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// The failed run must not have wiped a previous successful one.
	good := []domain.Entry{makeEntry("plein", "plɛ̃", "m", "Rempli.")}
	require.NoError(t, repo.ReplaceSnapshot(ctx, makeSnapshot("20260502", 1), good, 100))

	err = repo.ReplaceSnapshot(ctx, makeSnapshot("20260503", 1), []domain.Entry{bad}, 100)
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := repo.GetByWord(ctx, "plein")
	require.NoError(t, err)
	assert.Equal(t, "plein", got.Word)
}

