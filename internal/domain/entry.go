package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Genre codes extracted from gender templates.
const (
	GenreMasculine = "m"
	GenreFeminine  = "f"
	GenreNeuter    = "n"
)

// Entry is one dictionary record: a word with its pronunciation, grammatical
// genre and ordered definitions. An entry only exists when at least one
// definition survived cleaning, so Definitions is never empty in storage.
type Entry struct {
	ID            uuid.UUID
	Word          string
	Pronunciation string
	Genre         string
	Definitions   []string
	CreatedAt     time.Time
}

// Snapshot identifies one processed dump: its date stamp (YYYYMMDD) and how
// many entries it produced.
type Snapshot struct {
	ID         uuid.UUID
	Date       string
	EntryCount int
	ImportedAt time.Time
}

// SkipTitle reports whether a page title can never yield an entry:
// shorter than two characters, or namespaced (contains ':').
func SkipTitle(title string) bool {
	return utf8.RuneCountInString(title) < 2 || strings.Contains(title, ":")
}

// NormalizeKey prepares a page title for use as a dictionary key: trimmed,
// lowercased, runs of spaces compressed to one. Diacritics, hyphens and
// apostrophes are preserved.
func NormalizeKey(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	if !strings.Contains(title, "  ") {
		return title
	}

	var b strings.Builder
	b.Grow(len(title))
	prevSpace := false
	for _, r := range title {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
