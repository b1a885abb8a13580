// Package wikitext converts raw wiki markup into cleaned dictionary content:
// it locates locale sections, extracts definition lists, expands templates and
// strips markup down to HTML-light text.
package wikitext

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/pverdier/wikidict/internal/locale"
)

// Parser turns a page's wikitext into entry data using one locale's rule
// tables. It is stateless apart from the read-only tables and safe for
// concurrent use.
type Parser struct {
	tables *locale.Tables
	log    *slog.Logger
}

func NewParser(tables *locale.Tables, log *slog.Logger) *Parser {
	return &Parser{tables: tables, log: log}
}

// nearEmptyRe matches definitions carrying no real content: zero or more
// parenthetical tags with optional trailing punctuation or ellipsis, e.g.
// "<i>(Maçonnerie)</i>" or "(Poésie) …". A bare ellipsis with no parenthetical
// does not match and is retained.
var nearEmptyRe = regexp.MustCompile(`^((?:<i>)?\([\p{L}\p{N}_ ]+\)(?:</i>)?\.? ?\??…?)*$`)

// Parse extracts the pronunciation, grammatical genre and cleaned definitions
// of a word from its full page wikitext. Pronunciation and genre are only
// looked up when at least one definition was found, unless force is set
// (single-word diagnostic lookups).
func (p *Parser) Parse(word, code string, force bool) (pronunciation, genre string, definitions []string) {
	definitions = p.findDefinitions(word, p.localeSections(code))

	if len(definitions) > 0 || force {
		pronunciation = firstGroup(p.tables.PronunciationPattern, code)
		genre = firstGroup(p.tables.GenrePattern, code)
	}
	return pronunciation, genre, definitions
}

// localeSections keeps the sections whose title starts with one of the
// locale's heading prefixes.
func (p *Parser) localeSections(code string) []section {
	var matched []section
	for _, sec := range splitSections(code) {
		title := strings.TrimLeft(sec.title, " ")
		for _, prefix := range p.tables.SectionPrefixes {
			if strings.HasPrefix(title, prefix) {
				matched = append(matched, sec)
				break
			}
		}
	}
	return matched
}

// findDefinitions cleans the first list of every matched section, drops
// near-empty items and deduplicates across sections preserving first-seen
// order.
func (p *Parser) findDefinitions(word string, sections []section) []string {
	var definitions []string
	for _, sec := range sections {
		for _, item := range firstListItems(sec.body) {
			d := p.Clean(word, strings.TrimSpace(item))
			if nearEmptyRe.MatchString(d) {
				continue
			}
			definitions = append(definitions, d)
		}
	}
	if len(definitions) == 0 {
		return nil
	}
	return dedupe(definitions)
}

func firstGroup(re *regexp.Regexp, code string) string {
	if m := re.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	return ""
}

// dedupe removes exact duplicates preserving first occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0:0]
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
