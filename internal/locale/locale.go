// Package locale holds the per-language rule tables driving wikitext
// transformation. Tables are plain data loaded once at startup and read-only
// afterwards; nothing in this package touches global state.
package locale

import (
	"fmt"
	"regexp"
)

// MultiFunc formats the arguments of one template. parts is the full
// pipe-split invocation with parts[0] being the template name; every part is
// already whitespace-trimmed. Implementations must be pure.
type MultiFunc func(parts []string) string

// Tables is the full rule set for one locale.
type Tables struct {
	// Code is the locale identifier, e.g. "fr".
	Code string

	// SectionPrefixes lists heading prefixes marking sections that belong
	// to this locale. A section matches when its trimmed title starts with
	// any of them.
	SectionPrefixes []string

	// PronunciationPattern and GenrePattern are searched against the full
	// page wikitext; the first capture group is the extracted value.
	PronunciationPattern *regexp.Regexp
	GenrePattern         *regexp.Regexp

	// Ignored templates expand to nothing.
	Ignored map[string]struct{}

	// Italic maps a template name to a label rendered as <i>(Label)</i>.
	Italic map[string]string

	// Multi maps a template name to a formatting function over its parts.
	Multi map[string]MultiFunc

	// Other maps a template name to a literal replacement string.
	Other map[string]string

	// WarningSkip templates are exempt from malformed-spacing warnings.
	WarningSkip map[string]struct{}
}

// For returns the rule tables for the given locale code.
func For(code string) (*Tables, error) {
	switch code {
	case "fr":
		return frTables(), nil
	default:
		return nil, fmt.Errorf("unsupported locale %q", code)
	}
}
