package wikitext

import (
	"log/slog"
	"strings"

	"github.com/pverdier/wikidict/internal/locale"
)

// crossRefTemplate links to an encyclopedia article; its visible text is the
// last argument: {{w|X}} -> X, {{w|X|Y}} -> Y.
const crossRefTemplate = "w"

// Transform expands one template invocation. template is the text between the
// double-brace delimiters, already stripped of them. Resolution goes through
// the locale tables in a fixed order; an unknown template degrades to an
// italic parenthetical of its capitalized name or to the empty string, never
// an error.
func (p *Parser) Transform(word, template string) string {
	rawParts := strings.Split(template, "|")
	parts := make([]string, len(rawParts))
	trimmed := false
	for i, raw := range rawParts {
		parts[i] = strings.TrimSpace(raw)
		if parts[i] != raw {
			trimmed = true
		}
	}
	name := parts[0]

	// Spacing inside an invocation is an authoring mistake worth surfacing,
	// except for templates where it is conventional.
	if trimmed {
		if _, skip := p.tables.WarningSkip[name]; !skip {
			p.log.Warn("extra spaces in template invocation",
				slog.String("word", word),
				slog.String("template", template))
		}
	}

	if _, ok := p.tables.Ignored[name]; ok {
		return ""
	}

	if name == crossRefTemplate {
		return parts[len(parts)-1]
	}

	if format, ok := p.tables.Multi[name]; ok {
		return format(parts)
	}

	if label, ok := p.tables.Italic[name]; ok {
		return "<i>(" + label + ")</i>"
	}

	if replacement, ok := p.tables.Other[name]; ok {
		return replacement
	}

	// {{grammaire|fr}} -> <i>(Grammaire)</i>
	if len(parts) == 2 {
		return "<i>(" + locale.Capitalize(name) + ")</i>"
	}

	// {{conj|grp=1|fr}} -> "" — several unhandled arguments mean a
	// decorative template.
	if len(parts) > 2 {
		return ""
	}

	if name == "" {
		return ""
	}
	return "<i>(" + locale.Capitalize(name) + ")</i>"
}
