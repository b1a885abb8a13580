package wikitext

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pverdier/wikidict/internal/locale"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	tables, err := locale.For("fr")
	if err != nil {
		t.Fatalf("locale.For: %v", err)
	}
	return NewParser(tables, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTransform(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		template string
		want     string
	}{
		// Cross-reference: visible text is the last argument.
		{"w|ISO 639-3", "ISO 639-3"},
		{"w|Gesse aphaca|Lathyrus aphaca", "Lathyrus aphaca"},
		{"w | ISO 639-3", "ISO 639-3"},

		// Ignored templates.
		{"ébauche-déf|fr", ""},
		{"refnec|fr", ""},

		// Multi-table formatting functions.
		{"chim|H|2|O", "H<sub>2</sub>O"},
		{"nom w pc|Aldous|Huxley", "Aldous <span style='font-variant:small-caps'>Huxley</span>"},
		{"siècle2|19", "XIXᵉ"},
		{"sport|fr|collectif", "<i>(Sport collectif)</i>"},
		{"term|poésie", "<i>(Poésie)</i>"},
		{"unité|92|%", "92%"},

		// Italic table.
		{"fam|fr", "<i>(Familier)</i>"},
		{"QC|fr", "<i>(Québec)</i>"},

		// Other table.
		{"e", "<sup>e</sup>"},

		// Name + one argument: italic parenthetical of the capitalized name.
		{"grammaire|fr", "<i>(Grammaire)</i>"},

		// More than two unhandled parts: decorative, dropped.
		{"conj|grp=1|fr", ""},

		// Bare name and empty name.
		{"unknown", "<i>(Unknown)</i>"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := p.Transform("foo", tt.template); got != tt.want {
			t.Errorf("Transform(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestTransform_SpacingWarning(t *testing.T) {
	tables, err := locale.For("fr")
	if err != nil {
		t.Fatalf("locale.For: %v", err)
	}

	tests := []struct {
		name     string
		template string
		wantWarn bool
	}{
		{"extra spaces warned", "grammaire | fr", true},
		{"skip-listed template", "w | ISO 639-3", false},
		{"no extra spaces", "grammaire|fr", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewParser(tables, slog.New(slog.NewTextHandler(&buf, nil)))

			p.Transform("foo", tt.template)

			got := strings.Contains(buf.String(), "extra spaces")
			if got != tt.wantWarn {
				t.Errorf("warning emitted = %v, want %v (log: %s)", got, tt.wantWarn, buf.String())
			}
		})
	}
}
