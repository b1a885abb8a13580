// Command lookup fetches one word's live wikitext from Wiktionary and prints
// what the extraction pipeline makes of it. It is a diagnostic tool for
// checking how a given page parses without processing a whole dump; it never
// touches the database.
//
// Usage:
//
//	lookup [--raw] WORD
//
// Flags:
//
//	--raw  keep HTML tags in the output instead of stripping them
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/pverdier/wikidict/internal/app"
	"github.com/pverdier/wikidict/internal/config"
	"github.com/pverdier/wikidict/internal/dump"
	"github.com/pverdier/wikidict/internal/locale"
	"github.com/pverdier/wikidict/internal/wikitext"
)

var htmlTagRe = regexp.MustCompile(`</?[^>]+>`)

func main() {
	rawFlag := flag.Bool("raw", false, "keep HTML tags in the output")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lookup [--raw] WORD")
		os.Exit(1)
	}
	word := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	tables, err := locale.For(cfg.Wiktionary.Locale)
	if err != nil {
		logger.Error("unsupported locale", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher := dump.NewFetcher(cfg.Wiktionary.Locale, cfg.Wiktionary.DataDir, logger)

	code, err := fetcher.WordWikitext(ctx, word)
	if err != nil {
		logger.Error("fetch wikitext", slog.String("error", err.Error()))
		os.Exit(1)
	}

	parser := wikitext.NewParser(tables, logger)
	// force: show pronunciation and genre even when no definition was found.
	pronunciation, genre, definitions := parser.Parse(word, code, true)

	fmt.Println(render(word, pronunciation, genre, definitions, *rawFlag))
}

// render formats a lookup result for the terminal:
//
//	chat \ʃa\ (m.)
//	 1. Petit félin domestique.
func render(word, pronunciation, genre string, definitions []string, raw bool) string {
	out := word
	if pronunciation != "" {
		out += fmt.Sprintf(" \\%s\\", pronunciation)
	}
	if genre != "" {
		out += fmt.Sprintf(" (%s.)", genre)
	}
	for i, def := range definitions {
		if !raw {
			def = htmlTagRe.ReplaceAllString(def, "")
		}
		out += fmt.Sprintf("\n%2d. %s", i+1, def)
	}
	return out
}
