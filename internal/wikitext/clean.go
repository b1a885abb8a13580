package wikitext

import (
	"regexp"
	"strings"
)

var (
	boldItalicRe = regexp.MustCompile(`'''?([^']+)'''?`)
	refTagRe     = regexp.MustCompile(`<ref[^>]*>[^<]+</ref[^>]*>`)
	brTagRe      = regexp.MustCompile(`<br[^>]+/?>`)
	fileEmbedRe  = regexp.MustCompile(`\[\[.+:[^|\]]+(?:\|[^\]]+){2,}\]\]`)
	linkRe       = regexp.MustCompile(`\[\[([^|\]]+)\]\]`)
	linkLabelRe  = regexp.MustCompile(`\[\[[^|]+\|([^\]]+)\]\]`)
	tableRe      = regexp.MustCompile(`\{\|[^}]+\|\}`)
	headingRe    = regexp.MustCompile(`(?m)^=+\s?([^=]+)\s?=+`)
	nsLinkRe     = regexp.MustCompile(`\[\[[^:\]]+:[^\]]+\]\]`)
	extLinkRe    = regexp.MustCompile(`\[http[^\s]+ ([^\]]+)\]`)
	bareURLRe    = regexp.MustCompile(`https?://[^\s]+`)
	listMarkRe   = regexp.MustCompile(`(?m)^\*+\s?`)
	magicWordRe  = regexp.MustCompile(`__\w+__`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
	spaceDotRe   = regexp.MustCompile(`\s+\.`)

	// A leaf template contains no nested opening braces.
	leafTemplateRe = regexp.MustCompile(`\{\{[^{}]*\}\}`)
)

// Clean normalizes a wikitext fragment into displayable HTML-light text:
// formatting markers, links, tables, headings and magic words are resolved,
// then every template is expanded through Transform. Total over any input;
// malformed markup degrades to partial cleanup, never an error.
func (p *Parser) Clean(word, text string) string {
	// Basic formatting: '''bold''' and ''italic'' wrappers.
	text = boldItalicRe.ReplaceAllString(text, "$1")

	// Parser hooks: <ref>foo</ref>.
	text = refTagRe.ReplaceAllString(text, "")

	// HTML leftovers.
	text = brTagRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")

	// File embeds: [[File:picture.svg|thumb|120px|caption]].
	text = fileEmbedRe.ReplaceAllString(text, "")

	// Local links: [[a]] -> a, [[a|b]] -> b, then leftover brackets.
	text = linkRe.ReplaceAllString(text, "$1")
	text = linkLabelRe.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "[[", "")
	text = strings.ReplaceAll(text, "]]", "")

	// Tables: {|...|}.
	text = tableRe.ReplaceAllString(text, "")

	// Headings: == a == -> a.
	text = headingRe.ReplaceAllStringFunc(text, func(m string) string {
		return strings.TrimSpace(headingRe.FindStringSubmatch(m)[1])
	})

	// Remaining namespaced links: [[foo:b]].
	text = nsLinkRe.ReplaceAllString(text, "")

	// External links: [http://example.com foo] -> foo, bare URLs dropped.
	text = extLinkRe.ReplaceAllString(text, "$1")
	text = bareURLRe.ReplaceAllString(text, "")

	// Leading list markers.
	text = listMarkRe.ReplaceAllString(text, "")

	// Magic words: __TOC__.
	text = magicWordRe.ReplaceAllString(text, "")

	// Quotes left over from formatting markers.
	text = strings.ReplaceAll(text, "''", "")

	text = p.expandTemplates(word, text)

	// Whitespace normalization.
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = spaceDotRe.ReplaceAllString(text, ".")

	return strings.TrimSpace(text)
}

// expandTemplates resolves every {{...}} span bottom-up: leaves (spans with
// no nested braces) are expanded first, repeatedly, so an outer template
// never sees raw template text in its arguments. The linear pass afterwards
// consumes unbalanced leftovers, treating the first }} as the close and an
// unclosed {{ as running to the end of the string.
func (p *Parser) expandTemplates(word, text string) string {
	for {
		leaves := leafTemplateRe.FindAllString(text, -1)
		if len(leaves) == 0 {
			break
		}
		for _, tpl := range dedupe(leaves) {
			text = strings.ReplaceAll(text, tpl, p.Transform(word, tpl[2:len(tpl)-2]))
		}
	}

	for {
		start := strings.Index(text, "{{")
		if start < 0 {
			break
		}
		rest := text[start+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			text = text[:start] + p.Transform(word, rest)
			break
		}
		text = text[:start] + p.Transform(word, rest[:end]) + rest[end+2:]
	}

	return text
}
