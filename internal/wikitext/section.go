package wikitext

import "strings"

// section is one heading-delimited region of a page. The body runs until the
// next heading of any level; subsections are not nested.
type section struct {
	title string
	body  string
}

// splitSections cuts wikitext at every heading line. Text before the first
// heading has no title and is discarded.
func splitSections(code string) []section {
	var (
		sections []section
		current  *section
		body     []string
	)
	flush := func() {
		if current != nil {
			current.body = strings.Join(body, "\n")
			sections = append(sections, *current)
		}
		body = body[:0]
	}

	for _, line := range strings.Split(code, "\n") {
		if title, ok := headingTitle(line); ok {
			flush()
			current = &section{title: title}
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return sections
}

// headingTitle extracts the title of a heading line ("== title =="). The
// equal-sign runs on both ends are stripped, inner spaces kept except at the
// edges.
func headingTitle(line string) (string, bool) {
	trimmed := strings.TrimRight(line, " \t")
	if len(trimmed) < 2 || trimmed[0] != '=' || trimmed[len(trimmed)-1] != '=' {
		return "", false
	}
	title := strings.Trim(trimmed, "=")
	if title == "" {
		return "", false
	}
	return strings.TrimSpace(title), true
}

// isListChar reports whether c opens a wiki list item.
func isListChar(c byte) bool {
	return c == '#' || c == '*' || c == ':' || c == ';'
}

// firstListItems returns the top-level items of the first list in body.
// The list's marker is fixed by its first line; deeper items (##, #*, #:)
// belong to sublists and are skipped; any non-matching line ends the list.
func firstListItems(body string) []string {
	var items []string
	var marker byte

	for _, line := range strings.Split(body, "\n") {
		if line == "" || !isListChar(line[0]) {
			if marker != 0 {
				break
			}
			continue
		}
		if marker == 0 {
			marker = line[0]
		}
		if line[0] != marker {
			break
		}
		if len(line) > 1 && isListChar(line[1]) {
			// Sublist item, not handled.
			continue
		}
		items = append(items, line[1:])
	}
	return items
}
