package dump

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Page is one dump record: a title and its current revision's wikitext.
type Page struct {
	Title    string
	Wikitext string
}

// xmlPage mirrors the MediaWiki export schema for the fields we keep.
type xmlPage struct {
	Title    string    `xml:"title"`
	Redirect *struct{} `xml:"redirect"`
	Text     string    `xml:"revision>text"`
}

// Pages streams every page of a dump, calling fn once per page. Each element
// is decoded and released before the next one is read, keeping memory flat on
// multi-gigabyte dumps. Redirect pages and pages without revision text are
// surfaced as a zero Page. An error from fn stops the iteration and is
// returned as-is.
func Pages(r io.Reader, fn func(Page) error) error {
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("dump: read token: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}

		var p xmlPage
		if err := dec.DecodeElement(&p, &se); err != nil {
			return fmt.Errorf("dump: decode page: %w", err)
		}

		page := Page{Title: p.Title, Wikitext: p.Text}
		if p.Redirect != nil || p.Text == "" {
			page = Page{}
		}
		if err := fn(page); err != nil {
			return err
		}
	}
}
