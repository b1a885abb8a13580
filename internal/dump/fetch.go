// Package dump downloads wiki dump snapshots and streams their pages.
package dump

import (
	"compress/bzip2"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

const userAgent = "github.com/pverdier/wikidict"

// snapshotRe matches snapshot directory links on the dump index page.
var snapshotRe = regexp.MustCompile(`href="(\d+)/"`)

// Fetcher retrieves dump snapshots over HTTP and caches them on disk.
type Fetcher struct {
	indexURL   string // dump index listing snapshot dates
	wordURL    string // raw wikitext endpoint, takes the word as query value
	wiki       string // e.g. "frwiktionary"
	dir        string // download directory
	httpClient *http.Client
	log        *slog.Logger
}

// NewFetcher creates a Fetcher for the given locale, downloading into dir.
func NewFetcher(localeCode, dir string, logger *slog.Logger) *Fetcher {
	wiki := localeCode + "wiktionary"
	return NewFetcherWithURLs(
		"https://dumps.wikimedia.org/"+wiki,
		"https://"+localeCode+".wiktionary.org/w/index.php?action=raw&title=",
		localeCode, dir, logger,
	)
}

// NewFetcherWithURLs creates a Fetcher with custom endpoints (for testing).
func NewFetcherWithURLs(indexURL, wordURL, localeCode, dir string, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		indexURL:   indexURL,
		wordURL:    wordURL,
		wiki:       localeCode + "wiktionary",
		dir:        dir,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
		log:        logger.With("adapter", "dump"),
	}
}

// Snapshots scrapes the dump index page and returns the available snapshot
// dates sorted ascending.
func (f *Fetcher) Snapshots(ctx context.Context) ([]string, error) {
	body, err := f.get(ctx, f.indexURL)
	if err != nil {
		return nil, fmt.Errorf("dump: fetch index: %w", err)
	}

	var dates []string
	for _, m := range snapshotRe.FindAllStringSubmatch(string(body), -1) {
		dates = append(dates, m[1])
	}
	sort.Strings(dates)
	return dates, nil
}

// Download fetches the pages-meta-current archive for the given date and
// decompresses it, returning the path of the XML file. Both steps are skipped
// when their output is already on disk.
func (f *Fetcher) Download(ctx context.Context, date string) (string, error) {
	xmlPath := filepath.Join(f.dir, "pages-"+date+".xml")
	bz2Path := xmlPath + ".bz2"

	if fileExists(xmlPath) {
		f.log.InfoContext(ctx, "dump already decompressed", slog.String("path", xmlPath))
		return xmlPath, nil
	}

	if !fileExists(bz2Path) {
		if err := f.downloadArchive(ctx, date, bz2Path); err != nil {
			return "", err
		}
	}

	if err := decompress(bz2Path, xmlPath); err != nil {
		return "", fmt.Errorf("dump: decompress %s: %w", bz2Path, err)
	}
	return xmlPath, nil
}

// WordWikitext fetches one word's raw wikitext, used by diagnostic lookups.
func (f *Fetcher) WordWikitext(ctx context.Context, word string) (string, error) {
	body, err := f.get(ctx, f.wordURL+url.QueryEscape(word))
	if err != nil {
		return "", fmt.Errorf("dump: fetch word %q: %w", word, err)
	}
	return string(body), nil
}

func (f *Fetcher) downloadArchive(ctx context.Context, date, dest string) error {
	archiveURL := fmt.Sprintf("%s/%s/%s-%s-pages-meta-current.xml.bz2", f.indexURL, date, f.wiki, date)

	f.log.InfoContext(ctx, "downloading dump",
		slog.String("date", date),
		slog.String("url", archiveURL))
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return fmt.Errorf("dump: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("dump: fetch archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dump: fetch archive: unexpected status %d", resp.StatusCode)
	}

	if err := writeAtomic(dest, resp.Body); err != nil {
		return fmt.Errorf("dump: write archive: %w", err)
	}

	f.log.InfoContext(ctx, "dump downloaded",
		slog.String("path", dest),
		slog.Duration("took", time.Since(start)))
	return nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// decompress inflates a bz2 archive next to it, writing atomically so a
// partial decompression never masquerades as a finished one.
func decompress(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	return writeAtomic(dst, bzip2.NewReader(in))
}

func writeAtomic(dest string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
