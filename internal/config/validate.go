package config

import (
	"fmt"
	"regexp"
)

var snapshotDateRe = regexp.MustCompile(`^\d{8}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Wiktionary.validate(); err != nil {
		return fmt.Errorf("wiktionary: %w", err)
	}
	return nil
}

func (w *WiktionaryConfig) validate() error {
	if w.Locale == "" {
		return fmt.Errorf("locale must not be empty")
	}
	if w.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", w.Workers)
	}
	if w.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", w.BatchSize)
	}
	if w.Snapshot != "" && !snapshotDateRe.MatchString(w.Snapshot) {
		return fmt.Errorf("snapshot must be a YYYYMMDD date (got %q)", w.Snapshot)
	}
	return nil
}
