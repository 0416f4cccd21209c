package config

import (
	"fmt"
	"strings"
	"time"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Store.validate(c.Database); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Review.MaxWordsPerSession <= 0 {
		return fmt.Errorf("review.max_words_per_session must be > 0 (got %d)", c.Review.MaxWordsPerSession)
	}
	if c.Import.MaxWordsPerImport <= 0 {
		return fmt.Errorf("import.max_words_per_import must be > 0 (got %d)", c.Import.MaxWordsPerImport)
	}
	if c.Import.EnrichConcurrency <= 0 {
		return fmt.Errorf("import.enrich_concurrency must be > 0 (got %d)", c.Import.EnrichConcurrency)
	}
	if c.Import.ProgressEvery <= 0 {
		return fmt.Errorf("import.progress_every must be > 0 (got %d)", c.Import.ProgressEvery)
	}
	if c.Dictionary.MaxWordsInLibrary <= 0 {
		return fmt.Errorf("dictionary.max_words_in_library must be > 0 (got %d)", c.Dictionary.MaxWordsInLibrary)
	}
	if c.Reminder.Enabled && c.Reminder.Interval < time.Second {
		return fmt.Errorf("reminder.interval must be at least 1s (got %v)", c.Reminder.Interval)
	}

	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	return nil
}

func (s *StoreConfig) validate(db DatabaseConfig) error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case DriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(db.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported driver %q (want sqlite or postgres)", s.Driver)
	}
	return nil
}

func (p *ProgressConfig) validate() error {
	if p.HeatmapDays <= 0 || p.HeatmapDays > 3660 {
		return fmt.Errorf("heatmap_days must be between 1 and 3660 (got %d)", p.HeatmapDays)
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	p.Location = loc
	return nil
}
