// Command import loads a CSV vocabulary file into the word library, the
// same way the /api/import endpoint does.
//
// Usage:
//
//	import -file=words.csv [-duplicates=skip|overwrite] [-clear] [-enrich]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/wordbook/internal/app"
	"github.com/heartmarshall/wordbook/internal/config"
	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/importer"
)

func main() {
	path := flag.String("file", "", "CSV file to import")
	duplicates := flag.String("duplicates", string(domain.DuplicateSkip), "what to do with words already in the library: skip or overwrite")
	clearAll := flag.Bool("clear", false, "delete every word before importing")
	enrich := flag.Bool("enrich", false, "fill missing fields from the dictionary API")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Usage: import -file=words.csv [-duplicates=skip|overwrite] [-clear] [-enrich]")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	f, err := os.Open(*path)
	if err != nil {
		logger.Error("open file", slog.String("path", *path), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	c, err := app.NewContainer(ctx, cfg, logger, clockwork.NewRealClock())
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	input := importer.ImportInput{
		Filename:        filepath.Base(*path),
		Reader:          f,
		DuplicateAction: domain.DuplicateAction(*duplicates),
		DatabaseAction:  domain.DatabaseAppend,
		Enrich:          *enrich,
	}
	if *clearAll {
		input.DatabaseAction = domain.DatabaseClear
	}

	result, err := c.Importer.Import(ctx, input)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, e := range result.Job.Errors {
		logger.Warn("row skipped", slog.Int("row", e.Row), slog.String("reason", e.Message))
	}
	logger.Info("import completed",
		slog.String("job_id", result.Job.ID.String()),
		slog.Int("imported", result.SuccessCount),
		slog.Int("errors", result.ErrorCount),
		slog.Int("duplicates", result.DuplicateCount),
		slog.Int("skipped", result.SkippedCount),
	)
	if result.Enrichment != nil {
		logger.Info("enrichment",
			slog.Int("looked", result.Enrichment.Looked),
			slog.Int("enriched", result.Enrichment.Enriched),
			slog.Int("not_found", result.Enrichment.NotFound),
			slog.Int("failed", result.Enrichment.Failed),
		)
	}
}
