// Command enrich fills missing phonetics, definitions, examples and
// synonyms of library words from the dictionary API. Only words whose
// information is not yet complete are looked up.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/wordbook/internal/app"
	"github.com/heartmarshall/wordbook/internal/config"
)

func main() {
	limit := flag.Int("limit", 100, "maximum number of words to enrich")
	flag.Parse()

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

	c, err := app.NewContainer(ctx, cfg, logger, clockwork.NewRealClock())
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	stats, err := c.Enricher.EnrichIncomplete(ctx, *limit)
	if err != nil {
		logger.Error("enrichment failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("enrichment completed",
		slog.Int("looked", stats.Looked),
		slog.Int("enriched", stats.Enriched),
		slog.Int("not_found", stats.NotFound),
		slog.Int("failed", stats.Failed),
	)
}
