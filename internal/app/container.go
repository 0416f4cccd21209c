package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/wordbook/internal/adapter/csvsource"
	"github.com/heartmarshall/wordbook/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordbook/internal/adapter/store"
	importjobrepo "github.com/heartmarshall/wordbook/internal/adapter/store/importjob"
	noterepo "github.com/heartmarshall/wordbook/internal/adapter/store/note"
	progressrepo "github.com/heartmarshall/wordbook/internal/adapter/store/progress"
	quizrepo "github.com/heartmarshall/wordbook/internal/adapter/store/quiz"
	sessionrepo "github.com/heartmarshall/wordbook/internal/adapter/store/session"
	tagrepo "github.com/heartmarshall/wordbook/internal/adapter/store/tag"
	wordrepo "github.com/heartmarshall/wordbook/internal/adapter/store/word"
	"github.com/heartmarshall/wordbook/internal/config"
	"github.com/heartmarshall/wordbook/internal/service/dictionary"
	"github.com/heartmarshall/wordbook/internal/service/enrichment"
	"github.com/heartmarshall/wordbook/internal/service/importer"
	"github.com/heartmarshall/wordbook/internal/service/progress"
	"github.com/heartmarshall/wordbook/internal/service/quiz"
	"github.com/heartmarshall/wordbook/internal/service/reminder"
	"github.com/heartmarshall/wordbook/internal/service/review"
	"github.com/heartmarshall/wordbook/internal/service/session"
)

// Container holds the opened store and every service built on it. The
// server and the command line tools share it.
type Container struct {
	DB *store.DB

	Dictionary *dictionary.Service
	Review     *review.Service
	Sessions   *session.Service
	Progress   *progress.Service
	Importer   *importer.Service
	Enricher   *enrichment.Enricher
	Quizzes    *quiz.Service
	Reminder   *reminder.Reminder
}

// NewContainer opens the store, applies pending migrations and wires the
// services. The caller owns the container and must Close it.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*Container, error) {
	db, err := store.Open(ctx, cfg.Store, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.Migrate(ctx, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("store ready",
		slog.String("driver", db.Dialect().Name()),
	)

	return wire(db, cfg, logger, clock), nil
}

func wire(db *store.DB, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *Container {
	words := wordrepo.New(db)
	tags := tagrepo.New(db)
	notes := noterepo.New(db)
	sessions := sessionrepo.New(db)
	quizzes := quizrepo.New(db)
	jobs := importjobrepo.New(db)
	snapshots := progressrepo.New(db)
	tx := store.NewTxManager(db)

	dict := freedict.NewProvider(logger, cfg.Dictionary)
	enricher := enrichment.NewEnricher(logger, dict, words, cfg.Dictionary.CacheSize, cfg.Import.EnrichConcurrency)

	sessionSvc := session.NewService(logger, sessions, tx, clock)
	reviewSvc := review.NewService(logger, words, sessionSvc, clock, cfg.Review.MaxWordsPerSession)

	return &Container{
		DB:         db,
		Dictionary: dictionary.NewService(logger, words, tags, notes, clock, cfg.Dictionary),
		Review:     reviewSvc,
		Sessions:   sessionSvc,
		Progress:   progress.NewService(logger, words, sessions, quizzes, snapshots, clock, cfg.Progress.Location, cfg.Progress.HeatmapDays),
		Importer:   importer.NewService(logger, words, jobs, csvsource.NewParser(cfg.Import.MaxWordsPerImport), enricher, clock, cfg.Import),
		Enricher:   enricher,
		Quizzes:    quiz.NewService(logger, words, quizzes, clock),
		Reminder:   reminder.New(logger, reviewSvc, reminder.NewLogNotifier(logger), clock, cfg.Reminder),
	}
}

// Close releases the store.
func (c *Container) Close() error {
	return c.DB.Close()
}
