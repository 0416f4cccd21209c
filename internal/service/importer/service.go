// Package importer loads words from CSV files into the library and tracks
// each run as an import job.
package importer

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/wordbook/internal/config"
	"github.com/heartmarshall/wordbook/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	Create(ctx context.Context, w domain.Word) (uuid.UUID, error)
	Update(ctx context.Context, w domain.Word) error
	GetAll(ctx context.Context) ([]domain.Word, error)
	DeleteAll(ctx context.Context) (int, error)
}

type jobRepo interface {
	Create(ctx context.Context, j domain.ImportJob) error
	Update(ctx context.Context, j domain.ImportJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ImportJob, error)
}

type sourceParser interface {
	Parse(r io.Reader) (*domain.ParsedImport, error)
}

type enricher interface {
	Enrich(ctx context.Context, words []domain.Word) (domain.EnrichmentStats, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs imports.
type Service struct {
	log      *slog.Logger
	words    wordRepo
	jobs     jobRepo
	parser   sourceParser
	enricher enricher
	clock    clockwork.Clock
	cfg      config.ImportConfig
}

// NewService creates a new import service. enricher may be nil, in which
// case imports asking for enrichment are rejected.
func NewService(
	log *slog.Logger,
	words wordRepo,
	jobs jobRepo,
	parser sourceParser,
	enricher enricher,
	clock clockwork.Clock,
	cfg config.ImportConfig,
) *Service {
	return &Service{
		log:      log.With("service", "importer"),
		words:    words,
		jobs:     jobs,
		parser:   parser,
		enricher: enricher,
		clock:    clock,
		cfg:      cfg,
	}
}
