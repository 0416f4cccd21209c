// Package enrichment fills in missing lexical data of words from an
// external dictionary.
package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/provider"
)

const (
	maxExamples     = 5
	maxRelated      = 5
	defaultCacheLen = 1024
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryProvider interface {
	Lookup(ctx context.Context, word string) (*provider.Entry, error)
}

type wordRepo interface {
	ListIncomplete(ctx context.Context, limit int) ([]domain.Word, error)
	Update(ctx context.Context, w domain.Word) error
}

// ---------------------------------------------------------------------------
// Enricher
// ---------------------------------------------------------------------------

// Enricher looks words up through a dictionary provider with bounded
// concurrency. Lookups, including misses, are cached by normalized lemma.
type Enricher struct {
	log         *slog.Logger
	dict        dictionaryProvider
	words       wordRepo
	cache       *lru.Cache[string, *provider.Entry]
	concurrency int
}

// NewEnricher creates an Enricher. words may be nil when only in-memory
// enrichment is needed.
func NewEnricher(log *slog.Logger, dict dictionaryProvider, words wordRepo, cacheSize, concurrency int) *Enricher {
	if cacheSize <= 0 {
		cacheSize = defaultCacheLen
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New[string, *provider.Entry](cacheSize)

	return &Enricher{
		log:         log.With("service", "enrichment"),
		dict:        dict,
		words:       words,
		cache:       cache,
		concurrency: concurrency,
	}
}

type outcome int

const (
	outcomeFailed outcome = iota
	outcomeEnriched
	outcomeNotFound
)

// Enrich looks up every word and merges the dictionary data into it in
// place. A failed lookup leaves the word as it was. The only error returned
// is the context's.
func (e *Enricher) Enrich(ctx context.Context, words []domain.Word) (domain.EnrichmentStats, error) {
	outcomes := make([]outcome, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range words {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			entry, err := e.lookup(gctx, words[i].Lemma)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				e.log.WarnContext(gctx, "dictionary lookup failed",
					slog.String("lemma", words[i].Lemma),
					slog.String("error", err.Error()),
				)
				outcomes[i] = outcomeFailed
				return nil
			}
			if entry == nil {
				outcomes[i] = outcomeNotFound
				return nil
			}

			Apply(&words[i], entry)
			outcomes[i] = outcomeEnriched
			return nil
		})
	}

	err := g.Wait()

	stats := domain.EnrichmentStats{Looked: len(words)}
	for _, o := range outcomes {
		switch o {
		case outcomeEnriched:
			stats.Enriched++
		case outcomeNotFound:
			stats.NotFound++
		default:
			stats.Failed++
		}
	}

	if err != nil {
		return stats, fmt.Errorf("enrich: %w", err)
	}
	return stats, nil
}

// EnrichIncomplete enriches up to limit stored words whose completeness is
// not complete and saves the ones that were found.
func (e *Enricher) EnrichIncomplete(ctx context.Context, limit int) (domain.EnrichmentStats, error) {
	words, err := e.words.ListIncomplete(ctx, limit)
	if err != nil {
		return domain.EnrichmentStats{}, fmt.Errorf("list incomplete: %w", err)
	}

	before := make([]domain.Word, len(words))
	for i := range words {
		before[i] = words[i].Clone()
	}

	stats, err := e.Enrich(ctx, words)
	if err != nil {
		return stats, err
	}

	saved := 0
	for i := range words {
		if wordsEqual(before[i], words[i]) {
			continue
		}
		if err := e.words.Update(ctx, words[i]); err != nil {
			return stats, fmt.Errorf("update word %s: %w", words[i].ID, err)
		}
		saved++
	}

	e.log.InfoContext(ctx, "incomplete words enriched",
		slog.Int("looked", stats.Looked),
		slog.Int("enriched", stats.Enriched),
		slog.Int("not_found", stats.NotFound),
		slog.Int("failed", stats.Failed),
		slog.Int("saved", saved),
	)
	return stats, nil
}

func (e *Enricher) lookup(ctx context.Context, lemma string) (*provider.Entry, error) {
	key := domain.NormalizeText(lemma)
	if entry, ok := e.cache.Get(key); ok {
		return entry, nil
	}

	entry, err := e.dict.Lookup(ctx, lemma)
	if err != nil {
		return nil, err
	}
	e.cache.Add(key, entry)
	return entry, nil
}

// Apply merges entry into w. Existing values win for single-valued fields;
// lists are extended and capped.
func Apply(w *domain.Word, entry *provider.Entry) {
	w.Phonetics = domain.DedupStrings(append(w.Phonetics, entry.Phonetics...))
	w.AudioURLs = domain.DedupStrings(append(w.AudioURLs, entry.AudioURLs...))

	if len(entry.Meanings) > 0 {
		first := entry.Meanings[0]
		if strings.TrimSpace(w.PartOfSpeech) == "" {
			w.PartOfSpeech = first.PartOfSpeech
		}
		if strings.TrimSpace(w.DefinitionEn) == "" && len(first.Definitions) > 0 {
			w.DefinitionEn = first.Definitions[0].Text
		}

		var synonyms, antonyms []string
		if len(first.Definitions) > 0 {
			synonyms = append(synonyms, first.Definitions[0].Synonyms...)
			antonyms = append(antonyms, first.Definitions[0].Antonyms...)
		}
		synonyms = append(synonyms, first.Synonyms...)
		antonyms = append(antonyms, first.Antonyms...)
		w.Synonyms = capped(append(w.Synonyms, synonyms...), maxRelated)
		w.Antonyms = capped(append(w.Antonyms, antonyms...), maxRelated)
	}

	examples := w.Examples
	for _, m := range entry.Meanings {
		for _, d := range m.Definitions {
			examples = append(examples, d.Example)
		}
	}
	w.Examples = capped(examples, maxExamples)

	w.InfoCompleteness = domain.ComputeCompleteness(*w)
}

func capped(values []string, n int) []string {
	values = domain.DedupStrings(values)
	if len(values) > n {
		values = values[:n]
	}
	return values
}

func wordsEqual(a, b domain.Word) bool {
	return a.PartOfSpeech == b.PartOfSpeech &&
		a.DefinitionEn == b.DefinitionEn &&
		a.InfoCompleteness == b.InfoCompleteness &&
		slices.Equal(a.Phonetics, b.Phonetics) &&
		slices.Equal(a.AudioURLs, b.AudioURLs) &&
		slices.Equal(a.Examples, b.Examples) &&
		slices.Equal(a.Synonyms, b.Synonyms) &&
		slices.Equal(a.Antonyms, b.Antonyms)
}
