package dictionary

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// ExportHeader is the column layout written by ExportCSV. The first five
// columns are the ones the CSV importer understands.
var ExportHeader = []string{
	"word", "phonetic", "audio_url", "part_of_speech", "definition",
	"definition_local", "examples", "synonyms", "antonyms",
	"status", "needs_review", "tags",
}

const listSeparator = "; "

// ExportCSV writes the whole library as CSV in lemma order and returns the
// number of exported words.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	words, _, err := s.words.Search(ctx, domain.WordFilter{SortBy: "lemma"})
	if err != nil {
		return 0, fmt.Errorf("list words: %w", err)
	}

	tags, err := s.tags.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list tags: %w", err)
	}
	tagNames := make(map[uuid.UUID]string, len(tags))
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	for _, word := range words {
		names := make([]string, 0, len(word.Tags))
		for _, id := range word.Tags {
			if name, ok := tagNames[id]; ok {
				names = append(names, name)
			}
		}

		record := []string{
			word.Lemma,
			strings.Join(word.Phonetics, listSeparator),
			strings.Join(word.AudioURLs, listSeparator),
			word.PartOfSpeech,
			word.DefinitionEn,
			word.DefinitionLocal,
			strings.Join(word.Examples, listSeparator),
			strings.Join(word.Synonyms, listSeparator),
			strings.Join(word.Antonyms, listSeparator),
			word.Status.String(),
			strconv.FormatBool(word.NeedsReview),
			strings.Join(names, listSeparator),
		}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("write word %s: %w", word.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	s.log.InfoContext(ctx, "library exported", slog.Int("words", len(words)))
	return len(words), nil
}
