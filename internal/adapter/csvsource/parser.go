// Package csvsource reads vocabulary import files in CSV format.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/heartmarshall/wordbook/internal/domain"
)

// wordColumns are the accepted names of the word column, in priority order.
var wordColumns = []string{"word", "單字", "words", "vocabulary", "lemma"}

const (
	colPhonetic     = "phonetic"
	colAudioURL     = "audio_url"
	colPartOfSpeech = "part_of_speech"
	colDefinition   = "definition"
)

var validWord = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

// Parser reads import files. A zero maxRows means no row limit.
type Parser struct {
	maxRows int
}

// NewParser creates a Parser accepting at most maxRows data rows.
func NewParser(maxRows int) *Parser {
	return &Parser{maxRows: maxRows}
}

// Parse reads a CSV file with a header row. Rows with an empty or malformed
// word become row errors; the file as a whole is rejected only when it has
// no header, is not valid CSV or exceeds the row limit.
func (p *Parser) Parse(r io.Reader) (*domain.ParsedImport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("file", "missing header row")
		}
		return nil, domain.NewValidationError("file", fmt.Sprintf("read header: %v", err))
	}
	cols := mapColumns(header)

	result := &domain.ParsedImport{
		Rows:       []domain.ImportRow{},
		Errors:     []domain.ImportRowError{},
		Duplicates: []string{},
	}
	seen := make(map[string]struct{})
	dupSeen := make(map[string]struct{})

	// Row numbers count the header, so the first data row is 2.
	row := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError("file", fmt.Sprintf("row %d: %v", row+1, err))
		}
		row++

		if p.maxRows > 0 && row-1 > p.maxRows {
			return nil, domain.NewValidationError("file", fmt.Sprintf("too many rows (max %d)", p.maxRows))
		}

		word := strings.TrimSpace(cols.get(record, cols.word))
		if word == "" {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: row, Message: "empty word"})
			continue
		}
		if !validWord.MatchString(word) {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: row, Message: fmt.Sprintf("invalid word format: %s", word)})
			continue
		}

		key := strings.ToLower(word)
		if _, ok := seen[key]; ok {
			if _, ok := dupSeen[key]; !ok {
				dupSeen[key] = struct{}{}
				result.Duplicates = append(result.Duplicates, word)
			}
			continue
		}
		seen[key] = struct{}{}

		result.Rows = append(result.Rows, domain.ImportRow{
			Row:          row,
			Lemma:        word,
			Phonetic:     strings.TrimSpace(cols.get(record, cols.phonetic)),
			AudioURL:     strings.TrimSpace(cols.get(record, cols.audioURL)),
			PartOfSpeech: strings.TrimSpace(cols.get(record, cols.partOfSpeech)),
			Definition:   strings.TrimSpace(cols.get(record, cols.definition)),
		})
	}

	return result, nil
}

// columns holds the record index of each known column, -1 when absent.
type columns struct {
	word         int
	phonetic     int
	audioURL     int
	partOfSpeech int
	definition   int
}

func (c columns) get(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func mapColumns(header []string) columns {
	names := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		names[i] = strings.ToLower(strings.TrimSpace(h))
	}

	index := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}

	cols := columns{
		word:         0,
		phonetic:     index(colPhonetic),
		audioURL:     index(colAudioURL),
		partOfSpeech: index(colPartOfSpeech),
		definition:   index(colDefinition),
	}
	for _, name := range wordColumns {
		if i := index(name); i >= 0 {
			cols.word = i
			break
		}
	}
	return cols
}
