package word

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/adapter/store"
	"github.com/heartmarshall/wordbook/internal/domain"
)

var errDecode = errors.New("decode word row")

type scanner interface {
	Scan(dest ...any) error
}

// row is the storage shape of a word: list fields are JSON encoded and
// timestamps are nullable.
type row struct {
	w domain.Word

	phonetics string
	audioURLs string
	examples  string
	synonyms  string
	antonyms  string
	tags      string
	setIDs    string
}

func toRow(w domain.Word) (row, error) {
	r := row{w: w}
	fields := []struct {
		dst *string
		v   any
	}{
		{&r.phonetics, nonNil(w.Phonetics)},
		{&r.audioURLs, nonNil(w.AudioURLs)},
		{&r.examples, nonNil(w.Examples)},
		{&r.synonyms, nonNil(w.Synonyms)},
		{&r.antonyms, nonNil(w.Antonyms)},
		{&r.tags, nonNilIDs(w.Tags)},
		{&r.setIDs, nonNilIDs(w.SetIDs)},
	}
	for _, f := range fields {
		s, err := store.EncodeJSON(f.v)
		if err != nil {
			return row{}, err
		}
		*f.dst = s
	}
	return r, nil
}

// values follows the order of columns.
func (r row) values() []any {
	w := r.w
	return []any{
		w.ID,
		w.Lemma,
		domain.NormalizeText(w.Lemma),
		w.PartOfSpeech,
		r.phonetics,
		r.audioURLs,
		w.DefinitionEn,
		w.DefinitionLocal,
		r.examples,
		r.synonyms,
		r.antonyms,
		string(w.Status),
		w.NeedsReview,
		store.NullTime(w.LastStudiedAt),
		store.NullTime(w.ReviewDueAt),
		w.Notes,
		string(w.Source),
		string(w.InfoCompleteness),
		r.tags,
		r.setIDs,
	}
}

func scanWord(s scanner) (domain.Word, error) {
	var (
		w               domain.Word
		lemmaNormalized string
		status          string
		source          string
		completeness    string
		lastStudied     sql.NullTime
		reviewDue       sql.NullTime
		phonetics       []byte
		audioURLs       []byte
		examples        []byte
		synonyms        []byte
		antonyms        []byte
		tags            []byte
		setIDs          []byte
	)

	err := s.Scan(
		&w.ID,
		&w.Lemma,
		&lemmaNormalized,
		&w.PartOfSpeech,
		&phonetics,
		&audioURLs,
		&w.DefinitionEn,
		&w.DefinitionLocal,
		&examples,
		&synonyms,
		&antonyms,
		&status,
		&w.NeedsReview,
		&lastStudied,
		&reviewDue,
		&w.Notes,
		&source,
		&completeness,
		&tags,
		&setIDs,
	)
	if err != nil {
		return domain.Word{}, err
	}

	w.Status = domain.WordStatus(status)
	w.Source = domain.WordSource(source)
	w.InfoCompleteness = domain.InfoCompleteness(completeness)
	w.LastStudiedAt = store.TimePtr(lastStudied)
	w.ReviewDueAt = store.TimePtr(reviewDue)

	w.Phonetics = []string{}
	w.AudioURLs = []string{}
	w.Examples = []string{}
	w.Synonyms = []string{}
	w.Antonyms = []string{}
	w.Tags = []uuid.UUID{}
	w.SetIDs = []uuid.UUID{}

	decode := []struct {
		raw []byte
		dst any
	}{
		{phonetics, &w.Phonetics},
		{audioURLs, &w.AudioURLs},
		{examples, &w.Examples},
		{synonyms, &w.Synonyms},
		{antonyms, &w.Antonyms},
		{tags, &w.Tags},
		{setIDs, &w.SetIDs},
	}
	for _, d := range decode {
		if err := store.DecodeJSON(d.raw, d.dst); err != nil {
			return domain.Word{}, fmt.Errorf("%w %s: %w", errDecode, w.ID, err)
		}
	}

	return w, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilIDs(s []uuid.UUID) []uuid.UUID {
	if s == nil {
		return []uuid.UUID{}
	}
	return s
}
