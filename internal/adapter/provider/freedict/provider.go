// Package freedict looks words up in the FreeDictionary API.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordbook/internal/config"
	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/provider"
)

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	retryDelay time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for cfg.APIBaseURL.
func NewProvider(logger *slog.Logger, cfg config.DictionaryConfig) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		retryDelay: cfg.RetryDelay,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// Lookup fetches the dictionary entry for word.
// Returns nil, nil if the word is not found (HTTP 404).
func (p *Provider) Lookup(ctx context.Context, word string) (*provider.Entry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(strings.ToLower(strings.TrimSpace(word)))

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	entry := mapEntries(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("meanings", len(entry.Meanings)),
		slog.Int("phonetics", len(entry.Phonetics)),
	)

	return entry, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}

// mapEntries merges the API entries (one per etymology) into a single
// provider.Entry. Phonetic texts and audio URLs are deduplicated; meanings
// are concatenated in API order.
func mapEntries(entries []apiEntry) *provider.Entry {
	var phonetics, audio []string
	meanings := []provider.Meaning{}

	for _, e := range entries {
		phonetics = append(phonetics, e.Phonetic)
		for _, ph := range e.Phonetics {
			phonetics = append(phonetics, ph.Text)
			audio = append(audio, ph.Audio)
		}

		for _, m := range e.Meanings {
			meaning := provider.Meaning{
				PartOfSpeech: strings.TrimSpace(m.PartOfSpeech),
				Definitions:  make([]provider.Definition, 0, len(m.Definitions)),
				Synonyms:     domain.DedupStrings(m.Synonyms),
				Antonyms:     domain.DedupStrings(m.Antonyms),
			}
			for _, d := range m.Definitions {
				if strings.TrimSpace(d.Definition) == "" {
					continue
				}
				meaning.Definitions = append(meaning.Definitions, provider.Definition{
					Text:     strings.TrimSpace(d.Definition),
					Example:  strings.TrimSpace(d.Example),
					Synonyms: domain.DedupStrings(d.Synonyms),
					Antonyms: domain.DedupStrings(d.Antonyms),
				})
			}
			meanings = append(meanings, meaning)
		}
	}

	return &provider.Entry{
		Word:      entries[0].Word,
		Phonetics: domain.DedupStrings(phonetics),
		AudioURLs: domain.DedupStrings(audio),
		Meanings:  meanings,
	}
}
