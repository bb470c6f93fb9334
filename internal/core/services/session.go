package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/deepqa-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// Session binds one corpus and one conversation history to a user
// session and orchestrates the search/answer pipeline over them.
//
// Sessions are fully isolated from each other. Corpus and history are
// guarded by a mutex so concurrent UI actions serialise into the
// single-writer discipline both structures require.
type Session struct {
	id        string
	scraper   driven.SearchScraper
	generator *Generator

	mu      sync.Mutex
	corpus  *domain.Corpus
	history *domain.History
}

// NewSession creates a session with an empty corpus and history.
func NewSession(scraper driven.SearchScraper, generator *Generator) *Session {
	return &Session{
		id:        uuid.NewString(),
		scraper:   scraper,
		generator: generator,
		corpus:    domain.NewCorpus(),
		history:   domain.NewHistory(),
	}
}

// RunSearch searches and scrapes, then merges the results into the
// session corpus. A failed or empty scrape is reported as a warning,
// not an error, and the merge still applies: a replace run that
// scraped nothing leaves the corpus empty.
func (s *Session) RunSearch(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchReport, error) {
	logger.Section("Search and Scrape")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	logger.Debug("Query: %q, limit: %d, retain: %t", query, limit, opts.Retain)

	report := &domain.SearchReport{}
	docs, urls, err := s.scraper.Search(ctx, query, limit)
	if err != nil {
		logger.Warn("Scrape produced no data: %v", err)
		report.Warning = err.Error()
	}
	report.Documents = docs
	report.URLs = urls

	s.mu.Lock()
	s.corpus.Merge(docs, urls, opts.Retain)
	size := s.corpus.Len()
	s.mu.Unlock()

	logger.Info("Scraped %d documents, corpus now %d", len(docs), size)
	return report, nil
}

// AskQuestion answers a question grounded in the session corpus.
// The turn is appended to the history only when generation succeeds.
func (s *Session) AskQuestion(ctx context.Context, question string, opts domain.AskOptions) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrEmptyQuestion
	}
	if opts.Temperature < 0 || opts.Temperature > 1 {
		return "", fmt.Errorf("%w: %.2f", domain.ErrInvalidTemperature, opts.Temperature)
	}

	s.mu.Lock()
	if s.corpus.IsEmpty() {
		s.mu.Unlock()
		return "", domain.ErrNoCorpus
	}
	corpus := s.corpus.Documents()
	historyView := []domain.Turn{}
	if opts.IncludeHistory {
		count := opts.HistoryTurns
		if count <= 0 {
			count = -1 // full history
		}
		historyView = s.history.Window(count)
	}
	s.mu.Unlock()

	answer, err := s.generator.Generate(ctx, corpus, historyView, question, opts.ModelID, opts.Temperature)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.history.Append(domain.Turn{Question: question, Answer: answer})
	s.mu.Unlock()

	return answer, nil
}

// HistoryRender returns the conversation formatted for display.
func (s *Session) HistoryRender() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Render()
}

// SourceURLs returns the corpus source URLs in scrape order.
func (s *Session) SourceURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corpus.URLs()
}

// CorpusLen returns the number of documents in the corpus.
func (s *Session) CorpusLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corpus.Len()
}

// HistoryLen returns the number of recorded turns.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}
