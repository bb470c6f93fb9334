package driving

import (
	"context"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
)

// SessionService exposes one interactive session's pipeline: search and
// scrape into the corpus, then answer questions grounded in it.
//
// A session holds exactly one corpus and one conversation history. State
// lives in memory only and dies with the process.
type SessionService interface {
	// RunSearch searches, scrapes, and merges the results into the
	// session corpus per opts.Retain. Validation failures (empty query)
	// return an error before any network call. A failed or empty scrape
	// is not an error: the report carries the warning and the merge
	// still applies, so a replace run with no data empties the corpus.
	RunSearch(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchReport, error)

	// AskQuestion answers a question from the corpus and optional
	// history window, recording the turn on success only.
	// Validation failures (empty question, empty corpus, temperature
	// out of range) and unknown models return before any network call.
	AskQuestion(ctx context.Context, question string, opts domain.AskOptions) (string, error)

	// HistoryRender returns the conversation formatted for display.
	HistoryRender() string

	// SourceURLs returns the corpus source URLs in scrape order.
	SourceURLs() []string

	// CorpusLen returns the number of documents in the corpus.
	CorpusLen() int

	// HistoryLen returns the number of recorded turns.
	HistoryLen() int

	// ID returns the session identifier.
	ID() string
}
