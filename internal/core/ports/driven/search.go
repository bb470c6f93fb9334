package driven

import (
	"context"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
)

// SearchScraper turns a query into scraped source documents.
//
// Implementations wrap an external search-and-scrape service. The service
// performs the web search and reduces each result page to markdown text;
// the client does no crawling of its own.
type SearchScraper interface {
	// Search requests up to limit scraped documents for the query.
	// The service may return fewer. The returned URL slice is parallel
	// to the documents, one URL per document in the same order.
	//
	// Both a failure reported by the service and a transport failure
	// return empty results and an error wrapping domain.ErrSearchFailed;
	// callers treat the two identically and carry on with no new data.
	// Search never mutates session state.
	Search(ctx context.Context, query string, limit int) ([]domain.Document, []string, error)
}
