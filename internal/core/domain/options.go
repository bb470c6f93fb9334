package domain

// Default values matching the interactive defaults.
const (
	// DefaultSearchLimit is the number of results requested when the
	// caller does not choose one.
	DefaultSearchLimit = 20

	// DefaultTemperature is the generation temperature when the caller
	// does not choose one.
	DefaultTemperature = 0.7
)

// SearchOptions configures a search-and-scrape run.
type SearchOptions struct {
	// Limit bounds how many documents are requested from the service.
	// Zero or negative falls back to DefaultSearchLimit.
	Limit int

	// Retain keeps previously scraped data, appending new documents.
	// When false the corpus is replaced with the new results.
	Retain bool
}

// SearchReport is the outcome of a search-and-scrape run.
type SearchReport struct {
	// Documents are the newly scraped documents, in scrape order.
	Documents []Document

	// URLs are the source URLs parallel to Documents.
	URLs []string

	// Warning carries the recoverable failure message when the service
	// produced no data. Empty on success.
	Warning string
}

// AskOptions configures a question-answer cycle.
type AskOptions struct {
	// ModelID selects the model; it must be present in the registry.
	ModelID string

	// Temperature controls generation randomness, in [0, 1].
	Temperature float64

	// IncludeHistory adds prior turns to the prompt.
	IncludeHistory bool

	// HistoryTurns bounds how many trailing turns are included.
	// Zero or negative means the full history. Ignored when
	// IncludeHistory is false.
	HistoryTurns int
}
