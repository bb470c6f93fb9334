package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyQuery indicates a search was requested without a query.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrEmptyQuestion indicates a question was asked without text.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrNoCorpus indicates a question was asked before any data was scraped.
	ErrNoCorpus = errors.New("no scraped data in session")

	// ErrUnknownModel indicates a model identifier absent from the registry.
	// No provider call is made when this is returned.
	ErrUnknownModel = errors.New("unknown model")

	// ErrSearchFailed indicates the search-scrape service did not return
	// documents, whether it reported failure itself or the transport failed.
	// Recoverable: the session continues with no new data.
	ErrSearchFailed = errors.New("search and scrape failed")

	// ErrGenerateFailed indicates the LLM provider did not return an answer.
	// Recoverable: no turn is recorded and the question can be resubmitted.
	ErrGenerateFailed = errors.New("response generation failed")

	// ErrInvalidTemperature indicates a temperature outside [0, 1].
	ErrInvalidTemperature = errors.New("temperature must be between 0 and 1")
)
