// Package domain defines the core business entities for DeepQA.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A scraped web page reduced to text plus its source URL
//   - Corpus: The session's ordered collection of scraped documents
//   - Turn: One question/answer exchange in the conversation
//   - History: The chronological log of turns within a session
//   - Registry: The static model identifier to provider mapping
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
