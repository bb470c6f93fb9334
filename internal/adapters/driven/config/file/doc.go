// Package file provides file-based configuration adapters.
//
// The model registry lives in a TOML file mapping model identifiers to
// their provider:
//
//	[models]
//	"llama-3.3-70b-versatile" = "groq"
//	"gemini-2.0-flash" = "gemini"
//
// The file is read once at startup; a missing or malformed file is fatal.
package file
