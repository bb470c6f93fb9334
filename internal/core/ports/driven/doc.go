// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SearchScraper: Web search plus page scraping (Firecrawl-style API)
//   - CompletionService: Single-shot LLM text completion (Groq, Gemini)
//   - RegistryStore: Loads the model-to-provider configuration file
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
