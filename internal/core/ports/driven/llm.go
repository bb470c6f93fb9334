package driven

import "context"

// CompletionService provides single-shot LLM text completion.
//
// Implementations may include:
//   - Groq (OpenAI-compatible chat completions)
//   - Google Gemini (generateContent)
//
// The contract is identical across providers: one prompt in, one
// non-streaming completion out. The model identifier is passed per call
// because one provider serves several registry models.
type CompletionService interface {
	// Complete requests a single completion for the prompt.
	// On provider success it returns only the completion text, stripped
	// of any provider metadata. Provider-reported errors and transport
	// failures are both returned as errors; no retry is performed.
	Complete(ctx context.Context, model, prompt string, opts CompletionOptions) (string, error)

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup to verify credentials.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompletionOptions configures text generation behaviour.
type CompletionOptions struct {
	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// MaxTokens is the maximum number of tokens to generate.
	// Zero means the provider default.
	MaxTokens int
}
