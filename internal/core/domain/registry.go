package domain

const unknownDescription = "Unknown"

// ProviderType identifies an LLM inference provider.
type ProviderType string

// Available providers.
const (
	// ProviderGroq is the Groq cloud API (OpenAI-compatible).
	ProviderGroq ProviderType = "groq"

	// ProviderGemini is the Google Gemini cloud API.
	ProviderGemini ProviderType = "gemini"
)

// IsValid returns true if the provider is recognised.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderGroq, ProviderGemini:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p ProviderType) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p ProviderType) Description() string {
	switch p {
	case ProviderGroq:
		return "Groq (cloud)"
	case ProviderGemini:
		return "Google Gemini (cloud)"
	default:
		return unknownDescription
	}
}

// AllProviders returns all recognised provider types.
func AllProviders() []ProviderType {
	return []ProviderType{ProviderGroq, ProviderGemini}
}

// Registry is the static mapping from model identifier to provider.
// It is loaded once at startup and read-only afterwards, so it is safe
// to share across goroutines without locking.
type Registry struct {
	models map[string]ProviderType
	order  []string
}

// NewRegistry creates a registry from a model to provider mapping.
// Every provider must be a recognised ProviderType and the mapping must
// contain at least one model; the loader validates both before calling.
func NewRegistry(models map[string]ProviderType, order []string) *Registry {
	copied := make(map[string]ProviderType, len(models))
	for id, provider := range models {
		copied[id] = provider
	}
	return &Registry{
		models: copied,
		order:  append([]string(nil), order...),
	}
}

// Resolve returns the provider for a model identifier.
// Unknown identifiers resolve to ErrUnknownModel.
func (r *Registry) Resolve(modelID string) (ProviderType, error) {
	provider, ok := r.models[modelID]
	if !ok {
		return "", ErrUnknownModel
	}
	return provider, nil
}

// Models returns the model identifiers in the order fixed at construction.
func (r *Registry) Models() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.models)
}
