package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockCompletionService implements driven.CompletionService for testing.
type mockCompletionService struct {
	answer      string
	completeErr error

	calls      int
	lastModel  string
	lastPrompt string
	lastOpts   driven.CompletionOptions
}

func (m *mockCompletionService) Complete(_ context.Context, model, prompt string, opts driven.CompletionOptions) (string, error) {
	m.calls++
	m.lastModel = model
	m.lastPrompt = prompt
	m.lastOpts = opts
	if m.completeErr != nil {
		return "", m.completeErr
	}
	return m.answer, nil
}

func (m *mockCompletionService) Ping(_ context.Context) error {
	return nil
}

func (m *mockCompletionService) Close() error {
	return nil
}

func testRegistry() *domain.Registry {
	return domain.NewRegistry(map[string]domain.ProviderType{
		"modelA": domain.ProviderGroq,
		"modelB": domain.ProviderGemini,
	}, []string{"modelA", "modelB"})
}

// --- Tests ---

// TestGenerator_RoutesToMappedProvider tests that each model invokes
// exactly the provider the registry maps it to.
func TestGenerator_RoutesToMappedProvider(t *testing.T) {
	groq := &mockCompletionService{answer: "from groq"}
	gemini := &mockCompletionService{answer: "from gemini"}
	g := NewGenerator(testRegistry(), map[domain.ProviderType]driven.CompletionService{
		domain.ProviderGroq:   groq,
		domain.ProviderGemini: gemini,
	})

	answer, err := g.Generate(context.Background(), nil, nil, "q", "modelA", 0.2)
	require.NoError(t, err)
	assert.Equal(t, "from groq", answer)
	assert.Equal(t, 1, groq.calls)
	assert.Equal(t, 0, gemini.calls)
	assert.Equal(t, "modelA", groq.lastModel)

	answer, err = g.Generate(context.Background(), nil, nil, "q", "modelB", 0.2)
	require.NoError(t, err)
	assert.Equal(t, "from gemini", answer)
	assert.Equal(t, 1, gemini.calls)
	assert.Equal(t, 1, groq.calls)
}

// TestGenerator_UnknownModelAbortsWithoutCall tests that an unmapped
// model never reaches a provider.
func TestGenerator_UnknownModelAbortsWithoutCall(t *testing.T) {
	groq := &mockCompletionService{answer: "unused"}
	g := NewGenerator(testRegistry(), map[domain.ProviderType]driven.CompletionService{
		domain.ProviderGroq: groq,
	})

	_, err := g.Generate(context.Background(), nil, nil, "q", "no-such-model", 0.2)

	assert.ErrorIs(t, err, domain.ErrUnknownModel)
	assert.Equal(t, 0, groq.calls)
}

// TestGenerator_ProviderFailure tests that provider errors come back as
// recoverable generation failures.
func TestGenerator_ProviderFailure(t *testing.T) {
	groq := &mockCompletionService{completeErr: errors.New("rate limited")}
	g := NewGenerator(testRegistry(), map[domain.ProviderType]driven.CompletionService{
		domain.ProviderGroq: groq,
	})

	_, err := g.Generate(context.Background(), nil, nil, "q", "modelA", 0.2)

	assert.ErrorIs(t, err, domain.ErrGenerateFailed)
	assert.Contains(t, err.Error(), "rate limited")
	assert.Equal(t, 1, groq.calls)
}

// TestGenerator_MissingClient tests a registry provider with no
// configured client.
func TestGenerator_MissingClient(t *testing.T) {
	g := NewGenerator(testRegistry(), map[domain.ProviderType]driven.CompletionService{
		domain.ProviderGroq: &mockCompletionService{},
	})

	_, err := g.Generate(context.Background(), nil, nil, "q", "modelB", 0.2)

	assert.ErrorIs(t, err, domain.ErrGenerateFailed)
}

// TestGenerator_PassesPromptAndTemperature tests that the composed
// prompt and temperature reach the provider.
func TestGenerator_PassesPromptAndTemperature(t *testing.T) {
	groq := &mockCompletionService{answer: "Ownership-based."}
	g := NewGenerator(testRegistry(), map[domain.ProviderType]driven.CompletionService{
		domain.ProviderGroq: groq,
	})

	corpus := []domain.Document{{Content: "Rust uses ownership.", SourceURL: "u1"}}
	answer, err := g.Generate(context.Background(), corpus, nil,
		"What memory model does Rust use?", "modelA", 0.2)

	require.NoError(t, err)
	assert.Equal(t, "Ownership-based.", answer)
	assert.Contains(t, groq.lastPrompt, "Rust uses ownership.")
	assert.Contains(t, groq.lastPrompt, "User Query: What memory model does Rust use?")
	assert.InDelta(t, 0.2, groq.lastOpts.Temperature, 1e-9)
}
