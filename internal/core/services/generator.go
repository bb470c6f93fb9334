package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/deepqa-cli/internal/logger"
)

// Generator resolves a model to its provider and produces one answer.
//
// It holds the read-only model registry and a dispatch table from
// provider to completion client. Each Generate call makes at most one
// provider request; failed calls are not retried, the caller re-issues
// by resubmitting the question.
type Generator struct {
	registry  *domain.Registry
	providers map[domain.ProviderType]driven.CompletionService
}

// NewGenerator creates a generator over a registry and provider clients.
// Every provider referenced by the registry should have a client in the
// map; a missing client surfaces as a generation failure for its models.
func NewGenerator(registry *domain.Registry, providers map[domain.ProviderType]driven.CompletionService) *Generator {
	return &Generator{
		registry:  registry,
		providers: providers,
	}
}

// Generate answers a question from the corpus and history view.
//
// The model is resolved against the registry first; an unknown model
// aborts with domain.ErrUnknownModel before any network call. Provider
// failures of any kind come back wrapped in domain.ErrGenerateFailed.
// Generate never touches the corpus or the history.
func (g *Generator) Generate(
	ctx context.Context,
	corpus []domain.Document,
	history []domain.Turn,
	question, modelID string,
	temperature float64,
) (string, error) {
	logger.Section("Response Generation")
	logger.Debug("Model: %s, temperature: %.2f", modelID, temperature)

	provider, err := g.registry.Resolve(modelID)
	if err != nil {
		return "", fmt.Errorf("resolve model %q: %w", modelID, err)
	}
	logger.Debug("Resolved provider: %s", provider)

	client, ok := g.providers[provider]
	if !ok {
		return "", fmt.Errorf("%w: no client configured for provider %s",
			domain.ErrGenerateFailed, provider)
	}

	prompt := ComposePrompt(corpus, history, question)
	logger.Debug("Prompt: %d documents, %d turns, %d bytes",
		len(corpus), len(history), len(prompt))

	answer, err := client.Complete(ctx, modelID, prompt, driven.CompletionOptions{
		Temperature: temperature,
	})
	if err != nil {
		logger.Warn("Generation failed: %v", err)
		return "", fmt.Errorf("%w: %w", domain.ErrGenerateFailed, err)
	}

	logger.Info("Generated %d bytes", len(answer))
	return answer, nil
}
