// Package ai provides factory functions for creating completion service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	geminillm "github.com/custodia-labs/deepqa-cli/internal/adapters/driven/llm/gemini"
	groqllm "github.com/custodia-labs/deepqa-cli/internal/adapters/driven/llm/groq"
	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/deepqa-cli/internal/logger"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Config holds provider credentials, typically read from the environment.
type Config struct {
	// GroqAPIKey authenticates against the Groq API (GROQ_API_KEY).
	GroqAPIKey string

	// GeminiAPIKey authenticates against the Gemini API (GEMINI_API_KEY).
	GeminiAPIKey string
}

// CreateCompletionServices builds a client for every provider the
// registry references. A referenced provider without a credential is a
// configuration error; providers the registry never maps to are skipped.
func CreateCompletionServices(registry *domain.Registry, cfg Config) (map[domain.ProviderType]driven.CompletionService, error) {
	needed := make(map[domain.ProviderType]bool)
	for _, modelID := range registry.Models() {
		provider, err := registry.Resolve(modelID)
		if err != nil {
			return nil, err
		}
		needed[provider] = true
	}

	services := make(map[domain.ProviderType]driven.CompletionService, len(needed))
	for provider := range needed {
		svc, err := createService(provider, cfg)
		if err != nil {
			closeAll(services)
			return nil, err
		}
		services[provider] = svc
		logger.Debug("Configured provider %s", provider)
	}
	return services, nil
}

// ValidateConnectivity pings every configured provider.
// Intended for startup so credential problems surface before the first
// question instead of inside it.
func ValidateConnectivity(services map[domain.ProviderType]driven.CompletionService) error {
	for provider, svc := range services {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err := svc.Ping(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("provider %s unreachable: %w", provider, err)
		}
	}
	return nil
}

// CloseAll releases every configured provider client.
func CloseAll(services map[domain.ProviderType]driven.CompletionService) {
	closeAll(services)
}

func createService(provider domain.ProviderType, cfg Config) (driven.CompletionService, error) {
	switch provider {
	case domain.ProviderGroq:
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("registry maps models to groq but GROQ_API_KEY is not set")
		}
		return groqllm.NewService(groqllm.Config{APIKey: cfg.GroqAPIKey})

	case domain.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("registry maps models to gemini but GEMINI_API_KEY is not set")
		}
		return geminillm.NewService(geminillm.Config{APIKey: cfg.GeminiAPIKey})

	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func closeAll(services map[domain.ProviderType]driven.CompletionService) {
	for _, svc := range services {
		_ = svc.Close()
	}
}
