// Command deepqa searches the web, scrapes the results into a session
// corpus, and answers questions about it with a configured LLM.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/deepqa-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/deepqa-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/deepqa-cli/internal/adapters/driven/search/firecrawl"
	"github.com/custodia-labs/deepqa-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/deepqa-cli/internal/core/services"
	"github.com/custodia-labs/deepqa-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	// API keys may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	cli.SetVersion(version)
	cli.SetBootstrap(buildDeps)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildDeps wires the core services. The model registry is loaded once
// here; any problem with it aborts startup.
func buildDeps(modelsPath string) (*cli.Deps, error) {
	store, err := file.NewModelStore(modelsPath)
	if err != nil {
		return nil, err
	}

	registry, err := store.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded %d models from %s", registry.Len(), store.Path())

	providers, err := ai.CreateCompletionServices(registry, ai.Config{
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err != nil {
		return nil, err
	}

	// Pinging every provider costs a round trip, so only verbose runs
	// check connectivity up front.
	if logger.IsVerbose() {
		if err := ai.ValidateConnectivity(providers); err != nil {
			ai.CloseAll(providers)
			return nil, err
		}
	}

	scraper, err := firecrawl.NewClient(firecrawl.Config{
		APIKey: os.Getenv("FIRECRAWL_API_KEY"),
	})
	if err != nil {
		ai.CloseAll(providers)
		return nil, err
	}

	generator := services.NewGenerator(registry, providers)
	session := services.NewSession(scraper, generator)
	logger.Debug("Session %s ready", session.ID())

	return &cli.Deps{
		Session:  session,
		Registry: registry,
	}, nil
}
