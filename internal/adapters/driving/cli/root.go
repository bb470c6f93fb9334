// Package cli provides the cobra command tree for the DeepQA CLI.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/deepqa-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Deps holds the wired core services the commands run against.
type Deps struct {
	Session  driving.SessionService
	Registry *domain.Registry
}

// Bootstrap builds the core services once the --models flag is known.
// main installs it before Execute; commands trigger it lazily so that
// flag parsing has already happened.
type Bootstrap func(modelsPath string) (*Deps, error)

var (
	verboseFlag bool
	modelsFlag  string

	bootstrap Bootstrap
	deps      *Deps
)

var rootCmd = &cobra.Command{
	Use:   "deepqa",
	Short: "Search the web and ask questions about what was found",
	Long: `DeepQA searches the web, scrapes the results into a session corpus,
and answers natural-language questions grounded in that corpus using a
configured LLM.

Model routing is configured in a TOML registry (default ~/.deepqa/models.toml)
mapping model identifiers to providers. API keys are read from the
environment: FIRECRAWL_API_KEY, GROQ_API_KEY, GEMINI_API_KEY.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&modelsFlag, "models", "", "path to the model registry file")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// SetBootstrap installs the service builder used by commands.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
	deps = nil
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// ensureDeps builds the core services on first use.
func ensureDeps() (*Deps, error) {
	if deps != nil {
		return deps, nil
	}
	if bootstrap == nil {
		return nil, errors.New("deepqa is not configured")
	}
	built, err := bootstrap(modelsFlag)
	if err != nil {
		return nil, fmt.Errorf("startup: %w", err)
	}
	deps = built
	return deps, nil
}
