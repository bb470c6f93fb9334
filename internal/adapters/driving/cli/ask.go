package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
)

var (
	askQuery       string
	askLimit       int
	askModel       string
	askTemperature float64
	askSources     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Search the web and answer a question from the scraped pages",
	Long: `Searches the web for --query, scrapes the results into a fresh
session corpus, and answers the question grounded in it.

The model defaults to the first entry of the model registry; pick another
with --model (see 'deepqa models' for the available identifiers).`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "search query to scrape context for (defaults to the question)")
	askCmd.Flags().IntVarP(&askLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results to scrape")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "model identifier from the registry")
	askCmd.Flags().Float64VarP(&askTemperature, "temperature", "t", domain.DefaultTemperature, "generation temperature in [0,1]")
	askCmd.Flags().BoolVar(&askSources, "sources", false, "print the scraped source URLs with the answer")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	d, err := ensureDeps()
	if err != nil {
		return err
	}

	question := args[0]
	query := askQuery
	if query == "" {
		query = question
	}

	report, err := d.Session.RunSearch(cmd.Context(), query, domain.SearchOptions{
		Limit:  askLimit,
		Retain: true,
	})
	if err != nil {
		return err
	}
	if report.Warning != "" {
		return errors.New("no data scraped: " + report.Warning)
	}

	model := askModel
	if model == "" {
		models := d.Registry.Models()
		if len(models) == 0 {
			return domain.ErrUnknownModel
		}
		model = models[0]
	}

	answer, err := d.Session.AskQuestion(cmd.Context(), question, domain.AskOptions{
		ModelID:     model,
		Temperature: askTemperature,
	})
	if err != nil {
		return err
	}

	cmd.Println(answer)

	if askSources {
		cmd.Println()
		cmd.Println("Sources:")
		for _, url := range d.Session.SourceURLs() {
			cmd.Printf("  - %s\n", url)
		}
	}
	return nil
}
