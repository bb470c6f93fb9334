package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
)

var (
	searchLimit  int
	searchRetain bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the web and scrape results into the session corpus",
	Long: `Searches the web for the query and scrapes each result page to
markdown, printing the scraped source URLs.

Session state lives in memory only, so a standalone search is mainly a
preview of what a query scrapes. Use 'deepqa ask --query' to search and
ask in one run, or 'deepqa chat' for a full interactive session.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results to scrape")
	searchCmd.Flags().BoolVar(&searchRetain, "retain", true, "retain previously scraped data")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	d, err := ensureDeps()
	if err != nil {
		return err
	}

	report, err := d.Session.RunSearch(cmd.Context(), args[0], domain.SearchOptions{
		Limit:  searchLimit,
		Retain: searchRetain,
	})
	if err != nil {
		return err
	}

	if report.Warning != "" {
		cmd.Printf("Warning: no data scraped: %s\n", report.Warning)
		return nil
	}

	cmd.Printf("Scraped %d documents:\n", len(report.Documents))
	for _, url := range report.URLs {
		cmd.Printf("  - %s\n", url)
	}
	return nil
}
