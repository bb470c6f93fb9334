package cli

import (
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models available in the registry",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, _ []string) error {
	d, err := ensureDeps()
	if err != nil {
		return err
	}

	cmd.Println("Available models:")
	for _, modelID := range d.Registry.Models() {
		provider, err := d.Registry.Resolve(modelID)
		if err != nil {
			return err
		}
		cmd.Printf("  %s  (%s)\n", modelID, provider.Description())
	}
	return nil
}
