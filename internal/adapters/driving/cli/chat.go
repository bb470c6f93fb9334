package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/deepqa-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat session",
	Long: `Launch the interactive terminal session for DeepQA.

Search the web, watch the scraped sources accumulate, and ask questions
about them in one place.

Controls:
  Tab       - Switch between search and question input
  Enter     - Submit search / question
  Ctrl+R    - Toggle retaining previous search data
  Ctrl+H    - Toggle including chat history in prompts
  Ctrl+N    - Cycle through registry models
  Ctrl+L    - Show the recorded conversation
  Ctrl+T    - Step the temperature
  Ctrl+C    - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Panic recovery to get stack traces out of the alternate screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	d, err := ensureDeps()
	if err != nil {
		return err
	}

	app := tui.NewApp(d.Session, d.Registry.Models())
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat error: %w", err)
	}
	return nil
}
