// Package tui implements the interactive chat interface for DeepQA.
//
// The layout is a scrollable transcript over two input lines: one for
// search queries, one for questions. Searches and questions run as
// background commands so the interface stays responsive while the
// external services block.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
	"github.com/custodia-labs/deepqa-cli/internal/core/ports/driving"
)

// inputMode selects which input line is focused.
type inputMode int

const (
	modeSearch inputMode = iota
	modeAsk
)

// searchDoneMsg reports a finished search-and-scrape run.
type searchDoneMsg struct {
	query  string
	report *domain.SearchReport
	err    error
}

// answerDoneMsg reports a finished question-answer cycle.
type answerDoneMsg struct {
	question string
	answer   string
	err      error
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusedStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	blurredStyle   = lipgloss.NewStyle().Border(lipgloss.HiddenBorder()).Padding(0, 1)
)

// App is the Bubble Tea model for the chat session.
type App struct {
	ctx     context.Context
	session driving.SessionService
	models  []string

	mode           inputMode
	modelIdx       int
	temperature    float64
	retain         bool
	includeHistory bool

	searchInput   textinput.Model
	questionInput textinput.Model
	viewport      viewport.Model
	transcript    []string
	status        string
	busy          bool
	ready         bool
}

// NewApp creates the chat application over a session and the registry's
// model identifiers.
func NewApp(session driving.SessionService, models []string) *App {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "web search query"
	search.Focus()

	question := textinput.New()
	question.Prompt = "Ask: "
	question.Placeholder = "question about the scraped data"

	return &App{
		ctx:           context.Background(),
		session:       session,
		models:        models,
		temperature:   domain.DefaultTemperature,
		retain:        true,
		searchInput:   search,
		questionInput: question,
		viewport:      viewport.New(0, 0),
		status:        "Search the web to build context, then ask.",
	}
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init starts the cursor blink.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key, window, and completion events.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.ready = true
		frameW, frameH := focusedStyle.GetFrameSize()
		reserved := 2*(frameH+1) + 3 // two input boxes, title, status, spacer
		height := msg.Height - reserved
		if height < 3 {
			height = 3
		}
		a.viewport.Width = msg.Width - frameW
		a.viewport.Height = height
		a.searchInput.Width = msg.Width - frameW - len(a.searchInput.Prompt) - 1
		a.questionInput.Width = msg.Width - frameW - len(a.questionInput.Prompt) - 1
		a.refreshViewport()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchDoneMsg:
		a.busy = false
		switch {
		case msg.err != nil:
			a.appendBlock(errorStyle.Render("Search failed: " + msg.err.Error()))
			a.status = "Search failed."
		case msg.report.Warning != "":
			a.appendBlock(warnStyle.Render("No data scraped: " + msg.report.Warning))
			a.status = "No data scraped. Check the query and API quota."
		default:
			var sb strings.Builder
			fmt.Fprintf(&sb, "Scraped %d documents for %q:", len(msg.report.Documents), msg.query)
			for _, url := range msg.report.URLs {
				sb.WriteString("\n" + sourceStyle.Render("  - "+url))
			}
			a.appendBlock(sb.String())
			a.status = fmt.Sprintf("Corpus: %d documents.", a.session.CorpusLen())
		}
		return a, nil

	case answerDoneMsg:
		a.busy = false
		if msg.err != nil {
			a.appendBlock(errorStyle.Render("Error: " + msg.err.Error()))
			a.status = "Failed to generate a response."
			return a, nil
		}
		a.appendBlock(userStyle.Render("User: ") + msg.question + "\n" +
			assistantStyle.Render("Assistant: ") + msg.answer)
		a.status = fmt.Sprintf("Turns: %d.", a.session.HistoryLen())
		return a, nil
	}

	return a, a.updateInputs(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit

	case tea.KeyTab:
		if a.mode == modeSearch {
			a.mode = modeAsk
			a.searchInput.Blur()
			a.questionInput.Focus()
		} else {
			a.mode = modeSearch
			a.questionInput.Blur()
			a.searchInput.Focus()
		}
		return a, nil

	case tea.KeyCtrlR:
		a.retain = !a.retain
		return a, nil

	case tea.KeyCtrlH:
		a.includeHistory = !a.includeHistory
		return a, nil

	case tea.KeyCtrlL:
		rendered := a.session.HistoryRender()
		if rendered == "" {
			a.status = "No conversation recorded yet."
			return a, nil
		}
		a.appendBlock(titleStyle.Render("Conversation so far:") + "\n" + strings.TrimRight(rendered, "\n"))
		return a, nil

	case tea.KeyCtrlN:
		if len(a.models) > 0 {
			a.modelIdx = (a.modelIdx + 1) % len(a.models)
		}
		return a, nil

	case tea.KeyCtrlT:
		a.temperature += 0.1
		if a.temperature > 1.0+1e-9 {
			a.temperature = 0.0
		}
		return a, nil

	case tea.KeyEnter:
		if a.busy {
			return a, nil
		}
		if a.mode == modeSearch {
			return a, a.submitSearch()
		}
		return a, a.submitQuestion()

	case tea.KeyUp:
		a.viewport.LineUp(1)
		return a, nil

	case tea.KeyDown:
		a.viewport.LineDown(1)
		return a, nil
	}

	return a, a.updateInputs(msg)
}

func (a *App) submitSearch() tea.Cmd {
	query := strings.TrimSpace(a.searchInput.Value())
	if query == "" {
		a.status = "Please enter a search query."
		return nil
	}
	a.searchInput.SetValue("")
	a.busy = true
	a.status = "Searching and scraping..."

	retain := a.retain
	return func() tea.Msg {
		report, err := a.session.RunSearch(a.ctx, query, domain.SearchOptions{
			Limit:  domain.DefaultSearchLimit,
			Retain: retain,
		})
		return searchDoneMsg{query: query, report: report, err: err}
	}
}

func (a *App) submitQuestion() tea.Cmd {
	question := strings.TrimSpace(a.questionInput.Value())
	if question == "" {
		a.status = "Please enter a question."
		return nil
	}
	if len(a.models) == 0 {
		a.status = "No models configured."
		return nil
	}
	a.questionInput.SetValue("")
	a.busy = true
	a.status = "Generating answer..."

	opts := domain.AskOptions{
		ModelID:        a.models[a.modelIdx],
		Temperature:    a.temperature,
		IncludeHistory: a.includeHistory,
	}
	return func() tea.Msg {
		answer, err := a.session.AskQuestion(a.ctx, question, opts)
		return answerDoneMsg{question: question, answer: answer, err: err}
	}
}

func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if a.mode == modeSearch {
		a.searchInput, cmd = a.searchInput.Update(msg)
	} else {
		a.questionInput, cmd = a.questionInput.Update(msg)
	}
	return cmd
}

func (a *App) appendBlock(block string) {
	a.transcript = append(a.transcript, block)
	a.refreshViewport()
	a.viewport.GotoBottom()
}

func (a *App) refreshViewport() {
	if len(a.transcript) == 0 {
		a.viewport.SetContent("No activity yet.")
		return
	}
	a.viewport.SetContent(strings.Join(a.transcript, "\n\n"))
}

// View renders the transcript, the two inputs, and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	model := "none"
	if len(a.models) > 0 {
		model = a.models[a.modelIdx]
	}
	title := titleStyle.Render("DeepQA") + statusStyle.Render(fmt.Sprintf(
		"  model=%s  temp=%.1f  retain=%s  history=%s",
		model, a.temperature, onOff(a.retain), onOff(a.includeHistory)))

	searchBox := blurredStyle.Render(a.searchInput.View())
	questionBox := blurredStyle.Render(a.questionInput.View())
	if a.mode == modeSearch {
		searchBox = focusedStyle.Render(a.searchInput.View())
	} else {
		questionBox = focusedStyle.Render(a.questionInput.View())
	}

	return title + "\n" +
		a.viewport.View() + "\n" +
		searchBox + "\n" +
		questionBox + "\n" +
		statusStyle.Render(a.status)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
