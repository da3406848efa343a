package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clonegroup/internal/adapters/driving/format"
	"github.com/custodia-labs/clonegroup/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/clonegroup/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/clonegroup/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clonegroup/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clonegroup/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

const (
	// title, blank, input box (3), blank, results frame (2), status bar
	chromeHeight = 9
	minPane      = 3
	intro        = "Type the main folder and press enter to group its documents."
)

// App is the TUI application following the Elm architecture.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	input   *input.FolderInput
	results viewport.Model
	bar     *status.Bar

	// resultsFocused routes keys to the results pane instead of the input.
	resultsFocused bool
	running        bool

	report *domain.Report
	err    error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		input:   input.NewFolderInput(s),
		results: viewport.New(80, 20),
		bar:     status.NewBar(s, km),
	}, nil
}

// WithContext sets the context passed to grouping runs.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("clonegroup - Group Documents"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.GroupRequested:
		return a, a.startGroup(msg.Root)

	case messages.GroupCompleted:
		a.finishGroup(msg)
		return a, nil

	case messages.ResetRequested:
		a.reset()
		return a, nil
	}

	if a.resultsFocused {
		a.results, cmd = a.results.Update(msg)
	} else {
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(k, a.keymap.Reset):
		return a, func() tea.Msg { return messages.ResetRequested{} }

	case keymap.Matches(k, a.keymap.Focus):
		a.toggleFocus()
		return a, nil

	case !a.resultsFocused && keymap.Matches(k, a.keymap.Run):
		root := a.input.Value()
		return a, func() tea.Msg { return messages.GroupRequested{Root: root} }
	}

	if a.resultsFocused {
		a.results, cmd = a.results.Update(msg)
		return a, cmd
	}
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) toggleFocus() {
	a.resultsFocused = !a.resultsFocused
	if a.resultsFocused {
		a.input.Blur()
	} else {
		a.input.Focus()
	}
	a.bar.SetScrolling(a.resultsFocused)
}

// startGroup validates the folder and returns the command running the pipeline.
func (a *App) startGroup(root string) tea.Cmd {
	if root == "" {
		a.err = ErrNoFolder
		a.bar.SetState(status.StateError)
		a.bar.SetMessage("No folder was selected!")
		return nil
	}
	if a.running {
		return nil
	}

	a.running = true
	a.err = nil
	a.bar.SetState(status.StateRunning)
	a.bar.SetMessage(root)

	ctx := a.ctx
	grouping := a.ports.Grouping
	opts := a.groupOptions()
	return func() tea.Msg {
		report, err := grouping.GroupRoot(ctx, root, opts)
		return messages.GroupCompleted{Report: report, Err: err}
	}
}

func (a *App) groupOptions() domain.GroupOptions {
	if a.ports.Settings != nil {
		if settings, err := a.ports.Settings.Get(); err == nil {
			return settings.GroupOptions()
		}
	}
	return domain.DefaultAppSettings().GroupOptions()
}

func (a *App) finishGroup(msg messages.GroupCompleted) {
	a.running = false
	if msg.Err != nil {
		a.err = msg.Err
		a.bar.SetState(status.StateError)
		a.bar.SetMessage(msg.Err.Error())
		return
	}

	a.report = msg.Report
	a.err = nil

	var buf bytes.Buffer
	if err := format.WriteText(&buf, msg.Report); err != nil {
		a.err = err
		a.bar.SetState(status.StateError)
		a.bar.SetMessage(err.Error())
		return
	}
	a.results.SetContent(a.highlight(buf.String()))
	a.results.GotoTop()

	a.bar.SetState(status.StateDone)
	a.bar.SetSummary(len(msg.Report.Tiers), msg.Report.TotalDocuments())
}

// highlight colours tier headers and groups holding more than one document.
func (a *App) highlight(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "Grouped Similar Documents in "):
			lines[i] = a.styles.TierHeader.Render(line)
		case strings.HasPrefix(line, "Group ") && strings.Contains(line, ", "):
			lines[i] = a.styles.Duplicate.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) reset() {
	a.report = nil
	a.err = nil
	a.results.SetContent("")
	a.results.GotoTop()
	a.bar.Clear()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	pane := a.styles.Results
	if a.resultsFocused {
		pane = a.styles.ResultsFocused
	}

	body := a.results.View()
	if a.report == nil {
		body = a.styles.Muted.Render(intro)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("clonegroup"),
		"",
		a.input.View(),
		"",
		pane.Width(a.paneWidth()).Render(body),
		a.bar.View(),
	)
}

// SetDimensions sizes every component for a terminal of width x height.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.input.SetWidth(width)
	a.bar.SetWidth(width)

	paneHeight := height - chromeHeight
	if paneHeight < minPane {
		paneHeight = minPane
	}
	a.results.Width = a.paneWidth() - a.styles.Results.GetHorizontalFrameSize()
	a.results.Height = paneHeight
}

func (a *App) paneWidth() int {
	w := a.width - a.styles.Results.GetHorizontalBorderSize()
	if w < minPane {
		w = minPane
	}
	return w
}

// Report returns the last successful report, or nil.
func (a *App) Report() *domain.Report {
	return a.report
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Running reports whether a grouping run is in flight.
func (a *App) Running() bool {
	return a.running
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// ResultsFocused reports whether keys go to the results pane.
func (a *App) ResultsFocused() bool {
	return a.resultsFocused
}

// Input returns the folder input, for tests and callers presetting a path.
func (a *App) Input() *input.FolderInput {
	return a.input
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
