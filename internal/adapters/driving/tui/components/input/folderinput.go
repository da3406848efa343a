// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clonegroup/internal/adapters/driving/tui/styles"
)

const minInputWidth = 20

// FolderInput is a single-line prompt for the root folder to group.
type FolderInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewFolderInput creates a focused folder input.
func NewFolderInput(s *styles.Styles) *FolderInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Path to the main folder..."
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	return &FolderInput{
		textinput: ti,
		styles:    s,
		width:     60,
	}
}

// Init starts the cursor blinking.
func (f *FolderInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *FolderInput) Update(msg tea.Msg) (*FolderInput, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the prompt and the input box side by side.
func (f *FolderInput) View() string {
	label := f.styles.Prompt.Render("Folder: ")
	box := f.styles.InputField.Render(f.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box)
}

// Value returns the trimmed folder path.
func (f *FolderInput) Value() string {
	return strings.TrimSpace(f.textinput.Value())
}

// SetValue replaces the folder path.
func (f *FolderInput) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus gives the input keyboard focus.
func (f *FolderInput) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes keyboard focus.
func (f *FolderInput) Blur() {
	f.textinput.Blur()
}

// Focused reports whether the input has keyboard focus.
func (f *FolderInput) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sizes the input for a terminal of the given width.
func (f *FolderInput) SetWidth(width int) {
	f.width = width
	// label, border and padding
	inputWidth := width - 14
	if inputWidth < minInputWidth {
		inputWidth = minInputWidth
	}
	f.textinput.Width = inputWidth
}

// Width returns the terminal width last set.
func (f *FolderInput) Width() int {
	return f.width
}

// Reset clears the input.
func (f *FolderInput) Reset() {
	f.textinput.Reset()
}
