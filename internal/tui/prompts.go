package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via STASHIT_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (STASHIT_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("STASHIT_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	confirmed := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}

	return confirmed, nil
}

// SelectOption represents an option in a selection prompt
type SelectOption struct {
	Label string // What to show
	Value string // Value to return
}

// selectKeyMap holds the key bindings of the selection prompt
type selectKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultSelectKeyMap() selectKeyMap {
	return selectKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// SelectModel is a selection prompt model with arrow key navigation
type SelectModel struct {
	Options  []SelectOption
	Cursor   int
	Selected string
	Done     bool
	Err      error
	Title    string
	keys     selectKeyMap
}

// NewSelectModel creates a selection model with the cursor on defaultIndex
func NewSelectModel(title string, options []SelectOption, defaultIndex int) SelectModel {
	cursor := defaultIndex
	if cursor < 0 || cursor >= len(options) {
		cursor = 0
	}
	return SelectModel{
		Options: options,
		Cursor:  cursor,
		Title:   title,
		keys:    defaultSelectKeyMap(),
	}
}

// Init initializes the bubbletea model
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles message updates for the bubbletea model
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if len(m.Options) > 0 && m.Cursor >= 0 && m.Cursor < len(m.Options) {
			m.Selected = m.Options[m.Cursor].Value
			m.Done = true
			return m, tea.Quit
		}
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Err = fmt.Errorf("canceled")
		m.Done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		} else {
			m.Cursor = len(m.Options) - 1
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		} else {
			m.Cursor = 0
		}
	}
	return m, nil
}

// View renders the TUI
func (m SelectModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.Title))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		if i == m.Cursor {
			b.WriteString(fmt.Sprintf("  → %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(opt.Label)))
		} else {
			b.WriteString(fmt.Sprintf("    %s\n", opt.Label))
		}
	}

	help := make([]string, 0, 4)
	for _, binding := range []key.Binding{m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Cancel} {
		help = append(help, binding.Help().Key+" "+binding.Help().Desc)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("\n(" + strings.Join(help, ", ") + ")"))

	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(b.String())
}

// PromptSelect prompts the user to select from a list of options
func PromptSelect(title string, options []SelectOption, defaultIndex int) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	m := NewSelectModel(title, options, defaultIndex)

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(SelectModel); ok {
		if finalModel.Err != nil {
			return "", finalModel.Err
		}
		return finalModel.Selected, nil
	}

	return "", fmt.Errorf("unexpected model type")
}
