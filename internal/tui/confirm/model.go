// Package confirm implements the interactive prompt shown before a command runs.
package confirm

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the confirmation prompt model.
// Fields are ordered to minimize memory padding.
type Model struct {
	keys      KeyMap
	styles    Styles
	command   string
	confirmed bool
	done      bool
}

// New creates a prompt asking whether command should run.
func New(command string) *Model {
	return &Model{
		command: command,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses. Any answer ends the program.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Decline), key.Matches(keyMsg, m.keys.Quit):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the prompt. Nothing is left on screen once answered.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Run this command?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Command.Render(m.command))
	b.WriteString("\n\n")
	b.WriteString(m.helpLine(m.keys.Confirm))
	b.WriteString("  ")
	b.WriteString(m.helpLine(m.keys.Decline))

	return m.styles.Dialog.Render(b.String()) + "\n"
}

func (m *Model) helpLine(binding key.Binding) string {
	h := binding.Help()
	return fmt.Sprintf("%s %s", m.styles.HelpKey.Render(h.Key), m.styles.HelpDesc.Render(h.Desc))
}

// Confirmed reports whether the user accepted.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Run shows the prompt on out, reads keys from in and returns the answer.
func Run(command string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(New(command), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	m, ok := final.(*Model)
	if !ok {
		return false, nil
	}
	return m.Confirmed(), nil
}
