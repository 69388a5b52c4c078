// Package ui implements the interactive code-entry screen used by the CLI
// when stdin is a terminal.
package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type editorModel struct {
	title     string
	input     textarea.Model
	width     int
	done      bool
	cancelled bool
}

// NewEditorModel returns a Bubble Tea model that collects source code from
// the keyboard. Ctrl+D submits, Esc or Ctrl+C cancels.
func NewEditorModel(title string) tea.Model {
	input := textarea.New()
	input.Placeholder = "Enter your code..."
	input.SetWidth(76)
	input.SetHeight(12)
	input.Focus()

	return editorModel{
		title: title,
		input: input,
		width: 80,
	}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlD:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.SetWidth(msg.Width - 4)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	title := runewidth.Truncate(m.title, m.width, "...")
	return titleStyle.Render(title) + "\n\n" +
		m.input.View() + "\n\n" +
		helpStyle.Render("ctrl+d: tokenize  esc: cancel") + "\n"
}

// Code returns the entered source and whether the user submitted it.
func Code(final tea.Model) (string, bool) {
	m, ok := final.(editorModel)
	if !ok || m.cancelled {
		return "", false
	}
	return m.input.Value(), true
}
