// Package screen shows rendered output in a scrollable full-screen pager.
package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Faint(true)

const footerHeight = 1

// Model is the Bubbletea model of the pager.
type Model struct {
	viewport viewport.Model
	content  string
	title    string
}

// NewModel builds a pager over content sized to width x height.
func NewModel(title, content string, width, height int) Model {
	vp := viewport.New(width, max(height-footerHeight, 1))
	vp.SetContent(content)
	return Model{viewport: vp, content: content, title: title}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resizes and quit keys; everything else scrolls.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerHeight, 1)
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible part of the content and a footer.
func (m Model) View() string {
	footer := footerStyle.Render(m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m Model) footer() string {
	parts := []string{}
	if m.title != "" {
		parts = append(parts, m.title)
	}
	parts = append(parts, "q to quit")
	return strings.Join(parts, " • ")
}

// Show runs the pager on the alternate screen until the user quits. Bubbletea
// restores the terminal when Show returns, including after a panic.
func Show(title, content string, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(NewModel(title, content, 80, 24), options...)
	_, err := program.Run()
	return err
}
