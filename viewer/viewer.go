package viewer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notegrid/tuiutil"
)

var (
	HeaderHeight       = 2
	FooterHeight       = 1
	HeaderStyle        lipgloss.Style
	FooterStyle        lipgloss.Style
	ErrorStyle         lipgloss.Style
	HeaderDividerStyle lipgloss.Style
)

func SetStyles() {
	HeaderStyle = lipgloss.NewStyle()
	FooterStyle = lipgloss.NewStyle()
	ErrorStyle = lipgloss.NewStyle().Bold(true)

	HeaderDividerStyle = lipgloss.NewStyle().
		Align(lipgloss.Center)

	if !tuiutil.Ascii {
		HeaderStyle = HeaderStyle.
			Foreground(lipgloss.Color(tuiutil.HeaderTopForeground()))

		FooterStyle = FooterStyle.
			Foreground(lipgloss.Color(tuiutil.FooterForeground()))

		ErrorStyle = ErrorStyle.
			Foreground(lipgloss.Color(tuiutil.ErrorColor()))

		HeaderDividerStyle = HeaderDividerStyle.
			Foreground(lipgloss.Color(tuiutil.HeaderBottom()))
	}
}

// Init sets up styles; there is nothing to fetch, the grid is loaded before
// the program starts
func (m TuiModel) Init() tea.Cmd {
	SetStyles()

	return nil
}

// Update is where all commands and whatnot get processed. Database writes
// triggered by an edit run right here, on the event loop.
func (m TuiModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var commands []tea.Cmd

	switch msg := message.(type) {
	case tea.MouseMsg:
		HandleMouseEvents(&m, &msg)
	case tea.WindowSizeMsg:
		HandleWindowSizeEvents(&m, &msg)
	case tea.KeyMsg:
		s := msg.String()
		if s == "ctrl+c" || (s == "q" && !m.UI.EditModeEnabled) {
			return m, tea.Quit
		}

		commands = append(commands, HandleKeyboardEvents(&m, &msg))
	case error:
		m.WriteError(msg.Error())
	}

	return m, tea.Batch(commands...)
}

// View is where all rendering happens
func (m TuiModel) View() string {
	if !m.Ready || m.Viewport.Width == 0 {
		return "\n\tInitializing..."
	}

	header := AssembleHeader(&m)
	content := AssembleTable(&m)
	footer := AssembleFooter(&m)

	return fmt.Sprintf("%s\n%s\n%s", header, content, footer) // render
}
