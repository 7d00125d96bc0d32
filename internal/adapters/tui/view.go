package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// consoleChrome is the number of rows taken by everything but the console
// pane: title, buttons, pane border and help.
const consoleChrome = 8

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	selectedStyle = buttonStyle.BorderForeground(lipgloss.Color("12")).Bold(true)
	busyStyle     = buttonStyle.Faint(true)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	alertStyle    = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("214")).Padding(1, 2)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m Model) View() string {
	if len(m.alerts) > 0 {
		return m.alertView()
	}

	rendered := make([]string, 0, len(m.buttons))
	for i, b := range m.buttons {
		label := fmt.Sprintf("%d %s", i+1, b.label)
		style := buttonStyle
		switch {
		case m.busy[i]:
			style = busyStyle
			label += " …"
		case i == m.cursor:
			style = selectedStyle
		}
		rendered = append(rendered, style.Render(label))
	}

	return strings.Join([]string{
		titleStyle.Render("AppSync todos"),
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		paneStyle.Render(m.console.View()),
		helpStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m Model) alertView() string {
	n := m.alerts[0]
	body := m.renderer.Headline(n)
	if b := m.renderer.Body(n); b != "" {
		body += "\n\n" + b
	}
	footer := "enter to dismiss"
	if more := len(m.alerts) - 1; more > 0 {
		footer = fmt.Sprintf("enter to dismiss (%d more)", more)
	}
	box := alertStyle.MaxWidth(m.width).Render(body + "\n\n" + helpStyle.Render(footer))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
