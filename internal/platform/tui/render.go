package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	stageStyle = lipgloss.NewStyle()

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	readyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	waitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// renderWithSidebar joins the stage and the duet sidebar side by side.
func renderWithSidebar(stage, sidebar string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, stageStyle.Render(stage), sidebarStyle.Render(sidebar))
}
