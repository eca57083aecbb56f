// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and round orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the demo and play activation loop.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate. The loop re-arms itself from the Update handler, which keeps
// it gated by the current phase instead of free-running.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// CountdownMsg advances the 3-2-1 countdown by one step.
type CountdownMsg time.Time

// countdownCmd schedules the next countdown step, one second out.
func countdownCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return CountdownMsg(t)
	})
}
