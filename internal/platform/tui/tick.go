// Package tui provides the Bubble Tea front end for the tetris engine.
// It maps keys to actions, feeds frame times into a session and draws
// snapshots onto a core.Screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame with the frame's timestamp.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next frame tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
