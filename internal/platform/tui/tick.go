// Package tui provides the Bubble Tea integration for the arcade platform.
// It maps the mouse onto the playfield, schedules session ticks and draws
// snapshots, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Epoch is the session epoch
// the tick was scheduled under; a tick from an older epoch is dropped.
type TickMsg struct {
	Epoch uint64
	At    time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after the
// interval for the given rate.
func tickCmd(tickRate int, epoch uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, At: t}
	})
}
