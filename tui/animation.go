package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg advances the particle field and the header glyph
type FrameMsg time.Time

// ExchangeTickMsg is the exchange timer. Run ties it to the exchange run that
// scheduled it so ticks from a cancelled run are dropped.
type ExchangeTickMsg struct {
	Run int
}

// CopyResetMsg clears the "Copied" label
type CopyResetMsg struct {
	Seq int
}

// NoticeExpiredMsg removes a notification once its time is up
type NoticeExpiredMsg struct {
	Seq int
}

// frameCmd returns a command that sends periodic frame messages
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// exchangeTickCmd schedules the next progress step for run
func exchangeTickCmd(interval time.Duration, run int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ExchangeTickMsg{Run: run}
	})
}

func copyResetCmd(after time.Duration, seq int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return CopyResetMsg{Seq: seq}
	})
}

func noticeExpiryCmd(after time.Duration, seq int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Seq: seq}
	})
}

var atomFrames = []string{"◐", "◓", "◑", "◒"}

// atomGlyph is the rotating header icon, one quarter turn every five frames
func atomGlyph(frame int) string {
	return atomFrames[(frame/5)%len(atomFrames)]
}
