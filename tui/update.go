package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"quantum-exchange/exchange"
	"quantum-exchange/models"
	"quantum-exchange/utils"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case FrameMsg:
		return m.handleFrame()
	case ExchangeTickMsg:
		return m.handleExchangeTick(msg)
	case spinner.TickMsg:
		if m.ex.Status() != models.StatusProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case FileSelectedMsg:
		return m.handleFileSelected(msg)
	case CopyResultMsg:
		return m.handleCopyResult(msg)
	case CopyResetMsg:
		if msg.Seq == m.copySeq {
			m.copied = false
		}
		return m, nil
	case NoticeExpiredMsg:
		if m.notice != nil && m.notice.seq == msg.Seq {
			m.notice = nil
		}
		return m, nil
	}

	// Directory listings and other picker internals
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// quit ends the program, logging how well the chart cache did
func (m Model) quit() (Model, tea.Cmd) {
	stats := m.cache.GetStats()
	m.logger.Debug("render cache",
		"entries", m.cache.Size(),
		"hits", stats["hits"],
		"misses", stats["misses"])
	m.quitting = true
	return m, tea.Quit
}

// handleWindowSize handles window resize events. Cached charts are keyed by
// size, so a new width leaves them all unreachable.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	if msg.Width != m.width {
		m.cache.Clear()
	}
	m.width = msg.Width
	m.height = msg.Height
	m.layoutPanes()

	m.help.Width = m.leftPaneWidth
	m.progressBar.Width = max(m.leftPaneWidth-16, 10)
	m.recipientInput.Width = max(min(m.leftPaneWidth-12, 64), 10)

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// layoutPanes splits the width between content and the activity pane
func (m *Model) layoutPanes() {
	m.showRightPane = m.width >= rightPaneMinWidth && !m.paneHidden
	if m.showRightPane {
		m.leftPaneWidth = int(float64(m.width) * 0.7)    // 70% for content
		m.rightPaneWidth = m.width - m.leftPaneWidth - 1 // remainder minus separator
	} else {
		m.leftPaneWidth = m.width
		m.rightPaneWidth = 0
	}
}

// handleKeyMessage routes keys to the layer that owns them: the details
// modal, the file picker, the recipient input, then tab-level shortcuts.
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showDetails {
		return m.updateDetails(msg)
	}
	if m.picking {
		return m.updatePicker(msg)
	}
	if m.tab == TabSetup && m.focus == FocusRecipient && m.recipientInput.Focused() {
		if handled, model, cmd := m.updateRecipient(msg); handled {
			return model, cmd
		}
	}

	// Handle global scroll keys for right pane when it's visible
	if m.showRightPane {
		switch msg.String() {
		case "pgup", "ctrl+u":
			m.scrollSummary(-5)
			return m, nil
		case "pgdn", "ctrl+d":
			m.scrollSummary(5)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Setup):
		return m.switchTab(TabSetup)
	case key.Matches(msg, m.keys.Visual):
		return m.switchTab(TabVisualization)
	case key.Matches(msg, m.keys.Metrics):
		return m.switchTab(TabMetrics)
	case key.Matches(msg, m.keys.NextTab) && !m.dropdownOpen:
		return m.switchTab((m.tab + 1) % Tab(len(tabNames)))
	case key.Matches(msg, m.keys.PrevTab) && !m.dropdownOpen:
		return m.switchTab((m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelExchange()
	case key.Matches(msg, m.keys.Details):
		if m.ex.Status() == models.StatusCompleted {
			m.showDetails = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Reveal):
		m.keyVisible = !m.keyVisible
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, copyKeyCmd(m.clipboard, m.ex.ReceiveKey())
	case key.Matches(msg, m.keys.Regen):
		m.ex.RegenerateReceiveKey()
		m.copied = false
		m.logger.Info("receive key regenerated")
		m.addFormattedAction("Receive key regenerated")
		return m, nil
	case key.Matches(msg, m.keys.Activity):
		m.paneHidden = !m.paneHidden
		m.layoutPanes()
		return m, nil
	}

	if m.tab == TabSetup {
		return m.updateSetup(msg)
	}
	return m, nil
}

// handleMouseMessage scrolls the activity pane
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.showRightPane {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollSummary(-2)
	case tea.MouseButtonWheelDown:
		m.scrollSummary(2)
	}
	return m, nil
}

func (m Model) switchTab(t Tab) (Model, tea.Cmd) {
	if t == m.tab {
		return m, nil
	}
	m.tab = t
	m.dropdownOpen = false
	if t != TabSetup {
		m.recipientInput.Blur()
	} else if m.focus == FocusRecipient {
		return m, m.recipientInput.Focus()
	}
	return m, nil
}

// handleFrame steps the animation and schedules the next frame
func (m Model) handleFrame() (Model, tea.Cmd) {
	m.frame++
	m.field.Step(m.ex.Status() == models.StatusProcessing)
	return m, frameCmd(m.cfg.FrameInterval)
}

// startExchange validates the form and starts the timer chain
func (m Model) startExchange() (Model, tea.Cmd) {
	run, err := m.ex.Start()
	switch {
	case errors.Is(err, exchange.ErrMissingInformation):
		m.logger.Warn("start rejected", "reason", err)
		m.addFormattedStatus("Start", "missing information")
		return m.notify("Missing Information", "Please select a file and enter recipient's quantum key", noticeWarning)
	case errors.Is(err, exchange.ErrExchangeInProgress):
		return m, nil
	case err != nil:
		m.err = err
		return m.notify("Exchange Error", err.Error(), noticeDanger)
	}

	m.field.Reset()
	m.showDetails = false
	file, _ := m.ex.File()
	m.logger.Info("exchange started",
		"run", run,
		"protocol", m.ex.Protocol(),
		"file", file.Name,
		"size_kb", file.KB())
	m.addFormattedAction("Exchange started")
	m.addFormattedStatusIndented("File", file.Name)
	m.addFormattedStatusIndented("Protocol", m.ex.Protocol().Label())

	return m, tea.Batch(exchangeTickCmd(m.cfg.TickInterval, run), m.spinner.Tick)
}

// cancelExchange returns a running exchange to idle
func (m Model) cancelExchange() (Model, tea.Cmd) {
	progress := m.ex.Progress()
	if !m.ex.Cancel() {
		return m, nil
	}
	m.field.Reset()
	m.logger.Info("exchange cancelled", "progress", progress)
	m.addFormattedAction("Exchange cancelled")
	m.addFormattedStatusIndented("Progress", fmt.Sprintf("%d%%", progress))
	return m, nil
}

// handleExchangeTick advances progress for the current run only
func (m Model) handleExchangeTick(msg ExchangeTickMsg) (Model, tea.Cmd) {
	if msg.Run != m.ex.Run() {
		m.logger.Debug("dropping stale tick", "run", msg.Run, "current", m.ex.Run())
		return m, nil
	}

	if m.ex.Advance(msg.Run) {
		return m, exchangeTickCmd(m.cfg.TickInterval, msg.Run)
	}

	if m.ex.Status() == models.StatusCompleted {
		file, _ := m.ex.File()
		m.logger.Info("exchange completed",
			"run", msg.Run,
			"file", file.Name,
			"elapsed", m.ex.CompletedAt().Sub(m.ex.StartedAt()))
		m.addFormattedAction("Exchange completed")
		m.addFormattedStatusIndented("Key Exchange", m.ex.Protocol().String())
		m.addFormattedStatusIndented("Timestamp", m.ex.CompletedAt().Format("15:04:05"))
	}
	return m, nil
}

func (m Model) handleFileSelected(msg FileSelectedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("file selection failed", "path", msg.Path, "error", msg.Err)
		m.addFormattedStatus("File", "invalid selection")
		return m.notify("File Selection Failed", msg.Err.Error(), noticeDanger)
	}

	m.ex.SetFile(msg.File)
	m.logger.Info("file selected", "name", msg.File.Name, "size", msg.File.Size)
	m.addFormattedAction("File selected")
	m.addFormattedStatusIndented("File", msg.File.Name)
	m.addFormattedStatusIndented("Size", utils.FormatFileSize(msg.File.Size))
	return m, nil
}

func (m Model) handleCopyResult(msg CopyResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("clipboard write failed", "error", msg.Err)
		return m.notify("Copy Failed", msg.Err.Error(), noticeDanger)
	}
	m.copied = true
	m.copySeq++
	m.logger.Debug("receive key copied")
	m.addFormattedAction("Receive key copied")
	return m, copyResetCmd(m.cfg.CopyFeedback, m.copySeq)
}

// notify shows a notification and schedules its expiry
func (m Model) notify(title, body string, tone noticeTone) (Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = &notice{title: title, body: body, tone: tone, seq: m.noticeSeq}
	return m, noticeExpiryCmd(m.cfg.NoticeDuration, m.noticeSeq)
}

func (m *Model) scrollSummary(delta int) {
	maxScroll := max(len(m.outputSummary)-m.summaryVisibleLines(), 0)
	m.outputScrollOffset = min(max(m.outputScrollOffset+delta, 0), maxScroll)
}
