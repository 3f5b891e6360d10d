package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"quantum-exchange/models"
	"quantum-exchange/utils"
)

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// FileSelectedMsg reports the outcome of stat-ing a picked file
type FileSelectedMsg struct {
	Path string
	File models.FileInfo
	Err  error
}

// CopyResultMsg reports the outcome of a clipboard write
type CopyResultMsg struct {
	Err error
}

// selectFileCmd reads the name and size of the chosen file
func selectFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := utils.StatFile(path)
		return FileSelectedMsg{Path: path, File: info, Err: err}
	}
}

// copyKeyCmd writes key to the clipboard off the event loop
func copyKeyCmd(c Clipboard, key string) tea.Cmd {
	return func() tea.Msg {
		if err := c.WriteAll(key); err != nil {
			return CopyResultMsg{Err: fmt.Errorf("failed to copy key: %w", err)}
		}
		return CopyResultMsg{}
	}
}
