package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"quantum-exchange/models"
)

// StatFile resolves a selected file to the name and size the dashboard
// displays. The file is never opened.
func StatFile(filename string) (models.FileInfo, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return models.FileInfo{}, fmt.Errorf("filename cannot be empty")
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("cannot resolve absolute path for %s: %w", filename, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.FileInfo{}, fmt.Errorf("file does not exist: %s", filename)
		}
		return models.FileInfo{}, fmt.Errorf("cannot access file %s: %w", filename, err)
	}

	if info.IsDir() {
		return models.FileInfo{}, fmt.Errorf("path is a directory, not a file: %s", filename)
	}

	return models.FileInfo{
		Name: info.Name(),
		Path: absPath,
		Size: info.Size(),
	}, nil
}

func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%d ms", duration.Milliseconds())
	}

	if duration < time.Minute {
		return fmt.Sprintf("%.1f sec", duration.Seconds())
	}

	if duration < time.Hour {
		return fmt.Sprintf("%.1f min", duration.Minutes())
	}

	return fmt.Sprintf("%.1f hrs", duration.Hours())
}

// FormatFileSize renders an exact byte count, with one decimal once the size
// reaches a kilobyte.
func FormatFileSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	v, i := float64(size), 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.1f %s", v, units[i])
}

// FormatKB renders a file size the way the setup form shows it.
func FormatKB(f models.FileInfo) string {
	return fmt.Sprintf("%d KB", f.KB())
}

// TruncateString shortens s to maxWidth terminal cells, ending with "...".
// Styled strings keep their escape sequences intact.
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return ansi.Truncate(s, maxWidth, "")
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// Prefix returns the first n runes of s followed by "..." when s is longer,
// as used for the recipient key preview.
func Prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
