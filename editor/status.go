package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusText returns the left and right halves of the status bar.
func (m Model) statusText() (left, right string) {
	info := m.buf.FileInfo()
	left = fmt.Sprintf("%s - %d lines", info.Name(), m.buf.Height())
	if m.buf.IsDirty() {
		left += " (modified)"
	}
	right = fmt.Sprintf("%s | %d/%d", info.FileType(), m.caret.LineIdx+1, m.buf.Height())
	return left, right
}

// renderStatus draws the status bar. A bar that does not fit is left blank.
func (m Model) renderStatus() string {
	left, right := m.statusText()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := strings.Repeat(" ", m.width)
	if gap >= 0 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return m.cfg.Style.StatusBar.Render(line)
}

func (m Model) renderMessage() string {
	if m.mode != modeEdit {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(m.prompt.View())
	}
	if m.message == "" || m.cfg.Now().Sub(m.messageAt) > m.cfg.MessageTimeout {
		return ""
	}
	return m.cfg.Style.Message.MaxWidth(m.width).Render(m.message)
}
