package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/highlight"
	"github.com/iw2rmb/quill/internal/log"
)

const (
	msgUnsavedQuit = "WARNING! File has unsaved changes. Press ctrl+q again to quit."
	msgSaved       = "File saved successfully."
	msgSaveFailed  = "Error writing file!"
	msgSaveAborted = "Save aborted."

	promptSaveAs = "Save as: "
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			cmd = m.updateSearch(msg)
		case modeSaveAs:
			cmd = m.updateSaveAs(msg)
		default:
			cmd = m.updateEdit(msg)
		}
	default:
		if m.mode != modeEdit {
			m.prompt, cmd = m.prompt.Update(msg)
		}
	}
	m.notify()
	return m, cmd
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	km := m.cfg.KeyMap

	if key.Matches(msg, km.Quit) {
		if m.buf.IsDirty() && !m.quitPending {
			m.quitPending = true
			log.Warn(log.CatUI, "quit with unsaved changes", "file", m.buf.FileInfo().Name())
			m.setMessage(msgUnsavedQuit)
			return nil
		}
		return tea.Quit
	}
	m.quitPending = false

	switch {
	case key.Matches(msg, km.Save):
		return m.save()
	case key.Matches(msg, km.Find):
		return m.enterSearch()
	}

	if mv, ok := km.move(msg); ok {
		m.caret = m.buf.Move(m.caret, mv, m.textHeight())
		m.scrollIntoView()
		return nil
	}

	edits := km.edit(msg)
	if len(edits) == 0 {
		return nil
	}
	for _, e := range edits {
		m.caret = m.buf.Apply(e, m.caret)
	}
	highlight.ApplyStale(m.buf.TakeStale(), m.highlighters()...)
	m.scrollIntoView()
	return nil
}

func (m *Model) save() tea.Cmd {
	if !m.buf.IsFileLoaded() {
		m.mode = modeSaveAs
		m.prompt.Prompt = promptSaveAs
		m.prompt.Reset()
		return m.prompt.Focus()
	}
	m.reportSave(m.buf.Save())
	return nil
}

func (m *Model) reportSave(err error) {
	if err != nil {
		log.ErrorErr(log.CatUI, "save failed", err, "file", m.buf.FileInfo().Name())
		m.setMessage(msgSaveFailed)
		return
	}
	m.setMessage(msgSaved)
}

func (m *Model) updateSaveAs(msg tea.KeyMsg) tea.Cmd {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.leavePrompt()
		m.setMessage(msgSaveAborted)
		return nil
	case key.Matches(msg, km.Confirm):
		name := strings.TrimSpace(m.prompt.Value())
		m.leavePrompt()
		if name == "" {
			m.setMessage(msgSaveAborted)
			return nil
		}
		err := m.buf.SaveAs(name)
		if err == nil {
			// The new name may carry a different file type.
			m.syntax = syntaxFor(m.buf.FileInfo().FileType())
		}
		m.reportSave(err)
		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) leavePrompt() {
	m.mode = modeEdit
	m.prompt.Blur()
	m.prompt.Reset()
}

// highlighters returns the active highlighters. A nil *Syntax must not be
// wrapped in the interface.
func (m Model) highlighters() []highlight.Highlighter {
	hs := make([]highlight.Highlighter, 0, 2)
	if m.syntax != nil {
		hs = append(hs, m.syntax)
	}
	if m.search != nil {
		hs = append(hs, m.search)
	}
	return hs
}

// scrollIntoView moves the scroll offset the least amount that keeps the
// caret visible, honoring the configured margin vertically.
func (m *Model) scrollIntoView() {
	th := m.textHeight()
	if th > 0 {
		margin := min(m.cfg.ScrollMargin, (th-1)/2)
		row := m.caret.LineIdx
		switch {
		case row < m.scroll.row+margin:
			m.scroll.row = max(row-margin, 0)
		case row >= m.scroll.row+th-margin:
			m.scroll.row = row - th + margin + 1
		}
	}

	if m.width > 0 {
		x := m.caretCell()
		switch {
		case x < m.scroll.col:
			m.scroll.col = x
		case x >= m.scroll.col+m.width:
			m.scroll.col = x - m.width + 1
		}
	}
}

// centerOnCaret places the caret in the middle of the text area.
func (m *Model) centerOnCaret() {
	m.scroll.row = max(m.caret.LineIdx-ceilHalf(m.textHeight()), 0)
	m.scroll.col = max(m.caretCell()-ceilHalf(m.width), 0)
}

func ceilHalf(n int) int { return (n + 1) / 2 }

// caretCell is the display column of the caret within its line.
func (m Model) caretCell() int {
	line, ok := m.buf.Line(m.caret.LineIdx)
	if !ok {
		return 0
	}
	return line.WidthUntil(m.caret.GraphemeIdx)
}

func (m *Model) notify() {
	v := m.buf.Version()
	if v == m.lastVersion && m.caret == m.lastCaret {
		return
	}
	m.lastVersion, m.lastCaret = v, m.caret
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.caret))
	}
}
