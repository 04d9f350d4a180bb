package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/grapheme"
)

const promptSearch = "Search (Esc to cancel, Arrows to navigate): "

// searchSnapshot is the view state restored when a search is dismissed.
type searchSnapshot struct {
	caret  buffer.Location
	scroll position
}

func (m *Model) enterSearch() tea.Cmd {
	m.saved = searchSnapshot{caret: m.caret, scroll: m.scroll}
	m.mode = modeSearch
	m.prompt.Prompt = promptSearch
	m.prompt.Reset()
	m.search.Set("", nil)
	return m.prompt.Focus()
}

// exitSearch keeps the caret where the search left it.
func (m *Model) exitSearch() {
	m.leavePrompt()
	m.search.Set("", nil)
}

// dismissSearch restores the caret and scroll offset saved on entry.
func (m *Model) dismissSearch() {
	m.caret = m.saved.caret
	m.scroll = m.saved.scroll
	m.exitSearch()
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.dismissSearch()
		return nil
	case key.Matches(msg, km.Confirm):
		m.exitSearch()
		return nil
	case key.Matches(msg, km.SearchNext):
		m.searchNext()
		return nil
	case key.Matches(msg, km.SearchPrev):
		m.searchPrev()
		return nil
	}

	before := m.prompt.Value()
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.prompt.Value() != before {
		m.searchFrom(m.caret, false)
	}
	return cmd
}

func (m *Model) searchNext() {
	query := m.prompt.Value()
	from := m.caret
	from.GraphemeIdx += min(grapheme.Count(query), 1)
	m.searchFrom(from, false)
}

func (m *Model) searchPrev() {
	m.searchFrom(m.caret, true)
}

func (m *Model) searchFrom(from buffer.Location, backward bool) {
	query := m.prompt.Value()
	var (
		loc buffer.Location
		ok  bool
	)
	if backward {
		loc, ok = m.buf.SearchBackward(query, from)
	} else {
		loc, ok = m.buf.Search(query, from)
	}
	if ok {
		m.caret = loc
		m.centerOnCaret()
	}
	m.search.Set(query, &m.caret)
}
