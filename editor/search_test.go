package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

func loc(line, g int) buffer.Location { return buffer.Location{LineIdx: line, GraphemeIdx: g} }

func startSearch(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	if !m.Searching() {
		t.Fatalf("expected search mode")
	}
	return m
}

func TestSearch_TypingFindsFromCaret(t *testing.T) {
	m := startSearch(t, newSized("foo bar\nbaz foo\nfoo", 80, 6))

	m, _ = m.Update(runes("baz"))
	if got := m.Caret(); got != loc(1, 0) {
		t.Fatalf("caret: got %v, want 1:0", got)
	}
	if got := m.search.Query(); got != "baz" {
		t.Fatalf("highlight query: got %q, want %q", got, "baz")
	}
	if sel, ok := m.search.Selected(); !ok || sel != loc(1, 0) {
		t.Fatalf("selected match: got %v (%v), want 1:0", sel, ok)
	}
	if got := m.renderMessage(); !strings.Contains(got, promptSearch) {
		t.Fatalf("message bar: got %q, want the search prompt", got)
	}
}

func TestSearch_NextAndPreviousWrap(t *testing.T) {
	m := startSearch(t, newSized("foo bar\nbaz foo\nfoo", 40, 6))
	m, _ = m.Update(runes("foo"))
	if got := m.Caret(); got != loc(0, 0) {
		t.Fatalf("first match: got %v, want 0:0", got)
	}

	for _, want := range []buffer.Location{loc(1, 4), loc(2, 0), loc(0, 0)} {
		m, _ = m.Update(press(tea.KeyDown))
		if got := m.Caret(); got != want {
			t.Fatalf("next: got %v, want %v", got, want)
		}
	}

	for _, want := range []buffer.Location{loc(2, 0), loc(1, 4)} {
		m, _ = m.Update(press(tea.KeyLeft))
		if got := m.Caret(); got != want {
			t.Fatalf("previous: got %v, want %v", got, want)
		}
	}

	if got := m.buf.Text(); got != "foo bar\nbaz foo\nfoo" {
		t.Fatalf("search edited the document: %q", got)
	}
}

func TestSearch_MissKeepsCaret(t *testing.T) {
	m := newSized("abc\ndef", 40, 6)
	m, _ = m.Update(press(tea.KeyDown))
	m = startSearch(t, m)

	m, _ = m.Update(runes("zzz"))
	if got := m.Caret(); got != loc(1, 0) {
		t.Fatalf("caret after miss: got %v, want 1:0", got)
	}
}

func TestSearch_DismissRestoresCaretAndScroll(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	lines[25] = "needle"
	m := newSized(strings.Join(lines, "\n"), 20, 7)
	m, _ = m.Update(press(tea.KeyRight))
	before := m.ViewportState()

	m = startSearch(t, m)
	m, _ = m.Update(runes("needle"))
	if got := m.Caret(); got != loc(25, 0) {
		t.Fatalf("caret at match: got %v, want 25:0", got)
	}
	if got := m.ViewportState().TopLine; got != 25-3 {
		t.Fatalf("match not centred: top line %d, want %d", got, 25-3)
	}

	m, _ = m.Update(press(tea.KeyEsc))
	if m.Searching() {
		t.Fatalf("still searching after dismiss")
	}
	if got := m.Caret(); got != loc(0, 1) {
		t.Fatalf("caret after dismiss: got %v, want 0:1", got)
	}
	if got := m.ViewportState(); got != before {
		t.Fatalf("viewport after dismiss: got %+v, want %+v", got, before)
	}
	if got := m.search.Query(); got != "" {
		t.Fatalf("query survived dismiss: %q", got)
	}
}

func TestSearch_ConfirmKeepsCaretAtMatch(t *testing.T) {
	m := startSearch(t, newSized("one\ntwo\nthree", 40, 6))
	m, _ = m.Update(runes("thr"))
	m, _ = m.Update(press(tea.KeyEnter))

	if m.Searching() {
		t.Fatalf("still searching after confirm")
	}
	if got := m.Caret(); got != loc(2, 0) {
		t.Fatalf("caret after confirm: got %v, want 2:0", got)
	}
	if got := m.search.Query(); got != "" {
		t.Fatalf("query survived confirm: %q", got)
	}

	// Back in edit mode: keys edit the document again.
	m, _ = m.Update(runes("x"))
	if got := m.buf.Text(); got != "one\ntwo\nxthree" {
		t.Fatalf("text after confirm: got %q", got)
	}
}

func TestSearch_GraphemeAwareNext(t *testing.T) {
	m := startSearch(t, newSized("e\u0301x e\u0301x", 40, 6))
	m, _ = m.Update(runes("e\u0301x"))
	if got := m.Caret(); got != loc(0, 0) {
		t.Fatalf("first match: got %v, want 0:0", got)
	}
	m, _ = m.Update(press(tea.KeyRight))
	if got := m.Caret(); got != loc(0, 3) {
		t.Fatalf("next match: got %v, want 0:3", got)
	}
}
