package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/annotated"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/highlight"
	"github.com/iw2rmb/quill/internal/grapheme"
)

const tilde = "~"

// View renders the text area followed by the status bar and the message bar.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderText()...)
	if m.height >= 2 {
		rows = append(rows, m.renderStatus())
	}
	rows = append(rows, m.renderMessage())
	return strings.Join(rows, "\n")
}

func (m Model) renderText() []string {
	th := m.textHeight()
	rows := make([]string, 0, th)
	welcomeRow := -1
	if m.cfg.ShowWelcome && m.buf.IsEmpty() {
		welcomeRow = th / 3
	}

	for y := range th {
		idx := m.scroll.row + y
		if line, ok := m.buf.Line(idx); ok {
			rows = append(rows, m.renderLine(idx, line))
			continue
		}
		if y == welcomeRow {
			rows = append(rows, m.renderWelcome())
			continue
		}
		st := m.cfg.Style.Tilde
		if m.caretVisible() && idx == m.caret.LineIdx {
			st = m.cfg.Style.Cursor.Inherit(st)
		}
		rows = append(rows, st.Render(tilde))
	}
	return rows
}

func (m Model) renderWelcome() string {
	banner := m.cfg.Banner
	if banner == "" || lipgloss.Width(banner)+1 >= m.width {
		return m.cfg.Style.Tilde.Render(tilde)
	}
	rest := lipgloss.PlaceHorizontal(m.width-1, lipgloss.Center, m.cfg.Style.Welcome.Render(banner))
	return m.cfg.Style.Tilde.Render(tilde) + rest
}

// lineAnnotations collects the spans of every active highlighter for line idx.
func (m Model) lineAnnotations(idx int, line *buffer.Line) []annotated.Annotation {
	var out []annotated.Annotation
	for _, h := range m.highlighters() {
		out = append(out, highlight.Lookup(h, idx, line)...)
	}
	return out
}

func (m Model) renderLine(idx int, line *buffer.Line) string {
	visible := line.AnnotatedVisibleSubstr(m.scroll.col, m.scroll.col+m.width, buffer.Overlay{
		Annotations: m.lineAnnotations(idx, line),
	})

	caretX := -1
	if m.caretVisible() && idx == m.caret.LineIdx {
		caretX = line.WidthUntil(m.caret.GraphemeIdx) - m.scroll.col
	}

	var sb strings.Builder
	cell := 0
	drawn := false
	for p := range visible.Parts() {
		st := m.cfg.Style.ForKind(p.Kind)
		clusters := grapheme.Clusters(p.Text)
		w := 0
		for _, c := range clusters {
			w += c.Width
		}
		if drawn || caretX < cell || caretX >= cell+w {
			sb.WriteString(st.Render(p.Text))
			cell += w
			continue
		}
		for _, c := range clusters {
			if !drawn && cell == caretX {
				sb.WriteString(m.cfg.Style.Cursor.Inherit(st).Render(c.Text))
				drawn = true
			} else {
				sb.WriteString(st.Render(c.Text))
			}
			cell += c.Width
		}
	}
	if !drawn && caretX >= cell && caretX < m.width {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}

// caretVisible reports whether the text caret is drawn. Prompts draw their
// own cursor.
func (m Model) caretVisible() bool {
	return m.mode == modeEdit
}
