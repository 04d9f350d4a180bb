package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopLine is the document line rendered at text row 0.
	TopLine int
	// LeftCell is the first display column rendered.
	LeftCell int
	// VisibleRows is the number of text rows, excluding the status and
	// message bars.
	VisibleRows int
	VisibleCols int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopLine:     m.scroll.row,
		LeftCell:    m.scroll.col,
		VisibleRows: m.textHeight(),
		VisibleCols: m.width,
	}
}

// CaretScreen maps the caret to screen coordinates relative to the text area.
//
// ok is false when the caret is outside the visible area.
func (m Model) CaretScreen() (x, y int, ok bool) {
	x = m.caretCell() - m.scroll.col
	y = m.caret.LineIdx - m.scroll.row
	if x < 0 || x >= m.width || y < 0 || y >= m.textHeight() {
		return 0, 0, false
	}
	return x, y, true
}
