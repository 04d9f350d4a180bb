package buffer

// InsertChar inserts r at loc.
//
// At LineIdx == Height a new line holding r is appended; past that the call
// is a no-op.
func (b *Buffer) InsertChar(r rune, at Location) {
	switch {
	case at.LineIdx < 0 || at.LineIdx > len(b.lines):
		return
	case at.LineIdx == len(b.lines):
		b.lines = append(b.lines, NewLine(string(r)))
		b.touchFrom(at.LineIdx)
	default:
		b.lines[at.LineIdx].InsertChar(r, at.GraphemeIdx)
		b.touchLine(at.LineIdx)
	}
}

// Delete removes the grapheme at loc. At the end of a line that has a
// successor, the next line is joined onto this one.
func (b *Buffer) Delete(at Location) {
	line, ok := b.Line(at.LineIdx)
	if !ok || at.GraphemeIdx < 0 {
		return
	}

	switch {
	case at.GraphemeIdx >= line.GraphemeCount() && at.LineIdx+1 < len(b.lines):
		next := b.lines[at.LineIdx+1]
		b.lines = append(b.lines[:at.LineIdx+1], b.lines[at.LineIdx+2:]...)
		line.Append(next)
		b.touchFrom(at.LineIdx)
	case at.GraphemeIdx < line.GraphemeCount():
		line.Delete(at.GraphemeIdx)
		b.touchLine(at.LineIdx)
	}
}

// InsertNewline splits the line at loc, moving the tail onto a new line
// right after it. At LineIdx == Height an empty line is appended.
func (b *Buffer) InsertNewline(at Location) {
	switch {
	case at.LineIdx < 0 || at.LineIdx > len(b.lines):
		return
	case at.LineIdx == len(b.lines):
		b.lines = append(b.lines, NewLine(""))
		b.touchFrom(at.LineIdx)
	default:
		tail := b.lines[at.LineIdx].Split(at.GraphemeIdx)
		b.lines = append(b.lines, nil)
		copy(b.lines[at.LineIdx+2:], b.lines[at.LineIdx+1:])
		b.lines[at.LineIdx+1] = tail
		b.touchFrom(at.LineIdx)
	}
}
