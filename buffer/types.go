package buffer

import "fmt"

// Location addresses a caret position by (line, grapheme) index.
type Location struct {
	LineIdx     int
	GraphemeIdx int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.LineIdx, l.GraphemeIdx)
}

func CompareLocation(a, b Location) int {
	if a.LineIdx < b.LineIdx {
		return -1
	}
	if a.LineIdx > b.LineIdx {
		return 1
	}
	if a.GraphemeIdx < b.GraphemeIdx {
		return -1
	}
	if a.GraphemeIdx > b.GraphemeIdx {
		return 1
	}
	return 0
}

// ClampLocation clamps loc into document bounds described by height and
// graphemeCount.
//
// LineIdx may equal height (the caret row past the last line); GraphemeIdx is
// clamped to the addressed line's grapheme count, or 0 past the last line.
func ClampLocation(loc Location, height int, graphemeCount func(line int) int) Location {
	if height < 0 {
		height = 0
	}
	line := clampInt(loc.LineIdx, 0, height)

	maxCol := 0
	if line < height && graphemeCount != nil {
		maxCol = max(graphemeCount(line), 0)
	}
	return Location{LineIdx: line, GraphemeIdx: clampInt(loc.GraphemeIdx, 0, maxCol)}
}
