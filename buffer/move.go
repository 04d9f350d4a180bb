package buffer

// Move is an abstract caret movement command.
type Move uint8

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveStartOfLine
	MoveEndOfLine
)

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MovePageUp:
		return "page-up"
	case MovePageDown:
		return "page-down"
	case MoveStartOfLine:
		return "start-of-line"
	case MoveEndOfLine:
		return "end-of-line"
	default:
		return "unknown"
	}
}

// Move returns the caret location after applying m at from. page is the
// number of rows a page movement crosses.
//
// Left and Right wrap across line ends. Vertical moves keep the grapheme
// index where the target line is long enough and snap to its end otherwise;
// the caret may rest on the row just past the last line.
func (b *Buffer) Move(from Location, m Move, page int) Location {
	loc := b.ClampLocation(from)
	switch m {
	case MoveUp:
		return b.moveVertical(loc, -1)
	case MoveDown:
		return b.moveVertical(loc, 1)
	case MovePageUp:
		return b.moveVertical(loc, -max(page-1, 1))
	case MovePageDown:
		return b.moveVertical(loc, max(page-1, 1))
	case MoveLeft:
		if loc.GraphemeIdx > 0 {
			loc.GraphemeIdx--
			return loc
		}
		if loc.LineIdx > 0 {
			prev := loc.LineIdx - 1
			return Location{LineIdx: prev, GraphemeIdx: b.GraphemeCount(prev)}
		}
		return loc
	case MoveRight:
		if loc.GraphemeIdx < b.GraphemeCount(loc.LineIdx) {
			loc.GraphemeIdx++
			return loc
		}
		if loc.LineIdx < len(b.lines) {
			return Location{LineIdx: loc.LineIdx + 1}
		}
		return loc
	case MoveStartOfLine:
		loc.GraphemeIdx = 0
		return loc
	case MoveEndOfLine:
		loc.GraphemeIdx = b.GraphemeCount(loc.LineIdx)
		return loc
	default:
		return loc
	}
}

func (b *Buffer) moveVertical(loc Location, delta int) Location {
	loc.LineIdx = clampInt(loc.LineIdx+delta, 0, len(b.lines))
	loc.GraphemeIdx = min(loc.GraphemeIdx, b.GraphemeCount(loc.LineIdx))
	return loc
}
