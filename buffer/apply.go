package buffer

// EditKind selects an abstract edit command.
type EditKind uint8

const (
	EditInsert EditKind = iota
	EditInsertNewline
	EditDelete
	EditDeleteBackward
)

// Edit is an abstract edit command. Char is used by EditInsert only.
type Edit struct {
	Kind EditKind
	Char rune
}

func Insert(r rune) Edit { return Edit{Kind: EditInsert, Char: r} }

// Apply performs e at the caret location at and returns the caret location
// afterwards.
//
// Insert moves the caret right only when the line gained a grapheme, so a
// combining mark joining the previous cluster leaves the caret in place.
// DeleteBackward at the document start is a no-op.
func (b *Buffer) Apply(e Edit, at Location) Location {
	at = b.ClampLocation(at)
	switch e.Kind {
	case EditInsert:
		before := b.GraphemeCount(at.LineIdx)
		b.InsertChar(e.Char, at)
		if b.GraphemeCount(at.LineIdx) > before {
			return b.Move(at, MoveRight, 0)
		}
		return at
	case EditInsertNewline:
		b.InsertNewline(at)
		return b.Move(at, MoveRight, 0)
	case EditDelete:
		b.Delete(at)
		return at
	case EditDeleteBackward:
		if at.LineIdx == 0 && at.GraphemeIdx == 0 {
			return at
		}
		at = b.Move(at, MoveLeft, 0)
		b.Delete(at)
		return at
	default:
		return at
	}
}
