package editor

import "github.com/iw2rmb/quill/buffer"

// ChangeEvent reports the document state after an update that edited the
// text or moved the caret.
type ChangeEvent struct {
	Version uint64
	Caret   buffer.Location
	Dirty   bool
	Lines   int

	// Full text; hosts can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer, caret buffer.Location) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Caret:   caret,
		Dirty:   b.IsDirty(),
		Lines:   b.Height(),
		Text:    b.Text(),
	}
}
