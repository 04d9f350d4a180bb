package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Save, Find, Quit key.Binding

	// Prompt bindings, active while searching or naming a file.
	SearchNext, SearchPrev key.Binding
	Confirm, Cancel        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Find: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		SearchNext: key.NewBinding(key.WithKeys("right", "down"), key.WithHelp("→/↓", "next match")),
		SearchPrev: key.NewBinding(key.WithKeys("left", "up"), key.WithHelp("←/↑", "previous match")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// move maps a key to a caret movement.
func (km KeyMap) move(msg tea.KeyMsg) (buffer.Move, bool) {
	switch {
	case key.Matches(msg, km.Up):
		return buffer.MoveUp, true
	case key.Matches(msg, km.Down):
		return buffer.MoveDown, true
	case key.Matches(msg, km.Left):
		return buffer.MoveLeft, true
	case key.Matches(msg, km.Right):
		return buffer.MoveRight, true
	case key.Matches(msg, km.PageUp):
		return buffer.MovePageUp, true
	case key.Matches(msg, km.PageDown):
		return buffer.MovePageDown, true
	case key.Matches(msg, km.Home):
		return buffer.MoveStartOfLine, true
	case key.Matches(msg, km.End):
		return buffer.MoveEndOfLine, true
	default:
		return 0, false
	}
}

// edit maps a key to edit commands. Typed and pasted runes become one Insert
// each; '\n' becomes a line break and '\r' is dropped.
func (km KeyMap) edit(msg tea.KeyMsg) []buffer.Edit {
	switch {
	case key.Matches(msg, km.Backspace):
		return []buffer.Edit{{Kind: buffer.EditDeleteBackward}}
	case key.Matches(msg, km.Delete):
		return []buffer.Edit{{Kind: buffer.EditDelete}}
	case key.Matches(msg, km.Enter):
		return []buffer.Edit{{Kind: buffer.EditInsertNewline}}
	case key.Matches(msg, km.Tab):
		return []buffer.Edit{buffer.Insert('\t')}
	}

	if msg.Type == tea.KeySpace {
		return []buffer.Edit{buffer.Insert(' ')}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	edits := make([]buffer.Edit, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		switch r {
		case '\r':
		case '\n':
			edits = append(edits, buffer.Edit{Kind: buffer.EditInsertNewline})
		default:
			edits = append(edits, buffer.Insert(r))
		}
	}
	return edits
}
