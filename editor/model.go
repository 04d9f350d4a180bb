package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/highlight"
)

type mode uint8

const (
	modeEdit mode = iota
	modeSearch
	modeSaveAs
)

// position is a cell coordinate: row is a line index, col a display column.
type position struct {
	row, col int
}

// Model is a Bubble Tea component that renders and edits one document.
//
// The bottom two rows hold the status bar and the message bar; the rest is
// the text area.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	width, height int

	caret  buffer.Location
	scroll position

	syntax *highlight.Syntax
	search *highlight.Search

	mode   mode
	prompt textinput.Model
	saved  searchSnapshot

	message   string
	messageAt time.Time

	quitPending bool

	lastVersion uint64
	lastCaret   buffer.Location
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	prompt := textinput.New()
	prompt.Prompt = ""

	m := Model{
		cfg:    cfg,
		prompt: prompt,
	}
	return m.Open(buffer.FromText(cfg.Text))
}

// Open replaces the document and resets caret, scroll and search state.
func (m Model) Open(b *buffer.Buffer) Model {
	if b == nil {
		b = buffer.New()
	}
	b.TakeStale()
	m.buf = b
	m.caret = buffer.Location{}
	m.scroll = position{}
	m.syntax = syntaxFor(b.FileInfo().FileType())
	m.search = highlight.NewSearch()
	m.mode = modeEdit
	m.prompt.Blur()
	m.quitPending = false
	m.lastVersion = b.Version()
	m.lastCaret = m.caret
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Caret() buffer.Location { return m.caret }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.prompt.Width = width
	m.scrollIntoView()
	return m
}

// SetMessage shows msg in the message bar until it times out.
func (m Model) SetMessage(msg string) Model {
	m.setMessage(msg)
	return m
}

func (m *Model) setMessage(msg string) {
	m.message = msg
	m.messageAt = m.cfg.Now()
}

// Searching reports whether the search prompt is open.
func (m Model) Searching() bool { return m.mode == modeSearch }

// Prompting reports whether the save-as prompt is open.
func (m Model) Prompting() bool { return m.mode == modeSaveAs }

// textHeight is the number of rows available for document lines.
func (m Model) textHeight() int {
	return max(m.height-2, 0)
}

func syntaxFor(t buffer.FileType) *highlight.Syntax {
	lang, ok := highlight.LanguageFor(t)
	if !ok {
		return nil
	}
	return highlight.NewSyntax(lang)
}
