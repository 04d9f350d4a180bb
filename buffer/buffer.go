package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iw2rmb/quill/internal/log"
)

// ErrNoFileName is returned by Save when the buffer has no file identity.
var ErrNoFileName = errors.New("buffer has no file name")

// Buffer is the document: an ordered list of lines, its file identity and a
// dirty flag that is set by every effective edit and cleared by a successful
// save.
type Buffer struct {
	lines   []*Line
	file    FileInfo
	dirty   bool
	version uint64
	stale   staleTracker
}

// New returns an empty, unnamed buffer.
func New() *Buffer {
	return &Buffer{stale: newStaleTracker()}
}

// FromText builds an unnamed buffer from text split into lines.
func FromText(text string) *Buffer {
	b := New()
	for _, s := range splitLines(text) {
		b.lines = append(b.lines, NewLine(s))
	}
	return b
}

// Load reads path into a new buffer. The returned buffer is clean.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	b := FromText(string(data))
	b.file = NewFileInfo(path)
	log.Debug(log.CatFile, "loaded file", "path", path, "lines", len(b.lines))
	return b, nil
}

// splitLines splits on '\n', drops a trailing '\r' from each line and does
// not produce an empty last line for a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// Save writes the buffer to its file.
func (b *Buffer) Save() error {
	if !b.file.HasPath() {
		return ErrNoFileName
	}
	if err := b.writeTo(b.file.Path()); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// SaveAs writes the buffer to path and adopts path as its identity once the
// write succeeded.
func (b *Buffer) SaveAs(path string) error {
	if err := b.writeTo(path); err != nil {
		return err
	}
	b.file = NewFileInfo(path)
	b.dirty = false
	return nil
}

func (b *Buffer) writeTo(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("saving %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, l := range b.lines {
		if _, err := w.WriteString(l.String()); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	log.Debug(log.CatFile, "saved file", "path", path, "lines", len(b.lines))
	return nil
}

// Text returns the document joined with '\n' and no trailing newline.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Lines returns the text of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, len(b.lines))
	for _, l := range b.lines {
		out = append(out, l.String())
	}
	return out
}

// Line returns line idx.
func (b *Buffer) Line(idx int) (*Line, bool) {
	if idx < 0 || idx >= len(b.lines) {
		return nil, false
	}
	return b.lines[idx], true
}

// GraphemeCount returns the grapheme count of line idx, or 0 past the end.
func (b *Buffer) GraphemeCount(idx int) int {
	if l, ok := b.Line(idx); ok {
		return l.GraphemeCount()
	}
	return 0
}

func (b *Buffer) IsEmpty() bool { return len(b.lines) == 0 }

// Height returns the number of lines.
func (b *Buffer) Height() int { return len(b.lines) }

func (b *Buffer) IsDirty() bool { return b.dirty }

func (b *Buffer) IsFileLoaded() bool { return b.file.HasPath() }

func (b *Buffer) FileInfo() FileInfo { return b.file }

// Version increases on every effective edit.
func (b *Buffer) Version() uint64 { return b.version }

// TakeStale returns and clears the lines changed since the previous call.
func (b *Buffer) TakeStale() Stale { return b.stale.take() }

// ClampLocation clamps loc into the document.
func (b *Buffer) ClampLocation(loc Location) Location {
	return ClampLocation(loc, len(b.lines), b.GraphemeCount)
}

func (b *Buffer) touchLine(idx int) {
	b.dirty = true
	b.version++
	b.stale.markLine(idx)
}

func (b *Buffer) touchFrom(idx int) {
	b.dirty = true
	b.version++
	b.stale.markFrom(idx)
}
