package buffer

import (
	"strings"

	"github.com/iw2rmb/quill/annotated"
	"github.com/iw2rmb/quill/internal/grapheme"
)

// ellipsis stands in for a wide cluster cut by the visible window.
const ellipsis = "⋯"

// Line is one line of text with its grapheme cluster table.
//
// Every exported mutator rebuilds the table before returning.
type Line struct {
	text     string
	clusters []grapheme.Cluster
}

// Match is one occurrence of a query inside a line.
type Match struct {
	Start    int // byte offset
	End      int // byte offset, exclusive
	Grapheme int // grapheme index of Start
}

func NewLine(text string) *Line {
	l := &Line{text: text}
	l.rebuild()
	return l
}

func (l *Line) rebuild() {
	l.clusters = grapheme.Clusters(l.text)
}

func (l *Line) String() string { return l.text }

// Len returns the byte length of the line.
func (l *Line) Len() int { return len(l.text) }

func (l *Line) GraphemeCount() int { return len(l.clusters) }

// Width returns the number of cells the whole line occupies.
func (l *Line) Width() int { return l.WidthUntil(len(l.clusters)) }

// WidthUntil returns the cells consumed by the first idx clusters.
func (l *Line) WidthUntil(idx int) int {
	idx = clampInt(idx, 0, len(l.clusters))
	w := 0
	for _, c := range l.clusters[:idx] {
		w += c.Width
	}
	return w
}

// ByteIndex returns the byte offset where cluster idx starts. Indices at or
// past the end map to the line length.
func (l *Line) ByteIndex(idx int) int {
	if idx <= 0 || len(l.clusters) == 0 {
		return 0
	}
	if idx >= len(l.clusters) {
		return len(l.text)
	}
	return l.clusters[idx].Start
}

// GraphemeIndex returns the cluster index starting exactly at byte offset off.
// The line length maps to GraphemeCount.
func (l *Line) GraphemeIndex(off int) (int, bool) {
	if off == len(l.text) {
		return len(l.clusters), true
	}
	lo, hi := 0, len(l.clusters)
	for lo < hi {
		mid := (lo + hi) / 2
		switch s := l.clusters[mid].Start; {
		case s == off:
			return mid, true
		case s < off:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// InsertChar inserts r before cluster at. Indices past the end append.
func (l *Line) InsertChar(r rune, at int) {
	off := l.ByteIndex(at)
	l.text = l.text[:off] + string(r) + l.text[off:]
	l.rebuild()
}

// Delete removes cluster at. Out-of-range indices are a no-op.
func (l *Line) Delete(at int) {
	if at < 0 || at >= len(l.clusters) {
		return
	}
	c := l.clusters[at]
	l.text = l.text[:c.Start] + l.text[c.End():]
	l.rebuild()
}

// Split truncates the line before cluster at and returns the remainder.
func (l *Line) Split(at int) *Line {
	off := l.ByteIndex(at)
	tail := NewLine(l.text[off:])
	l.text = l.text[:off]
	l.rebuild()
	return tail
}

// Append adds other's text to the end of the line.
func (l *Line) Append(other *Line) {
	if other == nil || other.text == "" {
		return
	}
	l.text += other.text
	l.rebuild()
}

// FindAll returns every non-overlapping literal occurrence of query that
// starts and ends on cluster boundaries within the byte window [start, end).
func (l *Line) FindAll(query string, start, end int) []Match {
	if query == "" {
		return nil
	}
	start = clampInt(start, 0, len(l.text))
	end = clampInt(end, start, len(l.text))

	var out []Match
	off := start
	for off+len(query) <= end {
		i := strings.Index(l.text[off:end], query)
		if i < 0 {
			break
		}
		mStart := off + i
		mEnd := mStart + len(query)
		g, startOK := l.GraphemeIndex(mStart)
		_, endOK := l.GraphemeIndex(mEnd)
		if startOK && endOK {
			out = append(out, Match{Start: mStart, End: mEnd, Grapheme: g})
			off = mEnd
			continue
		}
		off = l.nextBoundary(mStart)
	}
	return out
}

// floorBoundary returns the last cluster boundary at or before off.
func (l *Line) floorBoundary(off int) int {
	if off >= len(l.text) {
		return len(l.text)
	}
	b := 0
	for _, c := range l.clusters {
		if c.Start > off {
			break
		}
		b = c.Start
	}
	return b
}

// ceilBoundary returns the first cluster boundary at or after off.
func (l *Line) ceilBoundary(off int) int {
	if off <= 0 {
		return 0
	}
	return l.nextBoundary(off - 1)
}

// nextBoundary returns the first cluster start strictly after off.
func (l *Line) nextBoundary(off int) int {
	for _, c := range l.clusters {
		if c.Start > off {
			return c.Start
		}
	}
	return len(l.text)
}

// Search returns the grapheme index of the first match of query starting at
// or after cluster from.
func (l *Line) Search(query string, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from > len(l.clusters) {
		return 0, false
	}
	matches := l.FindAll(query, l.ByteIndex(from), len(l.text))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Grapheme, true
}

// SearchBackward returns the grapheme index of the last match of query that
// starts before cluster before.
func (l *Line) SearchBackward(query string, before int) (int, bool) {
	before = clampInt(before, 0, len(l.clusters))
	limit := l.ByteIndex(before)
	var (
		found int
		ok    bool
	)
	for _, m := range l.FindAll(query, 0, len(l.text)) {
		if m.Start >= limit {
			break
		}
		found, ok = m.Grapheme, true
	}
	return found, ok
}

// Overlay carries the spans layered over a line when it is rendered.
type Overlay struct {
	// Annotations are precomputed spans over the full line, e.g. highlighter
	// output. Byte offsets refer to String(); bounds inside a cluster widen to
	// the cluster's edges.
	Annotations []annotated.Annotation

	// Query, when non-empty, marks every occurrence as a match.
	Query string
	// Selected marks the occurrence of Query starting at cluster SelectedIdx as
	// the selected match.
	Selected    bool
	SelectedIdx int
}

// AnnotatedVisibleSubstr renders the cells [left, right) of the line.
//
// Overlay annotations and query matches are placed on the full text first and
// the text is then cut down to the window, so every span is repaired by the
// same replace path. Clusters with a replacement glyph are drawn as that glyph;
// wide clusters cut by either edge become an ellipsis.
func (l *Line) AnnotatedVisibleSubstr(left, right int, ov Overlay) *annotated.String {
	if left < 0 {
		left = 0
	}
	if right <= left {
		return annotated.New("")
	}

	out := annotated.New(l.text)
	for _, a := range ov.Annotations {
		out.Add(a.Kind, l.floorBoundary(a.Start), l.ceilBoundary(a.End))
	}
	if ov.Query != "" {
		for _, m := range l.FindAll(ov.Query, 0, len(l.text)) {
			kind := annotated.KindMatch
			if ov.Selected && m.Grapheme == ov.SelectedIdx {
				kind = annotated.KindSelectedMatch
			}
			out.Add(kind, m.Start, m.End)
		}
	}

	// Walk right to left so earlier byte offsets stay valid.
	cellEnd := l.Width()
	for i := len(l.clusters) - 1; i >= 0; i-- {
		c := l.clusters[i]
		cellStart := cellEnd - c.Width
		clusterEnd := cellEnd
		cellEnd = cellStart

		switch {
		case cellStart >= right:
			out.Replace(c.Start, out.Len(), "")
			continue
		case clusterEnd > right:
			out.Replace(c.Start, out.Len(), ellipsis)
			continue
		}

		if clusterEnd <= left {
			out.Replace(0, c.End(), "")
			break
		}
		if cellStart < left {
			// Drop the prefix first so no span bound can land inside the
			// glyph that replaces the cut cluster.
			out.Replace(0, c.Start, "")
			out.Replace(0, len(c.Text), ellipsis)
			break
		}

		if c.Replacement != 0 {
			out.Replace(c.Start, c.End(), string(c.Replacement))
		}
	}
	return out
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
