package buffer

import "github.com/iw2rmb/quill/internal/log"

// Search finds the first occurrence of query at or after from, wrapping
// around the end of the document.
//
// Lines after from are scanned first, then lines from 0 up to from, and
// finally the part of from's own line before the caret. Every line is
// visited at most once per call.
func (b *Buffer) Search(query string, from Location) (Location, bool) {
	if query == "" || len(b.lines) == 0 {
		return Location{}, false
	}
	from = b.ClampLocation(from)
	if from.LineIdx >= len(b.lines) {
		from = Location{}
	}

	for idx := from.LineIdx; idx < len(b.lines); idx++ {
		start := 0
		if idx == from.LineIdx {
			start = from.GraphemeIdx
		}
		if g, ok := b.lines[idx].Search(query, start); ok {
			return Location{LineIdx: idx, GraphemeIdx: g}, true
		}
	}

	for idx := 0; idx < from.LineIdx; idx++ {
		if g, ok := b.lines[idx].Search(query, 0); ok {
			log.Debug(log.CatSearch, "search wrapped", "query", query, "from", from)
			return Location{LineIdx: idx, GraphemeIdx: g}, true
		}
	}

	if g, ok := b.lines[from.LineIdx].Search(query, 0); ok && g < from.GraphemeIdx {
		log.Debug(log.CatSearch, "search wrapped", "query", query, "from", from)
		return Location{LineIdx: from.LineIdx, GraphemeIdx: g}, true
	}

	log.Debug(log.CatSearch, "no match", "query", query)
	return Location{}, false
}

// SearchBackward finds the last occurrence of query starting before from,
// wrapping around the start of the document.
func (b *Buffer) SearchBackward(query string, from Location) (Location, bool) {
	if query == "" || len(b.lines) == 0 {
		return Location{}, false
	}
	from = b.ClampLocation(from)
	if from.LineIdx >= len(b.lines) {
		last := len(b.lines) - 1
		from = Location{LineIdx: last, GraphemeIdx: b.lines[last].GraphemeCount()}
	}

	for idx := from.LineIdx; idx >= 0; idx-- {
		before := b.lines[idx].GraphemeCount()
		if idx == from.LineIdx {
			before = from.GraphemeIdx
		}
		if g, ok := b.lines[idx].SearchBackward(query, before); ok {
			return Location{LineIdx: idx, GraphemeIdx: g}, true
		}
	}

	for idx := len(b.lines) - 1; idx > from.LineIdx; idx-- {
		if g, ok := b.lines[idx].SearchBackward(query, b.lines[idx].GraphemeCount()); ok {
			log.Debug(log.CatSearch, "search wrapped", "query", query, "from", from)
			return Location{LineIdx: idx, GraphemeIdx: g}, true
		}
	}

	if g, ok := b.lines[from.LineIdx].SearchBackward(query, b.lines[from.LineIdx].GraphemeCount()); ok && g >= from.GraphemeIdx {
		log.Debug(log.CatSearch, "search wrapped", "query", query, "from", from)
		return Location{LineIdx: from.LineIdx, GraphemeIdx: g}, true
	}

	log.Debug(log.CatSearch, "no match", "query", query)
	return Location{}, false
}
