package highlight

import (
	"github.com/iw2rmb/quill/annotated"
	"github.com/iw2rmb/quill/buffer"
)

// Search marks every occurrence of the active query, and the selected
// occurrence on top of it.
type Search struct {
	query    string
	selected buffer.Location
	hasSel   bool
	cache    *cache
}

func NewSearch() *Search {
	return &Search{cache: newCache()}
}

// Set changes the query and the selected match. A nil selected clears the
// selection. Cached spans are dropped when either changes.
func (s *Search) Set(query string, selected *buffer.Location) {
	hasSel := selected != nil
	var sel buffer.Location
	if hasSel {
		sel = *selected
	}
	if query == s.query && hasSel == s.hasSel && sel == s.selected {
		return
	}
	s.query, s.selected, s.hasSel = query, sel, hasSel
	s.cache.clear()
}

// Query returns the active query.
func (s *Search) Query() string { return s.query }

// Selected returns the selected match location.
func (s *Search) Selected() (buffer.Location, bool) { return s.selected, s.hasSel }

func (s *Search) Highlight(idx int, line *buffer.Line) {
	var result []annotated.Annotation
	if s.query != "" {
		for _, m := range line.FindAll(s.query, 0, line.Len()) {
			kind := annotated.KindMatch
			if s.hasSel && s.selected.LineIdx == idx && s.selected.GraphemeIdx == m.Grapheme {
				kind = annotated.KindSelectedMatch
			}
			result = append(result, annotated.Annotation{Kind: kind, Start: m.Start, End: m.End})
		}
	}
	s.cache.put(idx, result)
}

func (s *Search) Annotations(idx int) ([]annotated.Annotation, bool) {
	return s.cache.get(idx)
}

func (s *Search) Invalidate(idx int) { s.cache.remove(idx) }

func (s *Search) InvalidateFrom(idx int) { s.cache.removeFrom(idx) }
