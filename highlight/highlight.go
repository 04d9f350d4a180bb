// Package highlight computes per-line annotation spans for rendering.
//
// A Highlighter owns a cache keyed by line index. The rendering layer asks for
// a line's annotations and triggers Highlight only on a cache miss; edits are
// reported through Invalidate and InvalidateFrom so recomputation stays lazy.
// Highlighters never read the buffer on their own and never see each other's
// spans: composition happens at render time through annotated precedence.
package highlight

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iw2rmb/quill/annotated"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/log"
)

// Highlighter produces annotation spans per line.
type Highlighter interface {
	// Highlight computes and caches the spans for line idx.
	Highlight(idx int, line *buffer.Line)
	// Annotations returns what the last Highlight call for idx computed.
	Annotations(idx int) ([]annotated.Annotation, bool)
	// Invalidate drops the cached spans of line idx.
	Invalidate(idx int)
	// InvalidateFrom drops the cached spans of every line at or after idx.
	InvalidateFrom(idx int)
}

// Lookup returns the spans of line idx, highlighting it first on a miss.
func Lookup(h Highlighter, idx int, line *buffer.Line) []annotated.Annotation {
	if h == nil || line == nil {
		return nil
	}
	if annots, ok := h.Annotations(idx); ok {
		return annots
	}
	h.Highlight(idx, line)
	annots, _ := h.Annotations(idx)
	return annots
}

// ApplyStale forwards a buffer's stale set to every highlighter.
func ApplyStale(s buffer.Stale, hs ...Highlighter) {
	if s.IsZero() {
		return
	}
	for _, h := range hs {
		if h == nil {
			continue
		}
		for _, idx := range s.Lines {
			h.Invalidate(idx)
		}
		if s.From >= 0 {
			h.InvalidateFrom(s.From)
		}
	}
	log.Debug(log.CatHighlight, "invalidated", "lines", len(s.Lines), "from", s.From)
}

// cache is an ordered line index -> spans map. Ordering makes InvalidateFrom
// a walk over the tail instead of a scan of every cached line.
type cache struct {
	tree *redblacktree.Tree
}

func newCache() *cache {
	return &cache{tree: redblacktree.NewWithIntComparator()}
}

func (c *cache) put(idx int, annots []annotated.Annotation) {
	c.tree.Put(idx, annots)
}

func (c *cache) get(idx int) ([]annotated.Annotation, bool) {
	v, ok := c.tree.Get(idx)
	if !ok {
		return nil, false
	}
	return v.([]annotated.Annotation), true
}

func (c *cache) remove(idx int) {
	c.tree.Remove(idx)
}

func (c *cache) removeFrom(idx int) {
	for {
		node, ok := c.tree.Ceiling(idx)
		if !ok {
			return
		}
		c.tree.Remove(node.Key)
	}
}

func (c *cache) clear() {
	c.tree.Clear()
}

func (c *cache) size() int {
	return c.tree.Size()
}
