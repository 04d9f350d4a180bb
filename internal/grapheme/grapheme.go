package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster of a line together with its layout data.
type Cluster struct {
	// Text is the raw cluster as stored in the line.
	Text string
	// Start is the byte offset of Text within the line.
	Start int
	// Width is the number of terminal cells the cluster occupies when rendered.
	Width int
	// Replacement, when non-zero, is drawn instead of Text.
	Replacement rune
}

// End returns the byte offset just past the cluster.
func (c Cluster) End() int { return c.Start + len(c.Text) }

// Clusters builds the cluster table for text.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	for g.Next() {
		s := g.Str()
		start, _ := g.Positions()
		repl := replacementFor(s)
		w := CellWidth(s)
		if repl != 0 {
			w = 1
		}
		out = append(out, Cluster{
			Text:        s,
			Start:       start,
			Width:       w,
			Replacement: repl,
		})
	}
	return out
}

// CellWidth returns the terminal cell width of a single cluster.
func CellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	if w > 2 {
		w = 2
	}
	return w
}

func replacementFor(cluster string) rune {
	switch {
	case cluster == " ":
		return 0
	case cluster == "\t":
		return ' '
	}
	w := runewidth.StringWidth(cluster)
	if w > 0 && IsSpace(cluster) {
		return '␣'
	}
	if w == 0 {
		runes := []rune(cluster)
		if len(runes) == 1 && unicode.IsControl(runes[0]) {
			return '▯'
		}
		return '·'
	}
	return 0
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
