package annotated

import "sort"

// Annotation labels the half-open byte range [Start, End) of a text.
type Annotation struct {
	Kind  Kind
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (a Annotation) Len() int {
	if a.End < a.Start {
		return 0
	}
	return a.End - a.Start
}

// Shift moves the annotation right by offset bytes.
func (a Annotation) Shift(offset int) Annotation {
	a.Start += offset
	a.End += offset
	return a
}

// Resolve partitions annots into non-overlapping spans over [0, textLen).
//
// Where spans overlap, the one with the higher Kind precedence wins and the
// others are cut at its boundaries. Equal precedence favours the span that
// appears first in annots. Empty and out-of-range spans are clamped away.
// The result is sorted by Start; adjacent pieces of the same source span are
// merged back together.
func Resolve(annots []Annotation, textLen int) []Annotation {
	if len(annots) == 0 || textLen <= 0 {
		return nil
	}

	type span struct {
		Annotation
		order int
	}
	spans := make([]span, 0, len(annots))
	bounds := make([]int, 0, 2*len(annots))
	for i, a := range annots {
		start := clampInt(a.Start, 0, textLen)
		end := clampInt(a.End, 0, textLen)
		if end <= start || a.Kind == KindNone {
			continue
		}
		spans = append(spans, span{Annotation: Annotation{Kind: a.Kind, Start: start, End: end}, order: i})
		bounds = append(bounds, start, end)
	}
	if len(spans) == 0 {
		return nil
	}
	sort.Ints(bounds)
	bounds = dedupInts(bounds)

	out := make([]Annotation, 0, len(spans))
	lastOrder := -1
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		winner := -1
		for j, sp := range spans {
			if sp.Start > lo || sp.End < hi {
				continue
			}
			if winner == -1 {
				winner = j
				continue
			}
			w := spans[winner]
			if sp.Kind.Precedence() > w.Kind.Precedence() ||
				(sp.Kind.Precedence() == w.Kind.Precedence() && sp.order < w.order) {
				winner = j
			}
		}
		if winner == -1 {
			lastOrder = -1
			continue
		}
		w := spans[winner]
		if n := len(out); n > 0 && lastOrder == w.order && out[n-1].End == lo {
			out[n-1].End = hi
			continue
		}
		out = append(out, Annotation{Kind: w.Kind, Start: lo, End: hi})
		lastOrder = w.order
	}
	return out
}

func dedupInts(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
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
