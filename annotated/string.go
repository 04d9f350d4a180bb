package annotated

import (
	"iter"
	"strings"
)

// String is a text payload plus labeled byte spans over it.
//
// Annotations are stored by value and may overlap; overlap is resolved only
// when Parts is iterated.
type String struct {
	text   string
	annots []Annotation
}

// Part is one contiguous piece of a String, either annotated or plain.
type Part struct {
	Text string
	Kind Kind
}

// Annotated reports whether the part carries an annotation.
func (p Part) Annotated() bool { return p.Kind != KindNone }

func New(text string) *String {
	return &String{text: text}
}

func (s *String) Text() string { return s.text }

func (s *String) Len() int { return len(s.text) }

// Annotations returns a copy of the stored annotations in insertion order.
func (s *String) Annotations() []Annotation {
	return append([]Annotation(nil), s.annots...)
}

// Add stores an annotation over [start, end). Inverted ranges are ignored.
func (s *String) Add(kind Kind, start, end int) {
	if start > end {
		return
	}
	s.annots = append(s.annots, Annotation{Kind: kind, Start: start, End: end})
}

// AddAll stores every annotation in annots.
func (s *String) AddAll(annots []Annotation) {
	for _, a := range annots {
		s.Add(a.Kind, a.Start, a.End)
	}
}

// Replace swaps the bytes in [start, end) for text and repairs every stored
// annotation.
//
// end is clamped to the current length; an inverted range is a no-op.
// Annotation bounds before the edit are unchanged, bounds after it shift by
// the length delta, and bounds inside the replaced range are clamped into the
// inserted text. No annotation is left with Start > End or past the new length.
func (s *String) Replace(start, end int, text string) {
	if start < 0 {
		start = 0
	}
	if end > len(s.text) {
		end = len(s.text)
	}
	if start > end {
		return
	}

	s.text = s.text[:start] + text + s.text[end:]

	newLen := len(s.text)
	for i := range s.annots {
		a := &s.annots[i]
		a.Start = clampInt(repairStart(a.Start, start, end, len(text)), 0, newLen)
		a.End = clampInt(repairEnd(a.End, start, end, len(text)), 0, newLen)
		if a.Start > a.End {
			a.Start = a.End
		}
	}
}

// repairStart maps an annotation start: a span beginning exactly at an
// insertion point moves right with the inserted text.
func repairStart(off, start, end, inserted int) int {
	switch {
	case off >= end:
		return off + inserted - (end - start)
	case off <= start:
		return off
	default:
		return start + min(off-start, inserted)
	}
}

// repairEnd maps an annotation end: a span ending exactly at an insertion
// point does not grow.
func repairEnd(off, start, end, inserted int) int {
	switch {
	case off <= start:
		return off
	case off >= end:
		return off + inserted - (end - start)
	default:
		return start + min(off-start, inserted)
	}
}

// Parts yields contiguous pieces covering the whole text, left to right, with
// overlapping annotations resolved by precedence. Each call starts over.
func (s *String) Parts() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		pos := 0
		for _, a := range Resolve(s.annots, len(s.text)) {
			if a.Start > pos {
				if !yield(Part{Text: s.text[pos:a.Start]}) {
					return
				}
			}
			if !yield(Part{Text: s.text[a.Start:a.End], Kind: a.Kind}) {
				return
			}
			pos = a.End
		}
		if pos < len(s.text) {
			yield(Part{Text: s.text[pos:]})
		}
	}
}

func (s *String) String() string {
	var sb strings.Builder
	for p := range s.Parts() {
		if p.Annotated() {
			sb.WriteString("[" + p.Kind.String() + ":" + p.Text + "]")
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
