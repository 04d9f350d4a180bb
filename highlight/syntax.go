package highlight

import (
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/quill/annotated"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/log"
)

// Syntax is a token-pattern highlighter over a fixed Language vocabulary.
//
// Each line is split at UAX #29 word boundaries. At every word the checks run
// in order (character literal, lifetime, number, keyword, type, known value)
// and the first one that matches wins; words covered by a match are skipped.
type Syntax struct {
	lang  Language
	vocab vocabulary
	cache *cache
}

func NewSyntax(lang Language) *Syntax {
	return &Syntax{lang: lang, vocab: newVocabulary(lang), cache: newCache()}
}

// Language returns the vocabulary the highlighter was built with.
func (s *Syntax) Language() Language { return s.lang }

func (s *Syntax) Highlight(idx int, line *buffer.Line) {
	words := splitWords(line.String())

	var result []annotated.Annotation
	for i := 0; i < len(words); i++ {
		a, ok := s.annotate(words[i:])
		if !ok {
			continue
		}
		a = a.Shift(words[i].start)
		result = append(result, a)
		for i+1 < len(words) && words[i+1].start < a.End {
			i++
		}
	}

	s.cache.put(idx, result)
	log.Debug(log.CatHighlight, "syntax highlighted", "lang", s.lang.Name, "line", idx, "spans", len(result), "cached", s.cache.size())
}

func (s *Syntax) Annotations(idx int) ([]annotated.Annotation, bool) {
	return s.cache.get(idx)
}

func (s *Syntax) Invalidate(idx int) { s.cache.remove(idx) }

func (s *Syntax) InvalidateFrom(idx int) { s.cache.removeFrom(idx) }

// annotate runs the ordered checks on the token starting at ws[0]. Returned
// offsets are relative to ws[0].start.
func (s *Syntax) annotate(ws []word) (annotated.Annotation, bool) {
	for _, check := range []func([]word) (annotated.Annotation, bool){
		annotateChar,
		s.annotateLifetime,
		s.nextWord(annotated.KindNumber, IsNumber),
		s.nextWord(annotated.KindKeyword, func(w string) bool { return has(s.vocab.keywords, w) }),
		s.nextWord(annotated.KindType, func(w string) bool { return has(s.vocab.types, w) }),
		s.nextWord(annotated.KindKnownValue, func(w string) bool { return has(s.vocab.knownValues, w) }),
	} {
		if a, ok := check(ws); ok {
			return a, true
		}
	}
	return annotated.Annotation{}, false
}

func (s *Syntax) nextWord(kind annotated.Kind, valid func(string) bool) func([]word) (annotated.Annotation, bool) {
	return func(ws []word) (annotated.Annotation, bool) {
		if len(ws) == 0 || !valid(ws[0].text) {
			return annotated.Annotation{}, false
		}
		return annotated.Annotation{Kind: kind, Start: 0, End: len(ws[0].text)}, true
	}
}

// annotateChar matches 'x' and '\x' where x is a single word.
func annotateChar(ws []word) (annotated.Annotation, bool) {
	if len(ws) == 0 || ws[0].text != "'" {
		return annotated.Annotation{}, false
	}
	base := ws[0].start
	i := 1
	if i < len(ws) && ws[i].text == `\` {
		i++
	}
	i++
	if i < len(ws) && ws[i].text == "'" {
		return annotated.Annotation{Kind: annotated.KindChar, Start: 0, End: ws[i].start - base + 1}, true
	}
	return annotated.Annotation{}, false
}

// annotateLifetime matches a quote followed by any word, e.g. 'static.
func (s *Syntax) annotateLifetime(ws []word) (annotated.Annotation, bool) {
	if !s.vocab.lifetimes || len(ws) < 2 || ws[0].text != "'" {
		return annotated.Annotation{}, false
	}
	end := ws[1].start + len(ws[1].text) - ws[0].start
	return annotated.Annotation{Kind: annotated.KindLifetime, Start: 0, End: end}, true
}

type word struct {
	start int
	text  string
}

func splitWords(text string) []word {
	var (
		out   []word
		w     string
		off   int
		state = -1
	)
	for len(text) > 0 {
		w, text, state = uniseg.FirstWordInString(text, state)
		out = append(out, word{start: off, text: w})
		off += len(w)
	}
	return out
}
