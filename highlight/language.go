package highlight

import "github.com/iw2rmb/quill/buffer"

// Language is the closed vocabulary a Syntax highlighter recognizes.
type Language struct {
	Name        string
	Keywords    []string
	Types       []string
	KnownValues []string
	// Lifetimes enables 'ident lifetime markers.
	Lifetimes bool
}

var Rust = Language{
	Name: "Rust",
	Keywords: []string{
		"break", "const", "continue", "crate", "else", "enum", "extern",
		"false", "fn", "for", "if", "impl", "in", "let", "loop", "match",
		"mod", "move", "mut", "pub", "ref", "return", "self", "Self",
		"static", "struct", "super", "trait", "true", "type", "unsafe",
		"use", "where", "while", "async", "await", "dyn", "abstract",
		"become", "box", "do", "final", "macro", "override", "priv",
		"typeof", "unsized", "virtual", "yield", "try", "macro_rules",
		"union",
	},
	Types: []string{
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char",
		"Option", "Result", "String", "str", "Vec", "HashMap",
	},
	KnownValues: []string{"Some", "None", "true", "false", "Ok", "Err"},
	Lifetimes:   true,
}

var Go = Language{
	Name: "Go",
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if",
		"import", "interface", "map", "package", "range", "return",
		"select", "struct", "switch", "type", "var",
	},
	Types: []string{
		"bool", "byte", "complex64", "complex128", "error", "float32",
		"float64", "int", "int8", "int16", "int32", "int64", "rune",
		"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"any", "comparable",
	},
	KnownValues: []string{"true", "false", "nil", "iota"},
}

// LanguageFor returns the vocabulary for t. Plain text has none.
func LanguageFor(t buffer.FileType) (Language, bool) {
	switch t {
	case buffer.FileTypeRust:
		return Rust, true
	case buffer.FileTypeGo:
		return Go, true
	default:
		return Language{}, false
	}
}

type vocabulary struct {
	keywords    map[string]struct{}
	types       map[string]struct{}
	knownValues map[string]struct{}
	lifetimes   bool
}

func newVocabulary(l Language) vocabulary {
	return vocabulary{
		keywords:    wordSet(l.Keywords),
		types:       wordSet(l.Types),
		knownValues: wordSet(l.KnownValues),
		lifetimes:   l.Lifetimes,
	}
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}
