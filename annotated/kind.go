package annotated

// Kind labels what an annotation marks.
type Kind uint8

const (
	KindNone Kind = iota
	KindKeyword
	KindType
	KindKnownValue
	KindNumber
	KindChar
	KindLifetime
	KindDigit
	KindMatch
	KindSelectedMatch
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindType:
		return "type"
	case KindKnownValue:
		return "known-value"
	case KindNumber:
		return "number"
	case KindChar:
		return "char"
	case KindLifetime:
		return "lifetime"
	case KindDigit:
		return "digit"
	case KindMatch:
		return "match"
	case KindSelectedMatch:
		return "selected-match"
	default:
		return "none"
	}
}

// Precedence orders overlapping annotations: a selected match beats a match,
// which beats every syntax category.
func (k Kind) Precedence() int {
	switch k {
	case KindSelectedMatch:
		return 3
	case KindMatch:
		return 2
	case KindNone:
		return 0
	default:
		return 1
	}
}
