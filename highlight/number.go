package highlight

// IsNumber reports whether word is a numeric literal: a radix-prefixed
// integer (0b, 0o, 0x) or a decimal with at most one '.', at most one
// exponent and '_' digit separators.
func IsNumber(word string) bool {
	if word == "" {
		return false
	}
	if isRadixLiteral(word) {
		return true
	}
	if word[0] < '0' || word[0] > '9' {
		return false
	}

	var (
		seenDot      bool
		seenExponent bool
		prevDigit    = true
	)
	for _, r := range word[1:] {
		switch {
		case r >= '0' && r <= '9':
			prevDigit = true
		case r == '_':
			if !prevDigit {
				return false
			}
			prevDigit = false
		case r == '.':
			if seenDot || seenExponent || !prevDigit {
				return false
			}
			seenDot = true
			prevDigit = false
		case r == 'e' || r == 'E':
			if seenExponent || !prevDigit {
				return false
			}
			seenExponent = true
			prevDigit = false
		default:
			return false
		}
	}
	return prevDigit
}

func isRadixLiteral(word string) bool {
	if len(word) < 3 || word[0] != '0' {
		return false
	}
	var base rune
	switch word[1] {
	case 'b', 'B':
		base = 2
	case 'o', 'O':
		base = 8
	case 'x', 'X':
		base = 16
	default:
		return false
	}
	for _, r := range word[2:] {
		if digitValue(r) >= base {
			return false
		}
	}
	return true
}

func digitValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'z':
		return r - 'a' + 10
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 10
	default:
		return 1 << 20
	}
}
