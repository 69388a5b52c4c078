package lexer

import "unicode"

// Character classifiers with ASCII fast paths; the Unicode fallbacks mirror
// the hybrid language's permissive identifier rules.

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	if r < 0x80 {
		return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	return unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	if r < 0x80 {
		return isIdentStart(r) || isDec(r)
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
