package errors

import (
	"unicode"
	"unicode/utf8"
)

// maxNameLength bounds punctuation display names; they end up in CSS class names.
const maxNameLength = 64

// ValidatePunctuationSymbol checks that s is usable as a punctuation symbol and
// returns its rune.
//
// The validation rules:
//   - Exactly one rune
//   - Not a letter or digit (those belong to words)
//   - Not whitespace (whitespace delimits tokens and never reaches a word)
//   - Not a control character
func ValidatePunctuationSymbol(s string) (rune, error) {
	if s == "" {
		return 0, New(ErrCodeInvalidPunctuation, "punctuation symbol cannot be empty")
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, New(ErrCodeInvalidPunctuation, "punctuation symbol must be a single character: %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, New(ErrCodeInvalidPunctuation, "punctuation symbol is not valid UTF-8: %q", s)
	}
	return r, ValidatePunctuationRune(r)
}

// ValidatePunctuationRune applies the symbol rules of [ValidatePunctuationSymbol]
// to a single rune.
func ValidatePunctuationRune(r rune) error {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return New(ErrCodeInvalidPunctuation, "punctuation symbol cannot be alphanumeric: %q", r)
	case unicode.IsSpace(r):
		return New(ErrCodeInvalidPunctuation, "punctuation symbol cannot be whitespace: %q", r)
	case unicode.IsControl(r):
		return New(ErrCodeInvalidPunctuation, "punctuation symbol cannot be a control character: %q", r)
	}
	return nil
}

// ValidatePunctuationName checks a punctuation display name.
// Names become CSS class names and SVG attribute values, so they are limited
// to ASCII letters, digits, '_' and '-'.
func ValidatePunctuationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPunctuation, "punctuation name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPunctuation, "punctuation name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return New(ErrCodeInvalidPunctuation, "punctuation name may only contain letters, digits, '_' and '-': %q", name)
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') || r == '_' || r == '-'
}
