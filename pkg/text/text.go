package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize returns the WordKey for token: the token lowercased with every
// character outside [0-9a-z] removed. It is total and idempotent.
func Normalize(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		r = unicode.ToLower(r)
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize splits doc into its token stream. Any run of Unicode whitespace,
// newlines included, delimits tokens, so an all-whitespace document has no
// tokens.
func Tokenize(doc string) []string {
	return strings.Fields(doc)
}

// Len is the character length of a token as used for horizontal scaling.
func Len(token string) int {
	return utf8.RuneCountInString(token)
}

// CharacterCount returns the number of non-space characters in the stream.
func CharacterCount(tokens []string) int {
	n := 0
	for _, t := range tokens {
		n += Len(t)
	}
	return n
}
