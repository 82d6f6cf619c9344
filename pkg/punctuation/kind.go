package punctuation

import (
	"unicode/utf8"

	"github.com/matzehuels/wordtower/pkg/errors"
)

// Kind maps a punctuation symbol to its display name.
type Kind struct {
	Symbol string `json:"symbol" toml:"symbol"`
	Name   string `json:"name" toml:"name"`
}

// Rune returns the symbol as a rune.
func (k Kind) Rune() rune {
	r, _ := utf8.DecodeRuneInString(k.Symbol)
	return r
}

// DefaultKinds returns the standard punctuation kinds in display order.
func DefaultKinds() []Kind {
	return []Kind{
		{Symbol: "!", Name: "exclamation"},
		{Symbol: ",", Name: "comma"},
		{Symbol: ".", Name: "period"},
		{Symbol: "?", Name: "question"},
		{Symbol: ";", Name: "semi-colon"},
	}
}

// Set is a validated, ordered collection of kinds with rune lookup.
type Set struct {
	kinds []Kind
	index map[rune]int
}

// NewSet validates kinds and builds a Set. It fails with
// ErrCodeInvalidPunctuation when kinds is empty, a symbol is not a single
// non-alphanumeric, non-space character, a symbol repeats, or a name is
// invalid.
func NewSet(kinds []Kind) (*Set, error) {
	if len(kinds) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidPunctuation, "punctuation set cannot be empty")
	}
	s := &Set{
		kinds: make([]Kind, 0, len(kinds)),
		index: make(map[rune]int, len(kinds)),
	}
	names := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		r, err := errors.ValidatePunctuationSymbol(k.Symbol)
		if err != nil {
			return nil, err
		}
		if err := errors.ValidatePunctuationName(k.Name); err != nil {
			return nil, err
		}
		if _, dup := s.index[r]; dup {
			return nil, errors.New(errors.ErrCodeInvalidPunctuation, "duplicate punctuation symbol %q", k.Symbol)
		}
		if names[k.Name] {
			return nil, errors.New(errors.ErrCodeInvalidPunctuation, "duplicate punctuation name %q", k.Name)
		}
		names[k.Name] = true
		s.index[r] = len(s.kinds)
		s.kinds = append(s.kinds, k)
	}
	return s, nil
}

// Kinds returns the kinds in configuration order.
func (s *Set) Kinds() []Kind {
	out := make([]Kind, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// Len returns the number of kinds.
func (s *Set) Len() int { return len(s.kinds) }

// Lookup returns the kind for r.
func (s *Set) Lookup(r rune) (Kind, bool) {
	i, ok := s.index[r]
	if !ok {
		return Kind{}, false
	}
	return s.kinds[i], true
}

// Contains reports whether r is a configured symbol.
func (s *Set) Contains(r rune) bool {
	_, ok := s.index[r]
	return ok
}
