// Package selection holds the highlighted word and punctuation symbol.
//
// A [State] is pure data: it is changed only by explicit selection events
// and never triggers a layout pass. Renderers compare each word key or
// symbol against [State.Current] to choose highlight colors.
package selection

import "github.com/matzehuels/wordtower/pkg/layout"

const (
	// DefaultWord is the word highlighted before any selection event.
	DefaultWord = "the"

	// DefaultPunctuation is the symbol highlighted before any selection event.
	DefaultPunctuation = "."
)

// Selection is a snapshot of the highlighted word key and symbol.
type Selection struct {
	Word        string `json:"word"`
	Punctuation string `json:"punctuation"`
}

// State is the mutable selection with its configured defaults.
type State struct {
	defaults Selection
	current  Selection
}

// New returns a State that starts at, and falls back to, defaults.
func New(defaults Selection) *State {
	return &State{defaults: defaults, current: defaults}
}

// NewDefault returns a State using DefaultWord and DefaultPunctuation.
func NewDefault() *State {
	return New(Selection{Word: DefaultWord, Punctuation: DefaultPunctuation})
}

// SelectWord highlights key.
func (s *State) SelectWord(key string) { s.current.Word = key }

// SelectPunctuation highlights symbol.
func (s *State) SelectPunctuation(symbol string) { s.current.Punctuation = symbol }

// Current returns the current selection.
func (s *State) Current() Selection { return s.current }

// Defaults returns the configured defaults.
func (s *State) Defaults() Selection { return s.defaults }

// IsWordSelected reports whether key is the highlighted word.
func (s *State) IsWordSelected(key string) bool { return s.current.Word == key }

// IsPunctuationSelected reports whether symbol is the highlighted symbol.
func (s *State) IsPunctuationSelected(symbol string) bool { return s.current.Punctuation == symbol }

// Reset restores the defaults.
func (s *State) Reset() { s.current = s.defaults }

// Reconcile carries the selection over to a freshly computed layout. A word
// key that no longer occurs, or a symbol with no appearances, falls back to
// its default; everything else is preserved.
func (s *State) Reconcile(l *layout.Layout) {
	if !l.HasKey(s.current.Word) {
		s.current.Word = s.defaults.Word
	}
	if _, ok := l.Series(s.current.Punctuation); !ok {
		s.current.Punctuation = s.defaults.Punctuation
	}
}
