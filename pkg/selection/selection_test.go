package selection

import (
	"testing"

	"github.com/matzehuels/wordtower/pkg/layout"
)

func compute(t *testing.T, doc string) *layout.Layout {
	t.Helper()
	l, err := layout.Compute(doc, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	return l
}

func TestDefaults(t *testing.T) {
	s := NewDefault()
	got := s.Current()
	if got.Word != "the" || got.Punctuation != "." {
		t.Errorf("Current() = %+v, want the/.", got)
	}
	if !s.IsWordSelected("the") {
		t.Error("IsWordSelected(the) = false")
	}
	if !s.IsPunctuationSelected(".") {
		t.Error("IsPunctuationSelected(.) = false")
	}
}

func TestSelect(t *testing.T) {
	s := NewDefault()
	s.SelectWord("dream")
	s.SelectPunctuation("!")

	if s.Current() != (Selection{Word: "dream", Punctuation: "!"}) {
		t.Errorf("Current() = %+v", s.Current())
	}
	if s.IsWordSelected("the") {
		t.Error("previous word still selected")
	}

	s.Reset()
	if s.Current() != s.Defaults() {
		t.Errorf("Reset() left %+v, want %+v", s.Current(), s.Defaults())
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		sel  Selection
		want Selection
	}{
		{
			name: "both present",
			doc:  "I have a dream!",
			sel:  Selection{Word: "dream", Punctuation: "!"},
			want: Selection{Word: "dream", Punctuation: "!"},
		},
		{
			name: "word gone",
			doc:  "I have a plan!",
			sel:  Selection{Word: "dream", Punctuation: "!"},
			want: Selection{Word: "the", Punctuation: "!"},
		},
		{
			name: "symbol gone",
			doc:  "I have a dream.",
			sel:  Selection{Word: "dream", Punctuation: "!"},
			want: Selection{Word: "dream", Punctuation: "."},
		},
		{
			name: "empty document",
			doc:  "",
			sel:  Selection{Word: "dream", Punctuation: "!"},
			want: Selection{Word: "the", Punctuation: "."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDefault()
			s.SelectWord(tt.sel.Word)
			s.SelectPunctuation(tt.sel.Punctuation)

			s.Reconcile(compute(t, tt.doc))

			if got := s.Current(); got != tt.want {
				t.Errorf("Reconcile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
