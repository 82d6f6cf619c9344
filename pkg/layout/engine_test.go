package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/text"
)

const eps = 1e-6

func mustCompute(t testing.TB, doc string) *Layout {
	t.Helper()
	l, err := Compute(doc, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute(%q) error: %v", doc, err)
	}
	return l
}

func occurrences(l *Layout) []int {
	out := make([]int, len(l.Geometries))
	for i, g := range l.Geometries {
		out[i] = g.Occurrence
	}
	return out
}

func TestComputeRepeatedWord(t *testing.T) {
	l := mustCompute(t, "a a b")

	require.Equal(t, map[string]int{"a": 2, "b": 1}, l.Frequencies)
	require.Equal(t, []string{"a", "b"}, l.Keys)
	require.Equal(t, []int{1, 2, 1}, occurrences(l))
	require.Equal(t, 3, l.WordCount)
	require.Equal(t, 3, l.CharacterCount)
	require.Equal(t, 2, l.DistinctCount)

	require.NotNil(t, l.Unique)
	require.Equal(t, 2, l.Unique.SequenceIndex)
	require.Equal(t, "b", l.Unique.Key)
	require.Equal(t, "b", l.Unique.Text)
	require.Equal(t, 2, l.Unique.DistinctCount)
	require.InDelta(t, l.Geometries[2].X, l.Unique.X, eps)
}

func TestComputePunctuationPerSymbol(t *testing.T) {
	l := mustCompute(t, "Hi! Hi?")

	require.Equal(t, "hi", l.Geometries[0].Key)
	require.Equal(t, "hi", l.Geometries[1].Key)
	require.Equal(t, map[string]int{"hi": 2}, l.Frequencies)

	bang, ok := l.Series("!")
	require.True(t, ok)
	require.Len(t, bang.Appearances, 1)
	require.Equal(t, 1, bang.Appearances[0].OccurrenceRank)

	q, ok := l.Series("?")
	require.True(t, ok)
	require.Len(t, q.Appearances, 1)
	require.Equal(t, 1, q.Appearances[0].OccurrenceRank)
	require.Equal(t, 1, q.Appearances[0].SequenceIndex)

	_, ok = l.Series(".")
	require.False(t, ok, "absent symbols are omitted")
	require.Len(t, l.Punctuation, 2)

	k, ok := l.Kind(".")
	require.True(t, ok, "configured kinds are kept even without appearances")
	require.Equal(t, "period", k.Name)
	require.Equal(t, punctuation.DefaultKinds(), l.Kinds)
}

func TestComputeEmpty(t *testing.T) {
	for _, doc := range []string{"", "   ", "\n\n\t"} {
		l := mustCompute(t, doc)

		require.True(t, l.Empty())
		require.Empty(t, l.Geometries)
		require.Empty(t, l.Frequencies)
		require.Empty(t, l.Punctuation)
		require.Nil(t, l.Unique)
		require.Equal(t, 0, l.DistinctCount)
		require.Equal(t, 0, l.MaxFrequency())
		require.NotNil(t, l.Frequencies, "empty result is well-defined, not nil")
		require.Equal(t, punctuation.DefaultKinds(), l.Kinds)
	}
}

func TestComputeSameWordWithPunctuation(t *testing.T) {
	l := mustCompute(t, "Well, well; well.")

	require.Equal(t, map[string]int{"well": 3}, l.Frequencies)
	require.Equal(t, []int{1, 2, 3}, occurrences(l))

	for _, sym := range []string{",", ";", "."} {
		s, ok := l.Series(sym)
		require.True(t, ok, "symbol %q", sym)
		require.Len(t, s.Appearances, 1)
		require.Equal(t, 1, s.Appearances[0].OccurrenceRank)
	}
	// A single mark sits on the right edge of its word.
	comma, _ := l.Series(",")
	require.InDelta(t, l.Geometries[0].Right(), comma.Appearances[0].X, eps)
	require.Equal(t, []string{","}, l.Geometries[0].Punctuation)
}

func TestComputeAllPunctuationTokens(t *testing.T) {
	l := mustCompute(t, "! ? .")

	require.Equal(t, map[string]int{"": 3}, l.Frequencies)
	require.Equal(t, 1, l.DistinctCount)
	require.NotNil(t, l.Unique)
	require.Equal(t, 0, l.Unique.SequenceIndex)
	require.Equal(t, "", l.Unique.Key)
	require.Len(t, l.Punctuation, 3)
}

func TestComputeGeometry(t *testing.T) {
	cfg := DefaultConfig()
	l, err := Compute("ab cdef g", cfg)
	require.NoError(t, err)

	// 7 characters across [30, 740]: 710/7 px per character.
	perChar := (cfg.ViewportWidth - 3*cfg.MarginX) / 7
	wantWidths := []float64{2 * perChar, 4 * perChar, perChar}
	height := (cfg.ViewportHeight - 2*cfg.MarginY) / 3

	x, y := 0.0, 0.0
	for i, g := range l.Geometries {
		require.InDelta(t, wantWidths[i], g.Width, eps, "width[%d]", i)
		require.InDelta(t, height, g.Height, eps, "height[%d]", i)
		require.InDelta(t, x, g.X, eps, "x[%d]", i)
		require.InDelta(t, y, g.Y, eps, "y[%d]", i)
		x += g.Width
		y += g.Height
	}
	require.InDelta(t, l.XScale().Map(7)-cfg.MarginX, x, eps)
	require.InDelta(t, cfg.ViewportHeight-2*cfg.MarginY, y, eps)
}

func TestComputeCustomPunctuation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Punctuation = []punctuation.Kind{{Symbol: ":", Name: "colon"}}

	l, err := Compute("note: this. that:", cfg)
	require.NoError(t, err)
	require.Len(t, l.Punctuation, 1)
	require.Equal(t, "colon", l.Punctuation[0].Kind.Name)
	require.Equal(t, 2, l.Punctuation[0].Count())
}

func TestComputeInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.Code
	}{
		{"zero width", func(c *Config) { c.ViewportWidth = 0 }, errors.ErrCodeInvalidConfig},
		{"negative height", func(c *Config) { c.ViewportHeight = -1 }, errors.ErrCodeInvalidConfig},
		{"negative margin", func(c *Config) { c.MarginX = -5 }, errors.ErrCodeInvalidConfig},
		{"margin eats width", func(c *Config) { c.MarginX = 300 }, errors.ErrCodeInvalidConfig},
		{"margin eats height", func(c *Config) { c.MarginY = 300 }, errors.ErrCodeInvalidConfig},
		{"nan", func(c *Config) { c.MarginY = math.NaN() }, errors.ErrCodeInvalidConfig},
		{"empty punctuation", func(c *Config) { c.Punctuation = nil }, errors.ErrCodeInvalidPunctuation},
		{"bad symbol", func(c *Config) { c.Punctuation = []punctuation.Kind{{Symbol: "ab", Name: "x"}} }, errors.ErrCodeInvalidPunctuation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			l, err := Compute("some text here", cfg)
			require.Error(t, err)
			require.Nil(t, l, "no geometry on configuration error")
			require.True(t, errors.Is(err, tt.code), "code = %v, want %v", errors.GetCode(err), tt.code)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestEngineReuse(t *testing.T) {
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	first := e.Compute("one two two")
	second := e.Compute("three")

	require.Equal(t, map[string]int{"one": 1, "two": 2}, first.Frequencies)
	require.Equal(t, map[string]int{"three": 1}, second.Frequencies)
	require.Equal(t, 0, second.Geometries[0].SequenceIndex)
}

func TestLayoutProperties(t *testing.T) {
	words := []string{"the", "The", "cat,", "sat.", "on", "mat!", "?", "a;b", "don't", "...", "X"}

	rapid.Check(t, func(rt *rapid.T) {
		tokens := rapid.SliceOfN(rapid.SampledFrom(words), 0, 30).Draw(rt, "tokens")
		doc := ""
		for i, tok := range tokens {
			if i > 0 {
				doc += rapid.SampledFrom([]string{" ", "  ", "\n"}).Draw(rt, "sep")
			}
			doc += tok
		}

		l, err := Compute(doc, DefaultConfig())
		if err != nil {
			rt.Fatalf("Compute(%q): %v", doc, err)
		}
		if len(l.Geometries) != len(tokens) {
			rt.Fatalf("geometries = %d, want %d", len(l.Geometries), len(tokens))
		}

		// Contiguity and width conservation.
		sum := 0.0
		for i, g := range l.Geometries {
			if g.SequenceIndex != i || g.Text != tokens[i] {
				rt.Fatalf("geometry %d out of stream order: %+v", i, g)
			}
			if i+1 < len(l.Geometries) && math.Abs(l.Geometries[i+1].X-g.Right()) > eps {
				rt.Fatalf("gap between %d and %d", i, i+1)
			}
			sum += g.Width
		}
		if len(tokens) > 0 {
			want := l.XScale().Map(float64(l.CharacterCount)) - l.MarginX
			if math.Abs(sum-want) > eps {
				rt.Fatalf("sum of widths = %v, want %v", sum, want)
			}
		}

		// Frequency conservation.
		total := 0
		for k, n := range l.Frequencies {
			c := 0
			for _, tok := range tokens {
				if text.Normalize(tok) == k {
					c++
				}
			}
			if c != n {
				rt.Fatalf("frequency[%q] = %d, want %d", k, n, c)
			}
			total += n
		}
		if total != len(tokens) {
			rt.Fatalf("sum of frequencies = %d, want %d", total, len(tokens))
		}

		// Punctuation rank completeness.
		for _, s := range l.Punctuation {
			for i, a := range s.Appearances {
				if a.OccurrenceRank != i+1 {
					rt.Fatalf("%q rank[%d] = %d", s.Kind.Symbol, i, a.OccurrenceRank)
				}
			}
		}

		// Unique-marker correctness.
		if len(tokens) == 0 {
			if l.Unique != nil {
				rt.Fatal("marker on empty document")
			}
			return
		}
		seen := map[string]bool{}
		first := -1
		for i, tok := range tokens {
			seen[text.Normalize(tok)] = true
			if len(seen) == len(l.Frequencies) {
				first = i
				break
			}
		}
		if l.Unique == nil || l.Unique.SequenceIndex != first {
			rt.Fatalf("marker = %+v, want index %d", l.Unique, first)
		}
	})
}
