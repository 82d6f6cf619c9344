package punctuation

import "github.com/matzehuels/wordtower/pkg/scale"

// Appearance is one occurrence of a punctuation symbol.
type Appearance struct {
	X              float64 `json:"x"`
	OccurrenceRank int     `json:"occurrence"`
	SequenceIndex  int     `json:"word"` // index of the containing token
}

// Mark is a symbol position produced by scanning a single token.
type Mark struct {
	Symbol string
	X      float64
}

// Series is the ordered appearances of one kind.
type Series struct {
	Kind        Kind         `json:"kind"`
	Appearances []Appearance `json:"appearances"`
}

// Count returns the number of appearances.
func (s Series) Count() int { return len(s.Appearances) }

// VerticalScale maps an occurrence rank onto [total, 0] so that
// Map(rank) == VerticalPosition(rank, Count(), total).
func (s Series) VerticalScale(total float64) scale.Scale {
	return scale.Linear(0, float64(s.Count()), total, 0)
}

// VerticalPosition returns total * (1 - rank/count): first appearances plot
// low and the most recent plot high. count must be positive.
func VerticalPosition(rank, count int, total float64) float64 {
	return total * (1 - float64(rank)/float64(count))
}

// Tracker accumulates appearances across a document.
// Each call to Scan is one token, in stream order.
type Tracker struct {
	set    *Set
	series [][]Appearance // parallel to set.kinds
	tokens int
	buf    []int
}

// NewTracker returns a tracker for the kinds in set.
func NewTracker(set *Set) *Tracker {
	return &Tracker{
		set:    set,
		series: make([][]Appearance, set.Len()),
	}
}

// Scan records the punctuation marks of token, whose rectangle starts at x
// and spans width, and returns their positions in order of appearance.
func (t *Tracker) Scan(token string, x, width float64) []Mark {
	seq := t.tokens
	t.tokens++

	t.buf = t.buf[:0]
	for _, r := range token {
		if i, ok := t.set.index[r]; ok {
			t.buf = append(t.buf, i)
		}
	}
	if len(t.buf) == 0 {
		return nil
	}

	n := float64(len(t.buf))
	marks := make([]Mark, len(t.buf))
	for p, i := range t.buf {
		pos := x + width*(float64(p+1)/n)
		t.series[i] = append(t.series[i], Appearance{
			X:              pos,
			OccurrenceRank: len(t.series[i]) + 1,
			SequenceIndex:  seq,
		})
		marks[p] = Mark{Symbol: t.set.kinds[i].Symbol, X: pos}
	}
	return marks
}

// Count returns the number of appearances of symbol so far.
func (t *Tracker) Count(symbol rune) int {
	i, ok := t.set.index[symbol]
	if !ok {
		return 0
	}
	return len(t.series[i])
}

// Found returns a Series for every kind with at least one appearance, in
// configuration order. Kinds that never appeared are omitted.
func (t *Tracker) Found() []Series {
	var out []Series
	for i, apps := range t.series {
		if len(apps) == 0 {
			continue
		}
		cp := make([]Appearance, len(apps))
		copy(cp, apps)
		out = append(out, Series{Kind: t.set.kinds[i], Appearances: cp})
	}
	return out
}
