package layout

import (
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/scale"
	"github.com/matzehuels/wordtower/pkg/text"
)

// Engine lays out token streams for a fixed, validated Config.
// An Engine holds no state between calls and may be reused.
type Engine struct {
	cfg Config
	set *punctuation.Set
}

// NewEngine validates cfg and returns an engine for it.
func NewEngine(cfg Config) (*Engine, error) {
	set, err := cfg.punctuationSet()
	if err != nil {
		return nil, err
	}
	cfg.Punctuation = set.Kinds()
	return &Engine{cfg: cfg, set: set}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Compute tokenizes doc and lays it out.
func (e *Engine) Compute(doc string) *Layout {
	tokens := text.Tokenize(doc)
	if len(tokens) == 0 {
		return emptyLayout(e.cfg)
	}

	chars := text.CharacterCount(tokens)
	xScale := scale.Linear(0, float64(chars), e.cfg.MarginX, e.cfg.ViewportWidth-2*e.cfg.MarginX)
	yScale := scale.Linear(0, float64(len(tokens)), e.cfg.MarginY, e.cfg.ViewportHeight-e.cfg.MarginY)

	return e.Layout(tokens, xScale, yScale)
}

// Layout walks tokens once, left to right, emitting one geometry per token.
// Widths come from xScale minus the right margin; every token gets an equal
// share of yScale's span as height.
func (e *Engine) Layout(tokens []string, xScale, yScale scale.Scale) *Layout {
	l := emptyLayout(e.cfg)
	if len(tokens) == 0 {
		return l
	}

	freq := text.NewFrequencyTracker()
	punc := punctuation.NewTracker(e.set)
	height := yScale.Span() / float64(len(tokens))

	l.Geometries = make([]WordGeometry, 0, len(tokens))
	var x, y float64
	for i, tok := range tokens {
		key := text.Normalize(tok)
		width := xScale.Map(float64(text.Len(tok))) - e.cfg.MarginX

		g := WordGeometry{
			Text:          tok,
			Key:           key,
			SequenceIndex: i,
			X:             x,
			Y:             y,
			Width:         width,
			Height:        height,
			Occurrence:    freq.Observe(key),
		}
		for _, m := range punc.Scan(tok, x, width) {
			g.Punctuation = append(g.Punctuation, m.Symbol)
		}
		l.Geometries = append(l.Geometries, g)

		x += width
		y += height
	}

	l.WordCount = len(tokens)
	l.CharacterCount = text.CharacterCount(tokens)
	l.DistinctCount = freq.TotalDistinctKeys()
	l.Frequencies = freq.Counts()
	l.Keys = freq.Keys()
	if found := punc.Found(); found != nil {
		l.Punctuation = found
	}

	if idx, ok := freq.CompletionIndex(); ok {
		g := l.Geometries[idx]
		l.Unique = &UniqueMarker{
			Key:           g.Key,
			Text:          g.Text,
			SequenceIndex: idx,
			X:             g.X,
			DistinctCount: l.DistinctCount,
		}
	}
	return l
}

// Compute validates cfg and lays out doc. A configuration error is returned
// before any geometry is produced; an empty document is not an error.
func Compute(doc string, cfg Config) (*Layout, error) {
	e, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return e.Compute(doc), nil
}
