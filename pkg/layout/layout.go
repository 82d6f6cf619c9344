package layout

import (
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/scale"
)

// WordGeometry is the rectangle of one token. X and Y are relative to the
// plot origin; Y grows in reading order.
type WordGeometry struct {
	Text          string   `json:"text"`
	Key           string   `json:"key"`
	SequenceIndex int      `json:"index"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Occurrence    int      `json:"occurrence"`
	Punctuation   []string `json:"punctuation,omitempty"`
}

// Right returns X + Width.
func (g WordGeometry) Right() float64 { return g.X + g.Width }

// CenterX returns the horizontal center of the rectangle.
func (g WordGeometry) CenterX() float64 { return g.X + g.Width/2 }

// UniqueMarker identifies the token that introduced the last new WordKey.
type UniqueMarker struct {
	Key           string  `json:"key"`
	Text          string  `json:"text"`
	SequenceIndex int     `json:"index"`
	X             float64 `json:"x"`
	DistinctCount int     `json:"distinct"`
}

// Layout is the complete, render-ready result of a layout pass.
type Layout struct {
	FrameWidth     float64 `json:"width"`
	FrameHeight    float64 `json:"height"`
	MarginX        float64 `json:"margin_x"`
	MarginY        float64 `json:"margin_y"`
	WordCount      int     `json:"words"`
	CharacterCount int     `json:"characters"`
	DistinctCount  int     `json:"distinct"`

	Geometries  []WordGeometry       `json:"geometries"`
	Frequencies map[string]int       `json:"frequencies"`
	Keys        []string             `json:"keys"` // first-occurrence order
	Punctuation []punctuation.Series `json:"punctuation"`
	Kinds       []punctuation.Kind   `json:"kinds"` // configured set, including symbols that never appear
	Unique      *UniqueMarker        `json:"unique,omitempty"`
}

// Empty reports whether the document had no tokens.
func (l *Layout) Empty() bool { return len(l.Geometries) == 0 }

// XScale returns the horizontal scale the layout was computed with.
func (l *Layout) XScale() scale.Scale {
	return scale.Linear(0, float64(l.CharacterCount), l.MarginX, l.FrameWidth-2*l.MarginX)
}

// YScale returns the vertical scale the layout was computed with.
func (l *Layout) YScale() scale.Scale {
	return scale.Linear(0, float64(l.WordCount), l.MarginY, l.FrameHeight-l.MarginY)
}

// Geometry returns the geometry at sequence index i.
func (l *Layout) Geometry(i int) (WordGeometry, bool) {
	if i < 0 || i >= len(l.Geometries) {
		return WordGeometry{}, false
	}
	return l.Geometries[i], true
}

// Series returns the appearances of symbol, if it appeared at all.
func (l *Layout) Series(symbol string) (punctuation.Series, bool) {
	for _, s := range l.Punctuation {
		if s.Kind.Symbol == symbol {
			return s, true
		}
	}
	return punctuation.Series{}, false
}

// Kind returns the configured kind for symbol, whether or not it appears.
func (l *Layout) Kind(symbol string) (punctuation.Kind, bool) {
	for _, k := range l.Kinds {
		if k.Symbol == symbol {
			return k, true
		}
	}
	return punctuation.Kind{}, false
}

// HasKey reports whether key occurs in the document.
func (l *Layout) HasKey(key string) bool {
	_, ok := l.Frequencies[key]
	return ok
}

// MaxFrequency returns the highest word count, or 0 for an empty layout.
func (l *Layout) MaxFrequency() int {
	m := 0
	for _, n := range l.Frequencies {
		m = max(m, n)
	}
	return m
}

func emptyLayout(cfg Config) *Layout {
	return &Layout{
		FrameWidth:  cfg.ViewportWidth,
		FrameHeight: cfg.ViewportHeight,
		MarginX:     cfg.MarginX,
		MarginY:     cfg.MarginY,
		Geometries:  []WordGeometry{},
		Frequencies: map[string]int{},
		Keys:        []string{},
		Punctuation: []punctuation.Series{},
		Kinds:       append([]punctuation.Kind{}, cfg.Punctuation...),
	}
}
