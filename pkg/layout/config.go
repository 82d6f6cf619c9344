package layout

import (
	"math"

	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/punctuation"
)

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultMargin is the default horizontal and vertical margin in pixels.
	DefaultMargin = 30.0
)

// Config holds the inputs to a layout pass besides the text itself.
type Config struct {
	ViewportWidth  float64            `json:"width"`
	ViewportHeight float64            `json:"height"`
	MarginX        float64            `json:"margin_x"`
	MarginY        float64            `json:"margin_y"`
	Punctuation    []punctuation.Kind `json:"punctuation"`
}

// DefaultConfig returns an 800x600 viewport with 30px margins and the
// default punctuation kinds.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:  DefaultWidth,
		ViewportHeight: DefaultHeight,
		MarginX:        DefaultMargin,
		MarginY:        DefaultMargin,
		Punctuation:    punctuation.DefaultKinds(),
	}
}

// Validate reports configuration problems. The horizontal plot range
// [MarginX, ViewportWidth-2*MarginX] must leave room after the per-word
// right margin, and the vertical range [MarginY, ViewportHeight-MarginY]
// must be positive.
func (c Config) Validate() error {
	_, err := c.punctuationSet()
	return err
}

func (c Config) punctuationSet() (*punctuation.Set, error) {
	for _, v := range []float64{c.ViewportWidth, c.ViewportHeight, c.MarginX, c.MarginY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "viewport and margins must be finite")
		}
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "viewport must be positive, got %vx%v", c.ViewportWidth, c.ViewportHeight)
	}
	if c.MarginX < 0 || c.MarginY < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "margins cannot be negative, got %v/%v", c.MarginX, c.MarginY)
	}
	if c.ViewportWidth <= 3*c.MarginX {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "horizontal margin %v leaves no room in width %v", c.MarginX, c.ViewportWidth)
	}
	if c.ViewportHeight <= 2*c.MarginY {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "vertical margin %v leaves no room in height %v", c.MarginY, c.ViewportHeight)
	}
	return punctuation.NewSet(c.Punctuation)
}
