package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/observability"
	"github.com/matzehuels/wordtower/pkg/text"
)

// GenerateLayout computes the layout of doc without caching.
func GenerateLayout(ctx context.Context, doc string, opts Options) (*layout.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engine, err := layout.NewEngine(opts.Config)
	if err != nil {
		return nil, err
	}

	words := len(text.Tokenize(doc))
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, words)
	start := time.Now()

	l := engine.Compute(doc)

	hooks.OnLayoutComplete(ctx, words, time.Since(start), nil)
	opts.Logger.Debug("layout computed",
		"words", l.WordCount,
		"chars", l.CharacterCount,
		"distinct", l.DistinctCount,
		"punctuation", len(l.Punctuation))
	return l, nil
}
