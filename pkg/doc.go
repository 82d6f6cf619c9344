// Package pkg provides the core libraries for wordtower text visualization.
//
// # Overview
//
// Wordtower turns a block of prose into a frequency chart: every word is drawn
// left to right in reading order, raised according to how often its normalized
// form has been seen so far, and every punctuation mark is stacked in a
// column of its own. The pkg directory is organized into three areas:
//
//  1. Domain logic: [text], [scale], [punctuation], [layout], [selection]
//  2. Rendering: [render/styles] and [render/sink]
//  3. Infrastructure: [config], [cache], [pipeline], [observability],
//     [errors], [buildinfo]
//
// # Architecture
//
// The typical data flow through wordtower:
//
//	Document text
//	     ↓
//	[text] package (tokenize, normalize, count)
//	     ↓
//	[layout] package (word geometry + punctuation series)
//	     ↓
//	[selection] package (highlighted word and mark)
//	     ↓
//	[render/sink] package (SVG or JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/wordtower/pkg/layout"
//	    "github.com/matzehuels/wordtower/pkg/render/sink"
//	    "github.com/matzehuels/wordtower/pkg/selection"
//	)
//
//	l, err := layout.Compute(doc, layout.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	state := selection.NewDefault()
//	state.Reconcile(l)
//
//	svg := sink.RenderSVG(l, sink.WithSelection(state.Current()))
//
// For cached, instrumented runs use [pipeline.Runner] instead of calling the
// layout and sink packages directly.
//
// # Main Packages
//
// [text] splits a document into whitespace-separated tokens, reduces each one
// to a lowercase alphanumeric key and tracks running counts per key.
//
// [scale] maps a numeric domain onto a pixel range, linearly or
// logarithmically.
//
// [punctuation] owns the configurable set of tracked marks and assigns each
// occurrence a horizontal and a vertical position.
//
// [layout] combines the above into a serializable [layout.Layout].
//
// [selection] holds the currently highlighted word and mark.
//
// [render/styles] carries colors, CSS classes, tooltips and the word listing;
// [render/sink] writes the layout as SVG or JSON.
//
// [config] loads TOML settings, [cache] stores computed layouts and
// artifacts, [pipeline] orchestrates layout and rendering, and
// [observability] exposes hooks for logging and metrics.
//
// [text]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/text
// [scale]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/scale
// [punctuation]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/punctuation
// [layout]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/layout
// [layout.Layout]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/layout#Layout
// [selection]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/selection
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/render/styles
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/render/sink
// [config]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/pipeline#Runner
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/buildinfo
package pkg
