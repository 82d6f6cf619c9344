// Package render groups the packages that turn a computed layout into output.
//
// # Styles
//
// The [styles] subpackage holds the visual vocabulary shared by every output:
// fill colors for selected and unselected words, the WORD_ and PUNC_ CSS
// class prefixes, tooltip text and the frequency-sorted word listing.
//
//	entries, err := styles.Listing(l, 8, 32)
//
// # Sinks
//
// The [sink] subpackage writes a layout in a concrete format. SVG output
// contains one text element per word and one per punctuation mark, plus an
// optional listing panel. JSON output is the stable wire format consumed by
// the HTTP API and read back by [sink.ReadJSON].
//
//	svg := sink.RenderSVG(l, sink.WithSelection(sel), sink.WithListing(entries))
//	data, err := sink.RenderJSON(l, sink.WithJSONSelection(sel))
//
// [styles]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/render/styles
// [sink]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/render/sink
// [sink.ReadJSON]: https://pkg.go.dev/github.com/matzehuels/wordtower/pkg/render/sink#ReadJSON
package render
