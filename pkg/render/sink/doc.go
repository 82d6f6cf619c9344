// Package sink renders a [layout.Layout] to output formats.
//
// Sinks are thin consumers: they never run layout and only read the
// selection to decide highlight colors.
//
// # SVG
//
// [RenderSVG] draws one rectangle per word (bottom-up in reading order),
// punctuation marks on their per-symbol vertical scales, both axes with the
// "Characters Used" / "Words Remaining" key, and the red triangle marking
// the last unique word. [WithListing] adds the frequency listing as a panel
// to the right, and hover highlighting is embedded as a small script.
//
// # JSON
//
// [RenderJSON] exports the layout with the selection and optional listing,
// for external renderers and for caching.
package sink
