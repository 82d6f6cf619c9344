// Package punctuation tracks where configured punctuation symbols appear in a
// word stream.
//
// # Kinds
//
// The recognized symbols are configuration, not code: a [Set] is built from
// a list of [Kind] values mapping a single-character symbol to a display
// name. [DefaultKinds] returns the standard five:
//
//	!  exclamation
//	,  comma
//	.  period
//	?  question
//	;  semi-colon
//
// # Tracking
//
// A [Tracker] is fed one token at a time, in stream order, together with the
// horizontal extent of the token's rectangle. Punctuation marks inside one
// token are spread evenly across that rectangle in order of appearance: the
// p-th of n marks (1-based) lands at x + width*p/n, so the last mark of a word
// sits on its right edge.
//
// Every appearance receives a 1-based occurrence rank within its symbol's
// sequence. [Tracker.Found] returns only the symbols that appeared, so a
// [Series] never has an empty domain.
//
// # Vertical Placement
//
// A symbol's appearances are plotted against their own vertical scale:
//
//	y = total * (1 - rank/count)
//
// The first appearance plots lowest and the most recent highest. The
// inversion is deliberate; see [VerticalPosition].
package punctuation
