// Package layout computes the geometry of a word-usage visualization.
//
// # Overview
//
// Given a document and a [Config], [Compute] produces a [Layout]: one
// rectangle per token in reading order, the frequency of every WordKey, the
// punctuation appearances per symbol and the unique-word marker. The result
// is plain data; rendering, hover and selection live elsewhere.
//
// # Geometry
//
// Horizontally, a word's width is proportional to its character length:
//
//	xScale = Linear([0, CharacterCount] -> [MarginX, ViewportWidth - 2*MarginX])
//	width  = xScale(len(token)) - MarginX
//
// Rectangles are laid out left to right with no gaps, starting at x = 0 (the
// plot origin; renderers translate by MarginX), so x[i+1] = x[i] + width[i].
//
// Vertically, every word receives an equal slice regardless of its length:
//
//	yScale = Linear([0, WordCount] -> [MarginY, ViewportHeight - MarginY])
//	height = yScale.Span() / WordCount
//
// y starts at 0 and grows by height per word.
//
// # Degenerate Input
//
// An empty or all-whitespace document yields an empty Layout (no
// geometries, no counts, no punctuation and no marker) and no error. Only an
// invalid Config is an error, and it is reported before any geometry is
// produced.
//
// # Usage
//
//	l, err := layout.Compute("a a b", layout.DefaultConfig())
//	if err != nil {
//	    return err // configuration problem
//	}
//	l.Frequencies       // map[a:2 b:1]
//	l.Unique.SequenceIndex // 2
package layout
