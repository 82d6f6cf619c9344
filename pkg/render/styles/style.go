// Package styles derives presentation attributes from layout data: highlight
// colors, CSS class names, tooltips and frequency-listing font sizes.
package styles

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/punctuation"
)

// FontFamily is used for every text element.
const FontFamily = `"Helvetica Neue", Helvetica, Arial, sans-serif`

// Colors for selected and unselected words.
const (
	ColorSelected   = "red"
	ColorUnselected = "blue"
)

// WordFill returns the fill color for a word.
func WordFill(selected bool) string {
	if selected {
		return ColorSelected
	}
	return ColorUnselected
}

// WordClass returns the CSS class shared by every rectangle and listing entry
// of key. Keys are [0-9a-z]* so the class needs no escaping.
func WordClass(key string) string { return "WORD_" + key }

// PunctuationClass returns the CSS class of a punctuation kind.
func PunctuationClass(k punctuation.Kind) string { return "PUNC_" + k.Name }

// WordTooltip describes one rectangle, e.g. `2 / 3 uses of "well"`.
func WordTooltip(g layout.WordGeometry, total int) string {
	return fmt.Sprintf("%d / %d uses of %q", g.Occurrence, total, g.Key)
}

// PunctuationTooltip describes one appearance, e.g. `1 / 4 uses of ","`.
func PunctuationTooltip(a punctuation.Appearance, s punctuation.Series) string {
	return fmt.Sprintf("%d / %d uses of %q", a.OccurrenceRank, s.Count(), s.Kind.Symbol)
}

// ListingTooltip describes a listing entry, e.g. `"well" used 3 times`.
func ListingTooltip(key string, count int) string {
	plural := ""
	if count > 1 {
		plural = "s"
	}
	return fmt.Sprintf("%q used %d time%s", key, count, plural)
}

// EscapeXML escapes s for SVG text content and attribute values.
func EscapeXML(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
