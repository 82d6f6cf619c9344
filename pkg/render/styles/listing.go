package styles

import (
	"cmp"
	"slices"

	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/scale"
)

// Default font size range of the frequency listing, in pixels.
const (
	DefaultListingMin = 20.0
	DefaultListingMax = 90.0
)

// ListingEntry is one word of the frequency listing.
type ListingEntry struct {
	Key      string  `json:"key"`
	Count    int     `json:"count"`
	FontSize float64 `json:"font_size"`
}

// Listing orders the layout's keys by descending count, keeping
// first-occurrence order among equal counts, and sizes each entry with a
// logarithmic scale over [1, max count] onto [minPx, maxPx].
func Listing(l *layout.Layout, minPx, maxPx float64) ([]ListingEntry, error) {
	if l.Empty() {
		return nil, nil
	}
	size, err := scale.Log(1, float64(l.MaxFrequency()), minPx, maxPx)
	if err != nil {
		return nil, err
	}

	entries := make([]ListingEntry, 0, len(l.Keys))
	for _, k := range l.Keys {
		n := l.Frequencies[k]
		entries = append(entries, ListingEntry{Key: k, Count: n, FontSize: size.Map(float64(n))})
	}
	slices.SortStableFunc(entries, func(a, b ListingEntry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return entries, nil
}
