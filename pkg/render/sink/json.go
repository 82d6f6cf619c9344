package sink

import (
	"encoding/json"

	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/render/styles"
	"github.com/matzehuels/wordtower/pkg/selection"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonOutput)

// WithJSONSelection records the current selection, so a consumer can derive
// highlight colors without further input.
func WithJSONSelection(s selection.Selection) JSONOption {
	return func(o *jsonOutput) { o.Selection = &s }
}

// WithJSONListing includes the frequency listing.
func WithJSONListing(entries []styles.ListingEntry) JSONOption {
	return func(o *jsonOutput) { o.Listing = entries }
}

type jsonOutput struct {
	Layout    *layout.Layout        `json:"layout"`
	Selection *selection.Selection  `json:"selection,omitempty"`
	Listing   []styles.ListingEntry `json:"listing,omitempty"`
}

// RenderJSON exports the layout as a pretty-printed JSON document. It does
// not modify l and is safe to call concurrently.
func RenderJSON(l *layout.Layout, opts ...JSONOption) ([]byte, error) {
	out := jsonOutput{Layout: l}
	for _, opt := range opts {
		opt(&out)
	}
	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON parses a document written by [RenderJSON] and returns its layout.
func ReadJSON(data []byte) (*layout.Layout, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Layout == nil {
		return nil, errMissingLayout
	}
	return out.Layout, nil
}
