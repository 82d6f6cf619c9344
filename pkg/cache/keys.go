package cache

import "fmt"

// LayoutKeyOpts are the layout inputs that affect the cached geometry.
type LayoutKeyOpts struct {
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	MarginX     float64  `json:"margin_x"`
	MarginY     float64  `json:"margin_y"`
	Punctuation []string `json:"punctuation"`
}

// ArtifactKeyOpts are the rendering inputs that affect an artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Word        string  `json:"word"`
	Punctuation string  `json:"punctuation"`
	Listing     bool    `json:"listing"`
	ListingMin  float64 `json:"listing_min,omitempty"`
	ListingMax  float64 `json:"listing_max,omitempty"`
	Interactive bool    `json:"interactive"`
}

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	// LayoutKey returns the key for a layout of the text with hash textHash.
	LayoutKey(textHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for an artifact rendered from the layout
	// with hash layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes stage options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(textHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", textHash, opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), layoutHash, opts)
}
