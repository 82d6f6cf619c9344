// Package pipeline runs the text → layout → render pipeline for wordtower.
//
// The CLI and the HTTP server both go through a [Runner], so caching,
// defaults, and validation behave the same at every entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, text, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	    Listing: true,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.ComputeLayout(ctx, text, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordtower/pkg/cache"
	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/render/styles"
	"github.com/matzehuels/wordtower/pkg/selection"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Options configures one pipeline run. It decodes from JSON request bodies.
type Options struct {
	// Layout options. Zero width or height and a nil punctuation table take
	// the defaults; margins are used as given.
	Config layout.Config `json:"config"`

	// Render options.
	Formats   []string            `json:"formats,omitempty"`
	Selection selection.Selection `json:"selection"`
	// DefaultSelection replaces a selected word or symbol that does not occur
	// in the layout. Empty fields take the built-in defaults.
	DefaultSelection selection.Selection `json:"default_selection"`
	Listing          bool                `json:"listing,omitempty"`
	ListingMin       float64             `json:"listing_min,omitempty"`
	ListingMax       float64             `json:"listing_max,omitempty"`
	Static           bool                `json:"static,omitempty"` // omit hover CSS and script from SVG
	Refresh          bool                `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Layout     *layout.Layout
	LayoutHash string
	Artifacts  map[string][]byte
	Stats      Stats
	CacheInfo  CacheInfo
}

// Stats describes the input and the time spent per stage.
type Stats struct {
	Words      int
	Characters int
	Distinct   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks every format in formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// ValidateAndSetDefaults fills defaults and validates the options. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout fills layout defaults and validates the layout config.
func (o *Options) ValidateForLayout() error {
	if o.Config.ViewportWidth == 0 {
		o.Config.ViewportWidth = layout.DefaultWidth
	}
	if o.Config.ViewportHeight == 0 {
		o.Config.ViewportHeight = layout.DefaultHeight
	}
	if o.Config.Punctuation == nil {
		o.Config.Punctuation = punctuation.DefaultKinds()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.Config.Validate()
}

// ValidateForRender fills render defaults and validates formats and the
// listing range.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Selection.Word == "" {
		o.Selection.Word = selection.DefaultWord
	}
	if o.Selection.Punctuation == "" {
		o.Selection.Punctuation = selection.DefaultPunctuation
	}
	if o.DefaultSelection.Word == "" {
		o.DefaultSelection.Word = selection.DefaultWord
	}
	if o.DefaultSelection.Punctuation == "" {
		o.DefaultSelection.Punctuation = selection.DefaultPunctuation
	}
	if o.ListingMin == 0 {
		o.ListingMin = styles.DefaultListingMin
	}
	if o.ListingMax == 0 {
		o.ListingMax = styles.DefaultListingMax
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.ListingMin <= 0 || o.ListingMax < o.ListingMin {
		return errors.New(errors.ErrCodeInvalidStyle, "listing font range must be positive and ordered, got [%v, %v]", o.ListingMin, o.ListingMax)
	}
	return nil
}

// ResolveSelection carries Selection over to l, falling back to
// DefaultSelection for a word or symbol that does not occur in it.
func (o *Options) ResolveSelection(l *layout.Layout) selection.Selection {
	state := selection.New(o.DefaultSelection)
	state.SelectWord(o.Selection.Word)
	state.SelectPunctuation(o.Selection.Punctuation)
	state.Reconcile(l)
	return state.Current()
}

// LayoutKeyOpts returns the cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	symbols := make([]string, len(o.Config.Punctuation))
	for i, k := range o.Config.Punctuation {
		symbols[i] = k.Symbol + "=" + k.Name
	}
	return cache.LayoutKeyOpts{
		Width:       o.Config.ViewportWidth,
		Height:      o.Config.ViewportHeight,
		MarginX:     o.Config.MarginX,
		MarginY:     o.Config.MarginY,
		Punctuation: symbols,
	}
}

// ArtifactKeyOpts returns the cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:      format,
		Word:        o.Selection.Word,
		Punctuation: o.Selection.Punctuation,
		Listing:     o.Listing,
		Interactive: !o.Static,
	}
	if o.Listing {
		k.ListingMin = o.ListingMin
		k.ListingMax = o.ListingMax
	}
	return k
}
