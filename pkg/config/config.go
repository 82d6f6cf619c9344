// Package config loads wordtower settings from a TOML file.
//
// Every field is optional; missing values keep their defaults. The
// punctuation table replaces the default set when present, which is how new
// symbols are recognized without code changes:
//
//	[viewport]
//	width = 1200
//	height = 800
//
//	[margins]
//	horizontal = 30
//	vertical = 30
//
//	[selection]
//	word = "dream"
//	punctuation = "!"
//
//	[listing]
//	min_font = 20
//	max_font = 90
//
//	[[punctuation]]
//	symbol = ":"
//	name = "colon"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordtower/pkg/errors"
	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/render/styles"
	"github.com/matzehuels/wordtower/pkg/selection"
)

// FileName is the config file looked up in the user config directory.
const FileName = "config.toml"

// File mirrors the TOML document.
type File struct {
	Viewport    Viewport           `toml:"viewport"`
	Margins     Margins            `toml:"margins"`
	Selection   Selection          `toml:"selection"`
	Listing     Listing            `toml:"listing"`
	Punctuation []punctuation.Kind `toml:"punctuation"`
}

// Viewport is the drawing area in pixels.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Margins are the plot margins in pixels.
type Margins struct {
	Horizontal float64 `toml:"horizontal"`
	Vertical   float64 `toml:"vertical"`
}

// Selection holds the default highlighted word and symbol.
type Selection struct {
	Word        string `toml:"word"`
	Punctuation string `toml:"punctuation"`
}

// Listing is the frequency listing font range in pixels.
type Listing struct {
	MinFont float64 `toml:"min_font"`
	MaxFont float64 `toml:"max_font"`
}

// Default returns the compiled-in settings.
func Default() File {
	cfg := layout.DefaultConfig()
	return File{
		Viewport:    Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight},
		Margins:     Margins{Horizontal: cfg.MarginX, Vertical: cfg.MarginY},
		Selection:   Selection{Word: selection.DefaultWord, Punctuation: selection.DefaultPunctuation},
		Listing:     Listing{MinFont: styles.DefaultListingMin, MaxFont: styles.DefaultListingMax},
		Punctuation: cfg.Punctuation,
	}
}

// Parse decodes a TOML document over the defaults and validates the result.
func Parse(data string) (File, error) {
	f := Default()
	f.Punctuation = nil

	md, err := toml.Decode(data, &f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if !md.IsDefined("punctuation") {
		f.Punctuation = punctuation.DefaultKinds()
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}

// LoadOptional loads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (File, error) {
	f, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return f, err
}

// DefaultPath returns $XDG_CONFIG_HOME/<app>/config.toml, falling back to
// ~/.config/<app>/config.toml.
func DefaultPath(app string) (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, app, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", app, FileName), nil
}

// Validate checks the layout settings and the listing range.
func (f File) Validate() error {
	if err := f.LayoutConfig().Validate(); err != nil {
		return err
	}
	if f.Listing.MinFont <= 0 || f.Listing.MaxFont < f.Listing.MinFont {
		return errors.New(errors.ErrCodeInvalidConfig, "listing font range must be positive and ordered, got [%v, %v]", f.Listing.MinFont, f.Listing.MaxFont)
	}
	return nil
}

// LayoutConfig converts the file into a layout configuration.
func (f File) LayoutConfig() layout.Config {
	return layout.Config{
		ViewportWidth:  f.Viewport.Width,
		ViewportHeight: f.Viewport.Height,
		MarginX:        f.Margins.Horizontal,
		MarginY:        f.Margins.Vertical,
		Punctuation:    f.Punctuation,
	}
}

// SelectionDefaults returns the configured default selection.
func (f File) SelectionDefaults() selection.Selection {
	return selection.Selection{Word: f.Selection.Word, Punctuation: f.Selection.Punctuation}
}
