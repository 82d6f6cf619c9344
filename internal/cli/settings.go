package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtower/pkg/config"
	"github.com/matzehuels/wordtower/pkg/pipeline"
)

// settingsFlags are the layout and selection flags shared by the commands
// that compute a layout. Flags override the config file, which overrides
// the compiled defaults.
type settingsFlags struct {
	configPath  string
	width       float64
	height      float64
	marginX     float64
	marginY     float64
	word        string
	punctuation string
	noCache     bool
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordtower/config.toml)")
	cmd.Flags().Float64Var(&f.width, "width", def.Viewport.Width, "viewport width in pixels")
	cmd.Flags().Float64Var(&f.height, "height", def.Viewport.Height, "viewport height in pixels")
	cmd.Flags().Float64Var(&f.marginX, "margin-x", def.Margins.Horizontal, "horizontal margin in pixels")
	cmd.Flags().Float64Var(&f.marginY, "margin-y", def.Margins.Vertical, "vertical margin in pixels")
	cmd.Flags().StringVar(&f.word, "word", def.Selection.Word, "word key to highlight")
	cmd.Flags().StringVar(&f.punctuation, "punctuation", def.Selection.Punctuation, "punctuation symbol to highlight")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the layout cache")
}

// resolve layers the config file and the changed flags over the defaults.
// An explicit --config must exist; the default location is optional.
func (f *settingsFlags) resolve(cmd *cobra.Command) (config.File, error) {
	var (
		file config.File
		err  error
	)
	if f.configPath != "" {
		file, err = config.Load(f.configPath)
	} else {
		file, err = loadDefaultConfig()
	}
	if err != nil {
		return config.File{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		file.Viewport.Width = f.width
	}
	if flags.Changed("height") {
		file.Viewport.Height = f.height
	}
	if flags.Changed("margin-x") {
		file.Margins.Horizontal = f.marginX
	}
	if flags.Changed("margin-y") {
		file.Margins.Vertical = f.marginY
	}
	if flags.Changed("word") {
		file.Selection.Word = f.word
	}
	if flags.Changed("punctuation") {
		file.Selection.Punctuation = f.punctuation
	}
	if err := file.Validate(); err != nil {
		return config.File{}, err
	}
	return file, nil
}

// options converts resolved settings into pipeline options.
func (f *settingsFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	file, err := f.resolve(cmd)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Config:           file.LayoutConfig(),
		Selection:        file.SelectionDefaults(),
		DefaultSelection: file.SelectionDefaults(),
		ListingMin:       file.Listing.MinFont,
		ListingMax:       file.Listing.MaxFont,
		Logger:           loggerFromContext(cmd.Context()),
	}, nil
}

func loadDefaultConfig() (config.File, error) {
	path, err := config.DefaultPath(appName)
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadOptional(path)
}
