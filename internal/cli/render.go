package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtower/pkg/pipeline"
)

// renderOpts holds the render command's own flags.
type renderOpts struct {
	output  string // output file, or base path for several formats
	formats string // comma-separated formats
	listing bool   // draw the frequency listing next to the tower
	static  bool   // omit hover interaction
}

func (c *CLI) renderCommand() *cobra.Command {
	var (
		settings settingsFlags
		opts     renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a text to SVG and JSON",
		Long: `Render the word layout of a text.

With one format, --output names the file. With several, --output is a base
path and each format gets its extension. Without --output the input file name
is used, or "wordtower" when reading stdin.`,
		Example: `  wordtower render speech.txt
  wordtower render speech.txt -f svg,json -o out/speech --listing
  wordtower render speech.txt --word dream --punctuation '!'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &settings, &opts)
		},
	}

	settings.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().BoolVar(&opts.listing, "listing", false, "draw the word frequency listing")
	cmd.Flags().BoolVar(&opts.static, "static", false, "omit hover highlighting from SVG output")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, settings *settingsFlags, ro *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	doc, sampled, err := c.readInput(args)
	if err != nil {
		return err
	}
	if sampled {
		printWarning(c.Stdout, "No input text, using the bundled sample")
	}

	opts, err := settings.options(cmd)
	if err != nil {
		return err
	}
	opts.Formats = parseFormats(ro.formats)
	opts.Listing = ro.listing
	opts.Static = ro.static
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}

	runner, err := c.newRunner(settings.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, doc, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.Formats, ", ")))

	base := outputBase(ro.output, args)
	paths := make([]string, 0, len(result.Artifacts))
	for format, data := range result.Artifacts {
		path := outputPath(ro.output, base, format, len(opts.Formats))
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	printSuccess(c.Stdout, "Rendered %d words", result.Stats.Words)
	printStats(c.Stdout, result.Stats.Words, result.Stats.Characters, result.Stats.Distinct, result.CacheInfo.LayoutHit)
	for _, p := range paths {
		printFile(c.Stdout, p)
	}
	if result.Layout.Unique != nil {
		printDetail(c.Stdout, "all %d distinct words used by %q", result.Layout.Unique.DistinctCount, result.Layout.Unique.Text)
	}
	printNextStep(c.Stdout, "Explore interactively", "wordtower explore "+inputArg(args))
	return nil
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// outputBase returns the path without extension that artifacts are named after.
func outputBase(output string, args []string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSuffix(args[0], filepath.Ext(args[0]))
	}
	return appName
}

// outputPath names the artifact for format. A single format keeps an
// explicit --output as given.
func outputPath(output, base, format string, n int) string {
	if n == 1 && output != "" {
		return output
	}
	return base + "." + format
}
