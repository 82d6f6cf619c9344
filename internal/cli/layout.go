package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtower/pkg/pipeline"
)

func (c *CLI) layoutCommand() *cobra.Command {
	var (
		settings settingsFlags
		output   string
	)

	cmd := &cobra.Command{
		Use:   "layout [file|-]",
		Short: "Compute a layout and print it as JSON",
		Long: `Compute the word layout of a text and print it as JSON.

The text is read from the given file, or from stdin when the argument is
omitted or "-". Empty input falls back to a bundled sample.`,
		Example: `  wordtower layout speech.txt
  echo "the cat and the hat." | wordtower layout --width 1200`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args, &settings, output)
		},
	}

	settings.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, args []string, settings *settingsFlags, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	doc, sampled, err := c.readInput(args)
	if err != nil {
		return err
	}
	if sampled {
		logger.Warn("no input text, using bundled sample")
	}

	opts, err := settings.options(cmd)
	if err != nil {
		return err
	}
	opts.Formats = []string{pipeline.FormatJSON}

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
	prog.done(fmt.Sprintf("Laid out %d words", result.Stats.Words))

	data := result.Artifacts[pipeline.FormatJSON]
	if output == "" {
		_, err := c.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess(c.Stdout, "Wrote layout")
	printFile(c.Stdout, output)
	return nil
}
