package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtower/pkg/render/styles"
)

func (c *CLI) wordsCommand() *cobra.Command {
	var (
		settings settingsFlags
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "words [file|-]",
		Short: "Print the word frequency listing",
		Long: `Print every distinct word key ordered by how often it is used, with the
font size the listing panel would draw it at. Ties keep the order in which
the words first appear.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, sampled, err := c.readInput(args)
			if err != nil {
				return err
			}
			if sampled {
				loggerFromContext(cmd.Context()).Warn("no input text, using bundled sample")
			}

			opts, err := settings.options(cmd)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(settings.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			l, err := runner.ComputeLayout(cmd.Context(), doc, opts)
			if err != nil {
				return err
			}
			entries, err := styles.Listing(l, opts.ListingMin, opts.ListingMax)
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			fmt.Fprintln(c.Stdout, StyleTitle.Render("Word frequencies"))
			printStats(c.Stdout, l.WordCount, l.CharacterCount, l.DistinctCount, false)
			fmt.Fprintln(c.Stdout, renderWordTable(entries, opts.Selection.Word))
			return nil
		},
	}

	settings.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n words (0 for all)")

	return cmd
}

// renderWordTable formats listing entries, highlighting the selected key.
func renderWordTable(entries []styles.ListingEntry, selected string) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		key := e.Key
		if key == "" {
			key = "(punctuation only)"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			key,
			strconv.Itoa(e.Count),
			fmt.Sprintf("%.0fpx", e.FontSize),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Word", "Uses", "Font").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(entries) {
				return base
			}
			switch {
			case entries[row].Key == selected:
				return base.Inherit(StyleSelected)
			case col == 0 || col == 3:
				return base.Foreground(colorDim)
			case col == 2:
				return base.Foreground(colorCyan)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}
