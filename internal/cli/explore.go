package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/render/styles"
	"github.com/matzehuels/wordtower/pkg/selection"
)

func (c *CLI) exploreCommand() *cobra.Command {
	var settings settingsFlags

	cmd := &cobra.Command{
		Use:   "explore [file|-]",
		Short: "Browse a layout interactively",
		Long: `Browse the layout of a text in the terminal. Use ↑/↓ to move the word
highlight through the distinct words and ←/→ to move the punctuation
highlight through the symbols that occur. The layout is computed once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := c.readInput(args)
			if err != nil {
				return err
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

			state := selection.New(opts.Selection)
			state.Reconcile(l)

			p := tea.NewProgram(newExploreModel(l, state), tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	settings.register(cmd)
	return cmd
}

var (
	exploreKeyStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	exploreHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	exploreMarkStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	explorePuncActive = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// exploreModel is the bubbletea model behind "explore". It only moves the
// selection over a fixed layout.
type exploreModel struct {
	layout  *layout.Layout
	state   *selection.State
	symbols []string
	word    int // index into layout.Keys, -1 when the selection is not a key
	punc    int // index into symbols, -1 when the symbol did not occur
	width   int
}

func newExploreModel(l *layout.Layout, state *selection.State) exploreModel {
	symbols := make([]string, len(l.Punctuation))
	for i, s := range l.Punctuation {
		symbols[i] = s.Kind.Symbol
	}
	m := exploreModel{layout: l, state: state, symbols: symbols, width: 80}
	m.sync()
	return m
}

// sync points the cursors at the current selection.
func (m *exploreModel) sync() {
	cur := m.state.Current()
	m.word = indexOf(m.layout.Keys, cur.Word)
	m.punc = indexOf(m.symbols, cur.Punctuation)
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.word = step(m.word, -1, len(m.layout.Keys))
			if m.word >= 0 {
				m.state.SelectWord(m.layout.Keys[m.word])
			}
		case "down", "j":
			m.word = step(m.word, 1, len(m.layout.Keys))
			if m.word >= 0 {
				m.state.SelectWord(m.layout.Keys[m.word])
			}
		case "left", "h":
			m.punc = step(m.punc, -1, len(m.symbols))
			if m.punc >= 0 {
				m.state.SelectPunctuation(m.symbols[m.punc])
			}
		case "right", "l":
			m.punc = step(m.punc, 1, len(m.symbols))
			if m.punc >= 0 {
				m.state.SelectPunctuation(m.symbols[m.punc])
			}
		case "r":
			m.state.Reset()
			m.sync()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// step moves i by delta, wrapping within [0, n). From -1 it enters at 0.
func step(i, delta, n int) int {
	if n == 0 {
		return -1
	}
	if i < 0 {
		return 0
	}
	return (i + delta + n) % n
}

func (m exploreModel) View() string {
	var b strings.Builder
	l := m.layout
	cur := m.state.Current()

	b.WriteString(StyleTitle.Render("Word tower"))
	b.WriteString("\n")
	b.WriteString(exploreHelpStyle.Render("↑/↓ word  ←/→ punctuation  r reset  q quit"))
	b.WriteString("\n\n")

	if l.Empty() {
		b.WriteString(StyleDim.Render("No words."))
		b.WriteString("\n")
		return b.String()
	}

	m.writeStream(&b, cur)
	b.WriteString("\n\n")

	b.WriteString(exploreKeyStyle.Render("Word"))
	b.WriteString(StyleSelected.Render(fmt.Sprintf("%q", cur.Word)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  used %d of %d times", l.Frequencies[cur.Word], l.WordCount)))
	b.WriteString("\n")

	b.WriteString(exploreKeyStyle.Render("Punctuation"))
	if s, ok := l.Series(cur.Punctuation); ok {
		b.WriteString(explorePuncActive.Render(cur.Punctuation))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %s, %s", s.Kind.Name, positions(s))))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%s does not occur", cur.Punctuation)))
	}
	b.WriteString("\n")

	if u := l.Unique; u != nil {
		b.WriteString(exploreKeyStyle.Render("Last new"))
		b.WriteString(exploreMarkStyle.Render(fmt.Sprintf("%q", u.Text)))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  word %d of %d, %d distinct", u.SequenceIndex+1, l.WordCount, u.DistinctCount)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.writeSymbols(cur))
	return b.String()
}

// writeStream prints the tokens wrapped to the terminal width, coloring the
// selected word like the drawing does.
func (m exploreModel) writeStream(b *strings.Builder, cur selection.Selection) {
	col := 0
	for i, g := range m.layout.Geometries {
		w := lipgloss.Width(g.Text)
		if col > 0 && col+1+w > m.width {
			b.WriteString("\n")
			col = 0
		} else if i > 0 {
			b.WriteString(" ")
			col++
		}
		style := StyleUnselected
		if g.Key == cur.Word {
			style = StyleSelected
		}
		text := style.Render(g.Text)
		if m.layout.Unique != nil && m.layout.Unique.SequenceIndex == i {
			text = exploreMarkStyle.Render("▼") + text
			w++
		}
		b.WriteString(text)
		col += w
	}
}

func (m exploreModel) writeSymbols(cur selection.Selection) string {
	if len(m.symbols) == 0 {
		return StyleDim.Render("no punctuation")
	}
	parts := make([]string, len(m.symbols))
	for i, sym := range m.symbols {
		if sym == cur.Punctuation {
			parts[i] = explorePuncActive.Render("[" + sym + "]")
		} else {
			parts[i] = StyleDim.Render(" " + sym + " ")
		}
	}
	return strings.Join(parts, " ")
}

// positions lists the words a series occurs in, using the listing tooltip text.
func positions(s punctuation.Series) string {
	words := make([]string, len(s.Appearances))
	for i, a := range s.Appearances {
		words[i] = fmt.Sprintf("#%d", a.SequenceIndex+1)
	}
	return fmt.Sprintf("%s at %s", styles.ListingTooltip(s.Kind.Symbol, s.Count()), strings.Join(words, " "))
}
