package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/wordtower/pkg/layout"
	"github.com/matzehuels/wordtower/pkg/punctuation"
	"github.com/matzehuels/wordtower/pkg/render/styles"
	"github.com/matzehuels/wordtower/pkg/selection"
)

const interactionCSS = `
    rect.word { cursor: pointer; stroke: none; }
    .hovered { fill: orange; }
    .listing .hovered { fill: orange; }
    .PUNC_ { cursor: pointer; }
    .punc-hovered { text-shadow: 0 0 6px orange; fill: darkorange; }`

const interactionJS = `
    function words(key, on) {
      document.querySelectorAll('.WORD_' + key).forEach(el => el.classList.toggle('hovered', on));
    }
    function puncs(name) {
      if (!name) {
        document.querySelectorAll('.punc-hovered').forEach(el => el.classList.remove('punc-hovered'));
        return;
      }
      document.querySelectorAll('.PUNC_').forEach(el => el.classList.toggle('punc-hovered', el.classList.contains('PUNC_' + name)));
    }
    document.querySelectorAll('[data-key]').forEach(el => {
      el.addEventListener('mouseenter', () => words(el.dataset.key, true));
      el.addEventListener('mouseleave', () => words(el.dataset.key, false));
    });
    const selected = document.querySelector('svg').dataset.punctuation;
    document.querySelectorAll('[data-punctuation]').forEach(el => {
      el.addEventListener('mouseenter', () => puncs(el.dataset.punctuation));
      el.addEventListener('mouseleave', () => puncs(selected));
    });`

const (
	markerArea      = 230.0
	punctuationSize = 80.0
	keyFontSize     = 16.0
	listingPanel    = 260.0
	listingGap      = 8.0
	axisTicks       = 10
	tickLength      = 6.0
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	sel     selection.Selection
	listing []styles.ListingEntry
	script  bool
}

// WithSelection sets the highlighted word and symbol.
func WithSelection(s selection.Selection) SVGOption {
	return func(r *svgRenderer) { r.sel = s }
}

// WithListing adds the frequency listing panel. Entries should come from
// [styles.Listing].
func WithListing(entries []styles.ListingEntry) SVGOption {
	return func(r *svgRenderer) { r.listing = entries }
}

// WithoutInteraction omits the hover script and styles.
func WithoutInteraction() SVGOption {
	return func(r *svgRenderer) { r.script = false }
}

// RenderSVG draws l as a standalone SVG document.
func RenderSVG(l *layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{
		sel:    selection.NewDefault().Current(),
		script: true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	width, height := l.FrameWidth, l.FrameHeight
	if len(r.listing) > 0 {
		width += listingPanel
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" data-punctuation="%s">`+"\n",
		width, height, width, height, styles.EscapeXML(punctuationName(l, r.sel.Punctuation)))

	if !l.Empty() {
		renderAxes(&buf, l)
		renderKey(&buf, l)
		renderWords(&buf, l, r.sel)
		renderMarker(&buf, l)
		renderPunctuation(&buf, l, r.sel)
	}
	if len(r.listing) > 0 {
		renderListing(&buf, l.FrameWidth, r.listing, r.sel)
	}
	if r.script {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", interactionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", interactionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// punctuationName returns the display name of the selected symbol, including
// configured symbols that never appear.
func punctuationName(l *layout.Layout, symbol string) string {
	if k, ok := l.Kind(symbol); ok {
		return k.Name
	}
	if s, ok := l.Series(symbol); ok {
		return s.Kind.Name
	}
	return ""
}

// flipY converts a layout y (growing in reading order) into SVG space so the
// first word sits at the bottom of the plot.
func flipY(l *layout.Layout, y float64) float64 {
	return l.FrameHeight - y - l.MarginY - l.Geometries[0].Height
}

func renderAxes(buf *bytes.Buffer, l *layout.Layout) {
	xs, ys := l.XScale(), l.YScale()
	baseY := l.FrameHeight - l.MarginY

	buf.WriteString(`  <g class="axis" stroke="#000" font-size="10" font-family="` + styles.EscapeXML(styles.FontFamily) + `">` + "\n")
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", xs.RangeMin, baseY, xs.RangeMax, baseY)
	for _, v := range xs.Ticks(axisTicks) {
		x := xs.Map(v)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, baseY, x, baseY+tickLength)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" stroke="none">%s</text>`+"\n", x, baseY+tickLength+10, tickLabel(v))
	}

	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", l.MarginX, ys.RangeMin, l.MarginX, ys.RangeMax)
	for _, v := range ys.Ticks(axisTicks) {
		y := ys.Map(v)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", l.MarginX-tickLength, y, l.MarginX, y)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="end" stroke="none">%s</text>`+"\n", l.MarginX-tickLength-2, y+3, tickLabel(v))
	}
	buf.WriteString("  </g>\n")
}

func tickLabel(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func renderKey(buf *bytes.Buffer, l *layout.Layout) {
	xs, ys := l.XScale(), l.YScale()
	chars, words := float64(l.CharacterCount), float64(l.WordCount)
	x := xs.Map(chars * .01)

	writeText(buf, x, ys.Map(words*.04), fmt.Sprintf("X: Characters Used / %d", l.CharacterCount))
	writeText(buf, x, ys.Map(words*.07), fmt.Sprintf("Y: Words Remaining / %d", l.WordCount))

	if l.Unique == nil {
		return
	}
	writeTriangle(buf, xs.Map(chars*.015), ys.Map(words*.1))
	caption := fmt.Sprintf("%q ~ last of %d unique words used", l.Unique.Text, l.Unique.DistinctCount)
	writeText(buf, xs.Map(chars*.025), ys.Map(words*.115), caption)
}

func writeText(buf *bytes.Buffer, x, y float64, s string) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="black">%s</text>`+"\n",
		x, y, styles.EscapeXML(styles.FontFamily), keyFontSize, styles.EscapeXML(s))
}

// writeTriangle draws a downward triangle of markerArea centered on (x, y).
func writeTriangle(buf *bytes.Buffer, x, y float64) {
	side := math.Sqrt(4 * markerArea / math.Sqrt(3))
	h := side * math.Sqrt(3) / 2
	fmt.Fprintf(buf, `  <path class="marker" d="M0,%.2f L%.2f,%.2f L%.2f,%.2f Z" transform="translate(%.1f,%.1f) rotate(180)" fill="red" stroke="black"/>`+"\n",
		-2*h/3, side/2, h/3, -side/2, h/3, x, y)
}

func renderWords(buf *bytes.Buffer, l *layout.Layout, sel selection.Selection) {
	buf.WriteString(`  <g class="words">` + "\n")
	for _, g := range l.Geometries {
		fmt.Fprintf(buf, `    <rect class="word %s" data-key="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"><title>%s</title></rect>`+"\n",
			styles.WordClass(g.Key), g.Key,
			g.X+l.MarginX, flipY(l, g.Y), g.Width, g.Height,
			styles.WordFill(g.Key == sel.Word),
			styles.EscapeXML(styles.WordTooltip(g, l.Frequencies[g.Key])))
	}
	buf.WriteString("  </g>\n")
}

func renderMarker(buf *bytes.Buffer, l *layout.Layout) {
	if l.Unique == nil {
		return
	}
	writeTriangle(buf, l.Unique.X+l.MarginX, l.YScale().Map(float64(l.WordCount)*.99))
}

func renderPunctuation(buf *bytes.Buffer, l *layout.Layout, sel selection.Selection) {
	ys := l.YScale()
	words := float64(l.WordCount)

	buf.WriteString(`  <g class="punctuation">` + "\n")
	for _, s := range l.Punctuation {
		classes := []string{"PUNC_", styles.PunctuationClass(s.Kind)}
		if s.Kind.Symbol == sel.Punctuation {
			classes = append(classes, "punc-hovered")
		}
		for _, a := range s.Appearances {
			y := ys.Map(punctuation.VerticalPosition(a.OccurrenceRank, s.Count(), words))
			fmt.Fprintf(buf, `    <text class="%s" data-punctuation="%s" transform="translate(%.2f,%.2f)" font-size="%.0fpx">%s<title>%s</title></text>`+"\n",
				styles.EscapeXML(strings.Join(classes, " ")), styles.EscapeXML(s.Kind.Name), a.X+l.MarginX, y, punctuationSize,
				styles.EscapeXML(s.Kind.Symbol), styles.EscapeXML(styles.PunctuationTooltip(a, s)))
		}
	}
	buf.WriteString("  </g>\n")
}

func renderListing(buf *bytes.Buffer, frameWidth float64, entries []styles.ListingEntry, sel selection.Selection) {
	x := frameWidth + listingGap
	y := 0.0

	fmt.Fprintf(buf, `  <g class="listing" font-family="%s">`+"\n", styles.EscapeXML(styles.FontFamily))
	for _, e := range entries {
		y += e.FontSize
		fmt.Fprintf(buf, `    <text class="%s" data-key="%s" x="%.1f" y="%.1f" font-size="%.1fpx" fill="%s">%s<title>%s</title></text>`+"\n",
			styles.WordClass(e.Key), e.Key, x, y, e.FontSize, styles.WordFill(e.Key == sel.Word),
			styles.EscapeXML(e.Key), styles.EscapeXML(styles.ListingTooltip(e.Key, e.Count)))
	}
	buf.WriteString("  </g>\n")
}
