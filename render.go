package boxer

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls how cell text is padded within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Option adjusts rendering behavior.
type Option func(*options)

type options struct {
	align     Alignment
	colAligns []Alignment
	rowSeps   bool
}

// WithAlignment sets the default alignment for every column.
// Default: AlignLeft.
func WithAlignment(a Alignment) Option {
	return func(o *options) { o.align = a }
}

// WithColumnAlignments sets per-column alignments. Columns beyond the given
// values fall back to the default alignment.
func WithColumnAlignments(aligns ...Alignment) Option {
	return func(o *options) { o.colAligns = aligns }
}

// WithRowSeparators draws a horizontal rule between adjacent body rows.
// Default: rows are separated only by the header rule.
func WithRowSeparators(v bool) Option {
	return func(o *options) { o.rowSeps = v }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render draws g with style s and returns the multi-line text block: top
// border, header row and rule (when a header is present), body rows, bottom
// border. The block ends with a single trailing newline.
func Render(s Style, g *Grid, opts ...Option) string {
	var sb strings.Builder
	// strings.Builder writes never fail.
	_ = Fprint(&sb, s, g, opts...)
	return sb.String()
}

// Fprint renders g with style s to w, line by line. The only failure mode
// is a write error from w.
func Fprint(w io.Writer, s Style, g *Grid, opts ...Option) error {
	o := buildOptions(opts)
	widths := g.columnWidths()
	if len(widths) == 0 {
		// Empty grid: a single zero-width column keeps the border-only
		// box well formed.
		widths = []int{0}
	}
	aligns := columnAligns(o, len(widths))

	if err := drawRule(w, s, widths, TopLeft, TopEdge, TopJoint, TopRight); err != nil {
		return err
	}
	if len(g.header) > 0 {
		if err := drawRow(w, s, g.header, widths, aligns); err != nil {
			return err
		}
		if err := drawRule(w, s, widths, MidLeft, TopEdge, MidJoint, MidRight); err != nil {
			return err
		}
	}
	for i, row := range g.rows {
		if o.rowSeps && i > 0 {
			if err := drawRule(w, s, widths, MidLeft, TopEdge, MidJoint, MidRight); err != nil {
				return err
			}
		}
		if err := drawRow(w, s, row, widths, aligns); err != nil {
			return err
		}
	}
	return drawRule(w, s, widths, BottomLeft, BottomEdge, BottomJoint, BottomRight)
}

func columnAligns(o options, numCols int) []Alignment {
	aligns := make([]Alignment, numCols)
	for i := range aligns {
		if i < len(o.colAligns) {
			aligns[i] = o.colAligns[i]
		} else {
			aligns[i] = o.align
		}
	}
	return aligns
}

func drawRule(w io.Writer, s Style, widths []int, left, fill, joint, right BorderPosition) error {
	var sb strings.Builder
	sb.WriteString(s.Glyph(left))
	for i, width := range widths {
		sb.WriteString(strings.Repeat(s.Glyph(fill), width+2))
		if i < len(widths)-1 {
			sb.WriteString(s.Glyph(joint))
		}
	}
	sb.WriteString(s.Glyph(right))
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// drawRow emits one physical line per visual line of the row's tallest
// cell. Cells shorter than the row height pad with empty lines. A single
// vertical glyph is shared between adjacent columns.
func drawRow(w io.Writer, s Style, cells []string, widths []int, aligns []Alignment) error {
	lines := make([][]string, len(widths))
	height := 1
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		lines[i] = strings.Split(cell, "\n")
		if len(lines[i]) > height {
			height = len(lines[i])
		}
	}
	vert := s.Glyph(VerticalEdge)
	for n := range height {
		var sb strings.Builder
		sb.WriteString(vert)
		for i, width := range widths {
			text := ""
			if n < len(lines[i]) {
				text = lines[i][n]
			}
			sb.WriteString(" ")
			sb.WriteString(alignCell(text, width, aligns[i]))
			sb.WriteString(" ")
			if i < len(widths)-1 {
				sb.WriteString(vert)
			}
		}
		sb.WriteString(vert)
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
