// Package boxer renders in-memory values as aligned, box-drawn tables for
// terminal or log output.
//
// Given a rectangular grid of string cells, the package computes per-column
// display widths, picks border glyphs from a [Style], and returns a
// multi-line text block with consistent borders and padding. It is a pure
// library: it never writes to a terminal itself, and rendering a
// well-formed grid never fails.
//
// # Styles
//
// A [Style] maps each [BorderPosition] (corner, edge, joint) to a glyph.
// [Thin], [Double], [ASCII], [Rounded], and [Heavy] are provided; any type
// implementing the single-method Glyph lookup is accepted. Styles are
// immutable and safe for concurrent use.
//
// # Formatting values
//
// The Format functions adapt common input shapes to a grid and render it:
//
//	fmt.Print(boxer.FormatSlice(boxer.Thin, []int{0, 1, 2, 3, 4}))
//	fmt.Print(boxer.FormatMap(boxer.Thin, map[string]int{"Jon": 38}))
//	fmt.Print(boxer.FormatDisplay(boxer.Double, "Hello World!"))
//
//   - [FormatSlice] — one column, one row per element, no header
//   - [FormatIter], [FormatChan] — like FormatSlice after draining the
//     sequence or channel (the input must be finite)
//   - [FormatMap], [FormatMapHeaders] — two columns with a "Key"/"Value"
//     header, one row per entry in map iteration order
//   - [FormatPairs] — ordered two-column rendering for deterministic output
//   - [FormatDisplay] — boxes a value's human-readable text, one row per
//     line
//   - [FormatDebug] — boxes a go-spew diagnostic dump of the value
//   - [FormatYAML], [FormatJSON] — box a value's encoded document
//
// Go randomizes map iteration, so [FormatMap] output order is not stable
// across runs; sort into a []Pair and use [FormatPairs] when order matters.
//
// # Grids
//
// [NewGrid] builds a grid directly from a header and rows for callers that
// already have tabular data. Rows must all have the same cell count;
// ragged input fails with [ErrRaggedGrid]. [Render] returns the block as a
// string and [Fprint] writes it to an [io.Writer].
//
// # Layout
//
// Column widths are display widths measured with go-runewidth, so wide
// East-Asian characters count as two columns and combining marks as zero.
// Cells are padded with one space on each side; adjacent columns share a
// single vertical glyph. Text is left-aligned unless [WithAlignment] or
// [WithColumnAlignments] says otherwise, and [WithRowSeparators] draws a
// rule between body rows. Cells may contain newlines; such rows render one
// physical line per line of the tallest cell.
//
// An empty grid renders as a minimal border-only box rather than failing.
package boxer
