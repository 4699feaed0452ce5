package boxer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrRaggedGrid reports a row whose cell count disagrees with the header
// (or, without a header, with the first row). Ragged input is rejected at
// construction; it is never padded or truncated.
var ErrRaggedGrid = errors.New("ragged grid")

// Grid is a rectangular table of string cells with an optional header row.
// Cells may contain newlines; such a row occupies one physical line per
// line of its tallest cell when rendered. A Grid is built fresh for each
// render and never mutated afterwards.
type Grid struct {
	header []string
	rows   [][]string
}

// NewGrid builds a Grid from an optional header and body rows. The column
// count is fixed by the header when present, otherwise by the first row;
// any row with a different cell count fails with [ErrRaggedGrid].
func NewGrid(header []string, rows [][]string) (*Grid, error) {
	cols := len(header)
	if cols == 0 && len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i, len(row), cols)
		}
	}
	return &Grid{header: header, rows: rows}, nil
}

// Columns returns the number of columns, zero for an empty grid.
func (g *Grid) Columns() int {
	if len(g.header) > 0 {
		return len(g.header)
	}
	if len(g.rows) > 0 {
		return len(g.rows[0])
	}
	return 0
}

// columnWidths computes the display width of each column: the maximum
// runewidth.StringWidth over every line of every cell, header included.
// Widths are in terminal columns, not runes or bytes, so wide East-Asian
// characters count as two and combining marks as zero.
func (g *Grid) columnWidths() []int {
	widths := make([]int, g.Columns())
	measure := func(row []string) {
		for i, cell := range row {
			for _, line := range strings.Split(cell, "\n") {
				if w := runewidth.StringWidth(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	measure(g.header)
	for _, row := range g.rows {
		measure(row)
	}
	return widths
}
