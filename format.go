package boxer

import (
	"fmt"
	"iter"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Pair is a single ordered key-value entry for [FormatPairs].
type Pair struct {
	Key   string
	Value string
}

// FormatSlice renders items as a single-column table without a header, one
// row per element. An element whose text spans multiple lines renders as a
// correspondingly taller row.
func FormatSlice[T any](s Style, items []T, opts ...Option) string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{displayText(item)}
	}
	return Render(s, &Grid{rows: rows}, opts...)
}

// FormatIter drains seq and renders the collected elements like
// [FormatSlice]. Column widths need every row before any output can be
// emitted, so the sequence is consumed eagerly; callers must pass a finite
// sequence, or FormatIter never returns.
func FormatIter[T any](s Style, seq iter.Seq[T], opts ...Option) string {
	var items []T
	for item := range seq {
		items = append(items, item)
	}
	return FormatSlice(s, items, opts...)
}

// FormatChan drains ch and renders the received elements like
// [FormatSlice]. It is a thin wrapper around [FormatIter] and returns once
// ch is closed.
func FormatChan[T any](s Style, ch <-chan T, opts ...Option) string {
	return FormatIter(s, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// FormatMap renders m as a two-column table headed "Key" and "Value", one
// row per entry in map iteration order. Go randomizes that order; callers
// needing deterministic output should sort into a []Pair and use
// [FormatPairs] instead.
func FormatMap[K comparable, V any](s Style, m map[K]V, opts ...Option) string {
	return FormatMapHeaders(s, m, "Key", "Value", opts...)
}

// FormatMapHeaders is [FormatMap] with custom column headers. When both
// headers are empty the table has no header row and no header rule.
func FormatMapHeaders[K comparable, V any](s Style, m map[K]V, keyHeader, valueHeader string, opts ...Option) string {
	rows := make([][]string, 0, len(m))
	for k, v := range m {
		rows = append(rows, []string{displayText(k), displayText(v)})
	}
	var header []string
	if keyHeader != "" || valueHeader != "" {
		header = []string{keyHeader, valueHeader}
	}
	return Render(s, &Grid{header: header, rows: rows}, opts...)
}

// FormatPairs renders ordered key-value pairs as a two-column table headed
// "Key" and "Value". It is the deterministic counterpart of [FormatMap].
func FormatPairs(s Style, pairs []Pair, opts ...Option) string {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p.Key, p.Value}
	}
	return Render(s, &Grid{header: []string{"Key", "Value"}, rows: rows}, opts...)
}

// FormatDisplay boxes the human-readable text of v: its String method when
// v implements [fmt.Stringer], fmt's %v verb otherwise. A multi-line
// representation becomes one row per line.
func FormatDisplay(s Style, v any, opts ...Option) string {
	return boxLines(s, displayText(v), opts...)
}

// FormatDebug boxes the diagnostic dump of v produced by go-spew, one row
// per line of the dump.
func FormatDebug(s Style, v any, opts ...Option) string {
	return boxLines(s, strings.TrimSuffix(spew.Sdump(v), "\n"), opts...)
}

// boxLines renders text as a single-column headerless grid, one row per
// line.
func boxLines(s Style, text string, opts ...Option) string {
	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = []string{line}
	}
	return Render(s, &Grid{rows: rows}, opts...)
}

func displayText(v any) string {
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", v)
}
