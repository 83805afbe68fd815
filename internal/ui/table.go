// Package ui renders aligned tabular CLI output.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// RenderTable writes rows in aligned columns. Headers may be empty, in
// which case only the rows are printed.
func RenderTable(out io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if len(headers) > 0 {
		if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
