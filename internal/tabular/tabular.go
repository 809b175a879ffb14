// Package tabular renders command results as aligned text tables and CSV files.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

const (
	bannerWidth = 60
	// maxCellWidth truncates long cells in Print, CSV output is never truncated.
	maxCellWidth = 50
)

// Table is a titled set of rows sharing the same headers.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Append adds a row to the table.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Print writes the table to w: a title banner, the aligned rows and the row count.
func (t *Table) Print(w io.Writer) error {
	if t.Title != "" {
		banner := strings.Repeat("=", bannerWidth)
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n", banner, t.Title, banner); err != nil {
			return err
		}
	}

	if t.Len() == 0 {
		_, err := fmt.Fprintln(w, "No data available.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeLine(tw, t.Headers)
	for _, row := range t.Rows {
		writeLine(tw, row)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nRows: %d\n", t.Len())
	return err
}

func writeLine(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\t")
		}
		_, _ = fmt.Fprint(w, truncate(sanitizeCell(c)))
	}
	_, _ = fmt.Fprintln(w)
}

// sanitizeCell keeps a cell on one line so tabwriter can align it.
func sanitizeCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxCellWidth {
		return s
	}
	r := []rune(s)
	return string(r[:maxCellWidth-3]) + "..."
}

// WriteCSV writes the headers and rows to a CSV file at path, replacing it if it exists.
func (t *Table) WriteCSV(path string) (err error) {
	// exported data, not a secret
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close CSV file: %w", cerr)
		}
	}()

	return t.Encode(file)
}

// Encode writes the table as CSV to w.
func (t *Table) Encode(w io.Writer) error {
	cw := csv.NewWriter(w)
	if len(t.Headers) > 0 {
		if err := cw.Write(t.Headers); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}
