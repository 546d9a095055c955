// Package table reads and writes the tab-delimited tables every stage
// of the pipeline speaks.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write emits a header row followed by the data rows, tab-delimited.
func Write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile is Write against a freshly created file.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// ReadAll reads every row of a tab-delimited table, without imposing a
// fixed column count.
func ReadAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}
