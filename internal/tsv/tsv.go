// Package tsv reads and writes the tab-separated setlist log.
//
// Rows are quote-aware: a field may be wrapped in double quotes to carry
// tabs, quotes or newlines. Empty fields, trailing ones included, are kept
// because the field count drives row classification. Blank lines yield no
// row at all.
//
//	rd := tsv.NewReader(file)
//	rows, err := rd.ReadAll()
//
//	wr := tsv.NewWriter(out)
//	err = wr.WriteAll(rows)
package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Delimiter separates fields in a row.
const Delimiter = '\t'

// Reader yields rows from a tab-separated stream, preserving file order.
type Reader struct {
	r    *csv.Reader
	line int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{r: cr}
}

// Read returns the next row, or io.EOF when the input is exhausted.
func (r *Reader) Read() ([]string, error) {
	row, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read row %d: %w", r.line+1, err)
	}
	r.line++
	return row, nil
}

// ReadAll reads every remaining row.
func (r *Reader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Writer serializes rows as tab-separated, quote-aware lines.
type Writer struct {
	w *csv.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	return &Writer{w: cw}
}

// Write writes one row. Call Flush when done.
func (w *Writer) Write(row []string) error {
	if err := w.w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// WriteAll writes rows and flushes.
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("flush rows: %w", err)
	}
	return nil
}
