package setlist

import (
	"errors"
	"fmt"
)

// HeaderFields is the number of fields a show header row must have:
// date, band, venue1, venue2, city, state or country, notes.
const HeaderFields = 7

// ErrMalformedHeaderRow is matched by every *MalformedHeaderRowError.
//
// It is returned when a row that would start a new show does not have
// exactly HeaderFields fields:
//
//	shows, err := setlist.Parse(rows)
//	if errors.Is(err, setlist.ErrMalformedHeaderRow) {
//	    // fix the log and retry
//	}
var ErrMalformedHeaderRow = errors.New("malformed header row")

// MalformedHeaderRowError identifies the offending row of a failed parse.
type MalformedHeaderRowError struct {
	// Row is the 1-indexed position of the row in the input sequence.
	Row int

	// Raw is the row's fields rejoined with a tab.
	Raw string

	// Fields is the number of fields the row had.
	Fields int
}

func (e *MalformedHeaderRowError) Error() string {
	return fmt.Sprintf("row %d: malformed header row: %d fields, want %d: %q", e.Row, e.Fields, HeaderFields, e.Raw)
}

// Is reports whether target is ErrMalformedHeaderRow.
func (e *MalformedHeaderRowError) Is(target error) bool {
	return target == ErrMalformedHeaderRow
}
