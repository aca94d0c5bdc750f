package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Show represents one concert reconstructed from the setlist log.
//
// A Show holds the header metadata of the concert and its ordered sets:
//   - Date is an opaque key, normally "YYYY/MM/DD"
//   - FurtherID distinguishes multiple shows on one date, e.g. "(early)"
//   - Venue2, Notes are optional and nil when the source field is empty
//
// Lines and Rows retain the source rows that produced the show so the
// trimmer can re-serialize them unchanged.
//
// Example:
//
//	show := &Show{Date: "1977/05/08", Venue1: "Barton Hall", City: "Ithaca", StateOrCountry: "NY"}
//	fmt.Println(show) // 1977/05/08: Barton Hall (Ithaca, NY)
type Show struct {
	// Date is the show date as written in the log.
	Date string

	// FurtherID is an optional qualifier such as "(early)" or "(late)".
	FurtherID string

	// Venue1 is the venue name.
	Venue1 string

	// Venue2 is the optional second venue line (e.g. a university name).
	Venue2 *string

	// City is the city the show took place in.
	City string

	// StateOrCountry is the state abbreviation or country name.
	StateOrCountry string

	// Notes is optional free text about the show.
	Notes *string

	// Sets contains the sets in performance order.
	Sets []*Set

	// Lines is the raw-line log: every source row, fields rejoined with a tab.
	Lines []string

	// Rows holds the same source rows as separate fields.
	Rows [][]string
}

// Len returns the total number of songs across all sets.
func (s *Show) Len() int {
	return lo.SumBy(s.Sets, func(set *Set) int { return set.Len() })
}

// Empty reports whether the show has no songs at all.
func (s *Show) Empty() bool {
	return s.Len() == 0
}

// AddRow records a source row on the raw-line log.
func (s *Show) AddRow(row []string) {
	s.Lines = append(s.Lines, strings.Join(row, "\t"))
	s.Rows = append(s.Rows, append([]string(nil), row...))
}

// LastSet returns the most recently added set, or nil if there is none.
func (s *Show) LastSet() *Set {
	if len(s.Sets) == 0 {
		return nil
	}
	return s.Sets[len(s.Sets)-1]
}

// Year returns the year component of a "YYYY/MM/DD" date, or 0.
func (s *Show) Year() int { return s.datePart(0) }

// Month returns the month component of a "YYYY/MM/DD" date, or 0.
func (s *Show) Month() int { return s.datePart(1) }

// Day returns the day component of a "YYYY/MM/DD" date, or 0.
func (s *Show) Day() int { return s.datePart(2) }

func (s *Show) datePart(i int) int {
	parts := strings.Split(s.Date, "/")
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

// FormattedDate converts "YYYY/MM/DD" to a readable date like "May 08, 1977".
//
// Dates in any other shape are returned verbatim. The FurtherID, if any, is
// appended after a space.
func (s *Show) FormattedDate() string {
	date := s.Date
	if parts := strings.Split(s.Date, "/"); len(parts) == 3 {
		if y, m, d := s.Year(), s.Month(), s.Day(); y > 0 && m >= 1 && m <= 12 && d >= 1 {
			date = time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Format("January 02, 2006")
		}
	}
	if s.FurtherID != "" {
		date += " " + s.FurtherID
	}
	return date
}

// VenueDisplay returns the venue, joined with Venue2 when present.
func (s *Show) VenueDisplay() string {
	if s.Venue2 != nil && *s.Venue2 != "" {
		return s.Venue1 + ", " + *s.Venue2
	}
	return s.Venue1
}

// LocationDisplay returns "City, State".
func (s *Show) LocationDisplay() string {
	return fmt.Sprintf("%s, %s", s.City, s.StateOrCountry)
}

// String renders the show header as "{date}: {venue1}[ {venue2}] ({city}, {state})".
func (s *Show) String() string {
	var sb strings.Builder
	sb.WriteString(s.Date)
	sb.WriteString(": ")
	sb.WriteString(s.Venue1)
	if s.Venue2 != nil && *s.Venue2 != "" {
		sb.WriteString(" ")
		sb.WriteString(*s.Venue2)
	}
	sb.WriteString(fmt.Sprintf(" (%s, %s)", s.City, s.StateOrCountry))
	return sb.String()
}

// Optional returns nil for an empty string and a pointer to s otherwise.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
