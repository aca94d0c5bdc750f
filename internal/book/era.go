package book

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownEra is returned for era names not in Eras.
var ErrUnknownEra = errors.New("unknown era")

// ErrNoShows is returned when a selection matches no show.
var ErrNoShows = errors.New("no shows found for the selection")

// Era is a named range of years, both ends inclusive.
type Era struct {
	Name  string
	Start int
	End   int
}

// Eras are the volumes GenerateAll writes, in order.
var Eras = []Era{
	{Name: "60s", Start: 1966, End: 1969},
	{Name: "70s", Start: 1970, End: 1979},
	{Name: "80s", Start: 1980, End: 1989},
	{Name: "90s", Start: 1990, End: 1995},
}

// LookupEra finds an era by name, case-insensitively.
func LookupEra(name string) (Era, error) {
	for _, era := range Eras {
		if strings.EqualFold(era.Name, name) {
			return era, nil
		}
	}
	return Era{}, fmt.Errorf("%w: %q", ErrUnknownEra, name)
}

// Contains reports whether year falls within the era.
func (e Era) Contains(year int) bool {
	return year >= e.Start && year <= e.End
}

// Selection picks the shows of one volume. The zero value selects every
// show. Year takes precedence over Era.
type Selection struct {
	Year int
	Era  string
}

// VolumeName returns the {volume} placeholder value: a year, an era name
// or "complete".
func (s Selection) VolumeName() string {
	switch {
	case s.Year != 0:
		return strconv.Itoa(s.Year)
	case s.Era != "":
		return strings.ToLower(s.Era)
	default:
		return "complete"
	}
}
