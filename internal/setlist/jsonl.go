package setlist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/setlist/dto"
)

// WriteJSONL writes one JSON object per show, in order.
func WriteJSONL(w io.Writer, shows []*model.Show) error {
	enc := json.NewEncoder(w)
	for _, show := range shows {
		if err := enc.Encode(dto.FromShow(show)); err != nil {
			return fmt.Errorf("encode show %s: %w", show.Date, err)
		}
	}
	return nil
}

// ReadJSONL reads shows written by WriteJSONL. Blank lines are ignored.
func ReadJSONL(r io.Reader) ([]*model.Show, error) {
	var shows []*model.Show

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var js dto.JSONShow
		if err := json.Unmarshal([]byte(text), &js); err != nil {
			return nil, fmt.Errorf("line %d: failed to parse show JSON: %w", line, err)
		}
		shows = append(shows, js.ToShow())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

// Verify checks that two show lists agree on show count, dates, set counts
// and per-set song counts. It returns the first difference found.
func Verify(want, got []*model.Show) error {
	if len(want) != len(got) {
		return fmt.Errorf("different number of shows: %d vs %d", len(want), len(got))
	}
	for i := range want {
		a, b := want[i], got[i]
		if a.Date != b.Date {
			return fmt.Errorf("show %d: dates don't match: %s vs %s", i, a.Date, b.Date)
		}
		if len(a.Sets) != len(b.Sets) {
			return fmt.Errorf("show %d (%s): different number of sets: %d vs %d", i, a.Date, len(a.Sets), len(b.Sets))
		}
		for j := range a.Sets {
			if a.Sets[j].Len() != b.Sets[j].Len() {
				return fmt.Errorf("show %d (%s) set %d: different number of songs: %d vs %d",
					i, a.Date, j, a.Sets[j].Len(), b.Sets[j].Len())
			}
		}
	}
	return nil
}
