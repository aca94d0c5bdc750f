package setlist

import (
	"strings"

	"github.com/handiism/setlist/internal/model"
	"github.com/samber/lo"
)

// Index looks shows up by date. Several shows can share a date (early and
// late shows); they keep their log order.
type Index struct {
	shows  []*model.Show
	byDate map[string][]*model.Show
}

// NewIndex indexes shows by date.
func NewIndex(shows []*model.Show) *Index {
	return &Index{
		shows:  shows,
		byDate: lo.GroupBy(shows, func(s *model.Show) string { return s.Date }),
	}
}

// All returns every show in log order.
func (idx *Index) All() []*model.Show {
	return idx.shows
}

// Len returns the number of indexed shows.
func (idx *Index) Len() int {
	return len(idx.shows)
}

// ByDate returns the shows played on date, or nil.
func (idx *Index) ByDate(date string) []*model.Show {
	return idx.byDate[date]
}

// Search returns the shows whose date, venue or location contains query,
// case-insensitively. An empty query matches every show.
func (idx *Index) Search(query string) []*model.Show {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return idx.shows
	}
	return lo.Filter(idx.shows, func(s *model.Show, _ int) bool {
		return strings.Contains(strings.ToLower(s.Date), query) ||
			strings.Contains(strings.ToLower(s.VenueDisplay()), query) ||
			strings.Contains(strings.ToLower(s.LocationDisplay()), query)
	})
}
