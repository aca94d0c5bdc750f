package dto

import (
	"github.com/handiism/setlist/internal/model"
)

// JSONShow is one line of the JSONL export.
type JSONShow struct {
	Date           string    `json:"date"`
	FurtherID      string    `json:"further_id,omitempty"`
	Venue1         string    `json:"venue1"`
	Venue2         *string   `json:"venue2,omitempty"`
	City           string    `json:"city"`
	StateOrCountry string    `json:"state_or_country"`
	Notes          *string   `json:"notes,omitempty"`
	Sets           []JSONSet `json:"sets"`
}

// FromShow converts a model.Show to its JSON shape. The raw-line log is not
// exported.
func FromShow(s *model.Show) JSONShow {
	js := JSONShow{
		Date:           s.Date,
		FurtherID:      s.FurtherID,
		Venue1:         s.Venue1,
		Venue2:         s.Venue2,
		City:           s.City,
		StateOrCountry: s.StateOrCountry,
		Notes:          s.Notes,
		Sets:           make([]JSONSet, 0, len(s.Sets)),
	}
	for _, set := range s.Sets {
		js.Sets = append(js.Sets, FromSet(set))
	}
	return js
}

// ToShow converts the JSON shape back to a model.Show.
func (js *JSONShow) ToShow() *model.Show {
	show := &model.Show{
		Date:           js.Date,
		FurtherID:      js.FurtherID,
		Venue1:         js.Venue1,
		Venue2:         js.Venue2,
		City:           js.City,
		StateOrCountry: js.StateOrCountry,
		Notes:          js.Notes,
	}
	for i := range js.Sets {
		show.Sets = append(show.Sets, js.Sets[i].ToSet())
	}
	return show
}
