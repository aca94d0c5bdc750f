package dto

import "github.com/handiism/setlist/internal/model"

// JSONSet represents a set within a JSONShow.
type JSONSet struct {
	Label      string   `json:"label"`
	Annotation *string  `json:"annotation,omitempty"`
	Songs      []string `json:"songs"`
}

// FromSet converts a model.Set to its JSON shape.
func FromSet(s *model.Set) JSONSet {
	return JSONSet{
		Label:      s.Label,
		Annotation: s.Annotation,
		Songs:      append([]string(nil), s.Songs...),
	}
}

// ToSet converts the JSON shape back to a model.Set.
func (js *JSONSet) ToSet() *model.Set {
	return &model.Set{
		Label:      js.Label,
		Annotation: js.Annotation,
		Songs:      append([]string(nil), js.Songs...),
	}
}
