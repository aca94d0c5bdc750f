package model

import "strings"

// DefaultSetLabel is used when the first song row of a show has no label.
const DefaultSetLabel = "I"

// EncoreLabel marks an encore set.
const EncoreLabel = "E"

// Set is one ordered block of songs within a show.
//
// Label is short text such as "I", "II" or "E". Annotation carries the
// optional "electric"/"acoustic" marker taken from the first song of the
// set. Songs keep their segue (">") and note ("*") markers verbatim.
type Set struct {
	// Label identifies the set. Never empty once parsed.
	Label string

	// Annotation is the optional set qualifier, without parentheses.
	Annotation *string

	// Songs are the song titles in performance order.
	Songs []string
}

// NewSet creates a set with a label and its first song.
func NewSet(label string, annotation *string, first string) *Set {
	return &Set{
		Label:      label,
		Annotation: annotation,
		Songs:      []string{first},
	}
}

// Len returns the number of songs in the set.
func (s *Set) Len() int {
	return len(s.Songs)
}

// Add appends a song to the set.
func (s *Set) Add(song string) {
	s.Songs = append(s.Songs, song)
}

// DisplayLabel returns "Encore" for the encore and "Set <label>" otherwise.
func (s *Set) DisplayLabel() string {
	if s.Label == EncoreLabel {
		return "Encore"
	}
	return "Set " + s.Label
}

// String renders the label, the optional parenthesized annotation, then one
// song per line.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteString(s.Label)
	if s.Annotation != nil {
		sb.WriteString(" (")
		sb.WriteString(*s.Annotation)
		sb.WriteString(")")
	}
	for _, song := range s.Songs {
		sb.WriteString("\n")
		sb.WriteString(song)
	}
	return sb.String()
}
