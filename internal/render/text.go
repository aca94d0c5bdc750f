// Package render turns shows into text, HTML fragments and summary tables.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/handiism/setlist/internal/model"
)

// FormatSong splits a raw song entry into its display name, whether it
// segues from the previous song, and its trailing note.
func FormatSong(entry string) (name string, segue bool, note string) {
	s := model.ParseSong(entry)
	return s.Name, s.Segue, s.Note
}

// ShowText renders a show as plain text: the header line, the notes if
// any, then each set separated by a blank line.
//
//	1977/05/08: Barton Hall Cornell University (Ithaca, NY)
//
//	I
//	New Minglewood Blues
//	Loser
//
//	E
//	One More Saturday Night
func ShowText(show *model.Show) string {
	var sb strings.Builder
	sb.WriteString(show.String())
	if show.FurtherID != "" {
		sb.WriteString(" ")
		sb.WriteString(show.FurtherID)
	}
	if show.Notes != nil {
		sb.WriteString("\n")
		sb.WriteString(*show.Notes)
	}
	for _, set := range show.Sets {
		sb.WriteString("\n\n")
		sb.WriteString(set.String())
	}
	sb.WriteString("\n")
	return sb.String()
}

// WriteShows writes every show with ShowText, one blank line apart.
func WriteShows(w io.Writer, shows []*model.Show) error {
	for i, show := range shows {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ShowText(show)); err != nil {
			return fmt.Errorf("write show %s: %w", show.Date, err)
		}
	}
	return nil
}
