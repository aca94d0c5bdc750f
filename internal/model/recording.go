package model

import "fmt"

// Recording is one audio file of a show paired with the song it holds.
//
// Recordings are created by matching a directory of files to a show's songs
// in performance order. They carry everything the tagger and the playlist
// creator need:
//   - Number is the track number across the whole show (1-indexed)
//   - SetIndex is the 1-indexed set, used as the disc number
//   - Song is the raw song entry as stored in the set
//
// Example:
//
//	rec := NewRecording(show, 2, "II", 9, "> Drums", "/tapes/1977-05-08/d2t03.mp3")
//	rec.Title() // "Drums"
type Recording struct {
	// Show is the show the recording belongs to.
	Show *Show

	// SetIndex is the 1-indexed position of the set within the show.
	SetIndex int

	// SetLabel is the label of that set.
	SetLabel string

	// Number is the track number across the show (1-indexed).
	Number int

	// Song is the raw song entry.
	Song string

	// Path is the local audio file.
	Path string
}

// NewRecording creates a Recording.
func NewRecording(show *Show, setIndex int, setLabel string, number int, song, path string) *Recording {
	return &Recording{
		Show:     show,
		SetIndex: setIndex,
		SetLabel: setLabel,
		Number:   number,
		Song:     song,
		Path:     path,
	}
}

// Title returns the song name without segue or note markers.
func (r *Recording) Title() string {
	return ParseSong(r.Song).Name
}

// Album returns the album title used for tags: "<formatted date> <venue>, <location>".
func (r *Recording) Album() string {
	return fmt.Sprintf("%s %s, %s", r.Show.FormattedDate(), r.Show.VenueDisplay(), r.Show.LocationDisplay())
}

// SongSlot is one song position of a show in performance order.
type SongSlot struct {
	SetIndex int
	SetLabel string
	Song     string
}

// Slots flattens the show's sets into song slots in performance order.
func (s *Show) Slots() []SongSlot {
	slots := make([]SongSlot, 0, s.Len())
	for i, set := range s.Sets {
		for _, song := range set.Songs {
			slots = append(slots, SongSlot{SetIndex: i + 1, SetLabel: set.Label, Song: song})
		}
	}
	return slots
}
