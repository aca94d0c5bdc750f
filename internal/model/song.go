package model

import (
	"regexp"
	"strings"
)

// SegueMarker prefixes a song that flows from the previous one without a break.
const SegueMarker = ">"

var trailingNote = regexp.MustCompile(`^(.+?)(\*.*?)$`)

// Song is a song entry split into its display parts.
//
// The parser never builds Songs; it keeps the raw entry text. Song is used by
// the presentation layers (book, tagger, TUI) that need the clean title.
type Song struct {
	// Name is the title without markers.
	Name string

	// Segue reports a leading ">" marker.
	Segue bool

	// Note is the trailing note, e.g. "*" or "* (with guest)". Empty if none.
	Note string
}

// ParseSong splits a raw song entry into name, segue flag and note.
//
// Example:
//
//	ParseSong("> Sugar Magnolia*") // {Name: "Sugar Magnolia", Segue: true, Note: "*"}
func ParseSong(entry string) Song {
	var song Song

	if strings.HasPrefix(entry, SegueMarker) {
		song.Segue = true
		entry = strings.TrimSpace(entry[len(SegueMarker):])
	}

	switch {
	case strings.HasSuffix(entry, "*"):
		entry = entry[:len(entry)-1]
		song.Note = "*"
	case strings.Contains(entry, "*"):
		if m := trailingNote.FindStringSubmatch(entry); m != nil {
			entry = m[1]
			song.Note = m[2]
		}
	}

	song.Name = strings.TrimSpace(entry)
	return song
}
