package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gd-complete.html", "gd-complete.html"},
		{"gd:70s.html", "gd_70s.html"},
		{"gd-1977/05.html", "gd-1977_05.html"},
		{"gd|<era>.html", "gd__era_.html"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVolume_Path(t *testing.T) {
	cfg := &VolumeConfig{
		OutputDir:      "/books",
		FileNameFormat: "gd-{volume}-{layout}.html",
		Layout:         "compact",
	}

	vol := &Volume{Name: "70s"}
	if got, want := vol.Path(cfg), "/books/gd-70s-compact.html"; got != want {
		t.Errorf("Volume.Path() = %q, want %q", got, want)
	}

	year := &Volume{Name: YearVolumeName(1972)}
	if got, want := year.Path(&VolumeConfig{OutputDir: "/books"}), "/books/1972.html"; got != want {
		t.Errorf("Volume.Path() = %q, want %q", got, want)
	}
}

func TestShow_String(t *testing.T) {
	tests := []struct {
		name string
		show *Show
		want string
	}{
		{
			name: "single venue",
			show: &Show{Date: "1977/05/08", Venue1: "Barton Hall", City: "Ithaca", StateOrCountry: "NY"},
			want: "1977/05/08: Barton Hall (Ithaca, NY)",
		},
		{
			name: "two venue lines",
			show: &Show{
				Date:           "1977/05/08",
				Venue1:         "Barton Hall",
				Venue2:         Optional("Cornell University"),
				City:           "Ithaca",
				StateOrCountry: "NY",
			},
			want: "1977/05/08: Barton Hall Cornell University (Ithaca, NY)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.show.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSet_String(t *testing.T) {
	set := NewSet("I", Optional("electric"), "China Cat Sunflower")
	set.Add("> I Know You Rider")

	want := "I (electric)\nChina Cat Sunflower\n> I Know You Rider"
	if got := set.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	plain := NewSet("E", nil, "One More Saturday Night")
	if got, want := plain.String(), "E\nOne More Saturday Night"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := plain.DisplayLabel(); got != "Encore" {
		t.Errorf("DisplayLabel() = %q, want %q", got, "Encore")
	}
}

func TestShow_FormattedDate(t *testing.T) {
	tests := []struct {
		date      string
		furtherID string
		want      string
	}{
		{"1977/05/08", "", "May 08, 1977"},
		{"1970/02/13", "(late)", "February 13, 1970 (late)"},
		{"1966/??/??", "", "1966/??/??"},
		{"spring 1966", "", "spring 1966"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			show := &Show{Date: tt.date, FurtherID: tt.furtherID}
			if got := show.FormattedDate(); got != tt.want {
				t.Errorf("FormattedDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShow_DateParts(t *testing.T) {
	show := &Show{Date: "1993/05/27"}
	if show.Year() != 1993 || show.Month() != 5 || show.Day() != 27 {
		t.Errorf("date parts = %d/%d/%d, want 1993/5/27", show.Year(), show.Month(), show.Day())
	}
	if (&Show{Date: "unknown"}).Year() != 0 {
		t.Error("Year() of a malformed date should be 0")
	}
}

func TestShow_PageGroupings(t *testing.T) {
	// 5/27/1993
	set1 := &Set{Label: "1", Songs: []string{
		"Shakedown Street", "The Same Thing", "Dire Wolf", "Beat It On Down The Line",
		"High Time", "When I Paint My Masterpiece", "Cumberland Blues", "Promised Land",
	}}
	set2 := &Set{Label: "2", Songs: []string{
		"Picasso Moon", "> Fire On The Mountain", "> Wave To The Wind", "Cassidy",
		"> Uncle John's Band", "> Cassidy", "> Drums", "> Space", "> The Other One",
		"> Wharf Rat", "> Sugar Magnolia",
	}}
	encore := &Set{Label: "E", Songs: []string{"Gloria"}}

	show := &Show{
		Date:           "1993/05/27",
		Venue1:         "Cal Expo Amphitheatre",
		City:           "Sacramento",
		StateOrCountry: "CA",
		Sets:           []*Set{set1, set2, encore},
	}

	groupings := show.PageGroupings(DefaultPageLines)
	want := [][]*Set{{set1}, {set2, encore}}
	if diff := cmp.Diff(want, groupings); diff != "" {
		t.Errorf("PageGroupings() mismatch (-want +got):\n%s", diff)
	}
	if got := show.Layout(DefaultPageLines); got != LayoutSpread {
		t.Errorf("Layout() = %v, want %v", got, LayoutSpread)
	}

	short := &Show{Sets: []*Set{encore}}
	if got := short.Layout(0); got != LayoutSingle {
		t.Errorf("Layout() = %v, want %v", got, LayoutSingle)
	}
}

func TestParseSong(t *testing.T) {
	tests := []struct {
		entry string
		want  Song
	}{
		{"Dark Star", Song{Name: "Dark Star"}},
		{"> Drums", Song{Name: "Drums", Segue: true}},
		{"Sugar Magnolia*", Song{Name: "Sugar Magnolia", Note: "*"}},
		{"> Bertha* (with Ned Lagin)", Song{Name: "Bertha", Segue: true, Note: "* (with Ned Lagin)"}},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseSong(tt.entry)); diff != "" {
				t.Errorf("ParseSong(%q) mismatch (-want +got):\n%s", tt.entry, diff)
			}
		})
	}
}

func TestShow_Slots(t *testing.T) {
	show := &Show{Sets: []*Set{
		{Label: "I", Songs: []string{"Bertha", "Good Lovin'"}},
		{Label: "E", Songs: []string{"U.S. Blues"}},
	}}

	want := []SongSlot{
		{SetIndex: 1, SetLabel: "I", Song: "Bertha"},
		{SetIndex: 1, SetLabel: "I", Song: "Good Lovin'"},
		{SetIndex: 2, SetLabel: "E", Song: "U.S. Blues"},
	}
	if diff := cmp.Diff(want, show.Slots()); diff != "" {
		t.Errorf("Slots() mismatch (-want +got):\n%s", diff)
	}
	if show.Len() != 3 {
		t.Errorf("Len() = %d, want 3", show.Len())
	}
}
