package book

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/handiism/setlist/internal/config"
	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/progress"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func show(date, venue string, songs ...string) *model.Show {
	return &model.Show{
		Date:           date,
		Venue1:         venue,
		City:           "San Francisco",
		StateOrCountry: "CA",
		Sets:           []*model.Set{{Label: "I", Songs: songs}},
	}
}

func testShows() []*model.Show {
	return []*model.Show{
		show("1969/02/27", "Fillmore West", "Dark Star", "> St. Stephen"),
		show("1977/05/08", "Barton Hall", "Loser"),
		show("1972/05/04", "Olympia Theatre", "Bertha"),
		show("1977/05/09", "War Memorial", "Help On The Way"),
	}
}

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.OutputDir = "/books"
	return s
}

func TestLookupEra(t *testing.T) {
	era, err := LookupEra("70S")
	require.NoError(t, err)
	assert.Equal(t, Era{Name: "70s", Start: 1970, End: 1979}, era)

	_, err = LookupEra("00s")
	assert.True(t, errors.Is(err, ErrUnknownEra))
}

func TestSelectionVolumeName(t *testing.T) {
	assert.Equal(t, "complete", Selection{}.VolumeName())
	assert.Equal(t, "70s", Selection{Era: "70s"}.VolumeName())
	assert.Equal(t, "1977", Selection{Year: 1977, Era: "70s"}.VolumeName())
}

func TestVolume(t *testing.T) {
	gen := NewGenerator(afero.NewMemMapFs(), testSettings(), nil, nil)

	tests := []struct {
		name      string
		sel       Selection
		title     string
		yearRange string
		dates     []string
	}{
		{
			name:      "complete",
			sel:       Selection{},
			title:     "Grateful Dead: Complete Setlists",
			yearRange: "1969–1977",
			dates:     []string{"1969/02/27", "1977/05/08", "1972/05/04", "1977/05/09"},
		},
		{
			name:      "era",
			sel:       Selection{Era: "70s"},
			title:     "Grateful Dead: The 70S",
			yearRange: "1970–1979",
			dates:     []string{"1977/05/08", "1972/05/04", "1977/05/09"},
		},
		{
			name:      "year",
			sel:       Selection{Year: 1977},
			title:     "Grateful Dead 1977",
			yearRange: "1977",
			dates:     []string{"1977/05/08", "1977/05/09"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vol, err := gen.Volume(testShows(), tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.title, vol.Title)
			assert.Equal(t, tt.yearRange, vol.YearRange)
			assert.Equal(t, tt.dates, showDates(vol.Shows))
		})
	}
}

func showDates(shows []*model.Show) []string {
	dates := make([]string, len(shows))
	for i, s := range shows {
		dates[i] = s.Date
	}
	return dates
}

func TestVolumeNoShows(t *testing.T) {
	gen := NewGenerator(afero.NewMemMapFs(), testSettings(), nil, nil)

	_, err := gen.Volume(testShows(), Selection{Year: 1995})
	assert.True(t, errors.Is(err, ErrNoShows), "error = %v", err)
}

func TestRenderGroupsByYear(t *testing.T) {
	gen := NewGenerator(afero.NewMemMapFs(), testSettings(), nil, nil)
	vol, err := gen.Volume(testShows(), Selection{Era: "70s"})
	require.NoError(t, err)

	doc := gen.Render(vol, nil)

	i1972 := strings.Index(doc, `<h1 class="year">1972</h1>`)
	i1977 := strings.Index(doc, `<h1 class="year">1977</h1>`)
	require.NotEqual(t, -1, i1972)
	require.NotEqual(t, -1, i1977)
	assert.Less(t, i1972, i1977)
	assert.Contains(t, doc, `<p class="show-count">2 shows</p>`)

	// shows keep log order within a year
	assert.Less(t, strings.Index(doc, "Barton Hall"), strings.Index(doc, "War Memorial"))
	assert.NotContains(t, doc, "<img")
}

func TestRenderWithoutDividers(t *testing.T) {
	settings := testSettings()
	settings.IncludeYearDividers = false
	gen := NewGenerator(afero.NewMemMapFs(), settings, nil, nil)

	vol, err := gen.Volume(testShows(), Selection{})
	require.NoError(t, err)

	assert.NotContains(t, gen.Render(vol, nil), "year-divider")
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()

	var events []progress.Event
	gen := NewGenerator(fs, testSettings(), nil, func(e progress.Event) { events = append(events, e) })

	path, err := gen.Generate(context.Background(), testShows(), Selection{Year: 1972})
	require.NoError(t, err)
	assert.Equal(t, "/books/gd-1972.html", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Olympia Theatre")
	assert.Contains(t, string(data), "<title>Grateful Dead 1972</title>")

	require.Len(t, events, 1)
	assert.Equal(t, progress.LevelSuccess, events[0].Level)
}

func TestGenerateWithCover(t *testing.T) {
	fs := afero.NewMemMapFs()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 20))))
	require.NoError(t, afero.WriteFile(fs, "/art/cover.png", buf.Bytes(), 0644))

	settings := testSettings()
	settings.CoverImagePath = "/art/cover.png"
	settings.CoverMaxSize = 10
	gen := NewGenerator(fs, settings, nil, nil)

	path, err := gen.Generate(context.Background(), testShows(), Selection{})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<img class="cover" alt="" src="data:image/jpeg;base64,`)
}

func TestGenerateMissingCover(t *testing.T) {
	settings := testSettings()
	settings.CoverImagePath = "/art/missing.png"
	gen := NewGenerator(afero.NewMemMapFs(), settings, nil, nil)

	_, err := gen.Generate(context.Background(), testShows(), Selection{})
	assert.Error(t, err)
}

func TestGenerateAll(t *testing.T) {
	fs := afero.NewMemMapFs()

	var (
		mu       sync.Mutex
		warnings []string
	)
	gen := NewGenerator(fs, testSettings(), nil, func(e progress.Event) {
		if e.Level == progress.LevelWarning {
			mu.Lock()
			warnings = append(warnings, e.Message)
			mu.Unlock()
		}
	})

	paths, err := gen.GenerateAll(context.Background(), testShows())
	require.NoError(t, err)

	assert.Equal(t, []string{"/books/gd-60s.html", "/books/gd-70s.html"}, paths)
	assert.ElementsMatch(t, []string{"No shows found for the 80s", "No shows found for the 90s"}, warnings)

	for _, p := range paths {
		exists, err := afero.Exists(fs, p)
		require.NoError(t, err)
		assert.True(t, exists, p)
	}
}

func TestGenerateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := NewGenerator(afero.NewMemMapFs(), testSettings(), nil, nil)
	_, err := gen.GenerateAll(ctx, testShows())
	assert.ErrorIs(t, err, context.Canceled)
}
