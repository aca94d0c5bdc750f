package recording

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/handiism/setlist/internal/audio"
	"github.com/handiism/setlist/internal/config"
	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/progress"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShow() *model.Show {
	return &model.Show{
		Date:           "1970/02/13",
		FurtherID:      "(late)",
		Venue1:         "Fillmore East",
		City:           "New York",
		StateOrCountry: "NY",
		Sets: []*model.Set{
			{Label: "I", Songs: []string{"Dark Star", "> That's It For The Other One"}},
			{Label: "E", Songs: []string{"Uncle John's Band*"}},
		},
	}
}

func TestPair(t *testing.T) {
	recs, err := Pair(testShow(), []string{"a.mp3", "b.mp3", "c.mp3"})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, 1, recs[0].SetIndex)
	assert.Equal(t, 2, recs[1].Number)
	assert.Equal(t, "That's It For The Other One", recs[1].Title())
	assert.Equal(t, "E", recs[2].SetLabel)
	assert.Equal(t, 2, recs[2].SetIndex)
	assert.Equal(t, "c.mp3", recs[2].Path)
}

func TestPairMismatch(t *testing.T) {
	_, err := Pair(testShow(), []string{"a.mp3"})
	assert.True(t, errors.Is(err, ErrCountMismatch), "error = %v", err)
}

func TestScan(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"d1t02.mp3", "d2t01.mp3", "d1t01.mp3", "notes.txt"} {
		require.NoError(t, afero.WriteFile(fs, "/tapes/"+name, nil, 0644))
	}

	m := NewManager(fs, config.DefaultSettings(), nil, nil)
	recs, err := m.Scan(testShow(), "/tapes")
	require.NoError(t, err)

	assert.Equal(t, "/tapes/d1t01.mp3", recs[0].Path)
	assert.Equal(t, "Dark Star", recs[0].Title())
	assert.Equal(t, "/tapes/d2t01.mp3", recs[2].Path)
}

func TestPlaylistName(t *testing.T) {
	assert.Equal(t, "1970-02-13 (late).pls", PlaylistName(testShow(), audio.FormatPLS))

	show := testShow()
	show.FurtherID = ""
	assert.Equal(t, "1970-02-13.m3u", PlaylistName(show, audio.FormatM3U))
}

func TestTag(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"d1t01.mp3", "d1t02.mp3", "d2t01.mp3"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, make([]byte, 64), 0644))
		files = append(files, path)
	}

	recs, err := Pair(testShow(), files)
	require.NoError(t, err)

	var (
		mu     sync.Mutex
		events []progress.Event
	)
	m := NewManager(afero.NewOsFs(), config.DefaultSettings(), nil, func(e progress.Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	require.NoError(t, m.Tag(context.Background(), recs))

	tagged, total := m.Progress()
	assert.Equal(t, int32(3), tagged)
	assert.Equal(t, int32(3), total)

	tag, err := id3v2.Open(files[2], id3v2.Options{Parse: true})
	require.NoError(t, err)
	assert.Equal(t, "Uncle John's Band", tag.Title())
	assert.Equal(t, "3", tag.GetTextFrame("TRCK").Text)
	require.NoError(t, tag.Close())

	playlist, err := os.ReadFile(filepath.Join(dir, "1970-02-13 (late).m3u"))
	require.NoError(t, err)
	assert.Contains(t, string(playlist), "#EXTINF:-1,Set I - Dark Star\nd1t01.mp3\n")

	last := events[len(events)-1]
	assert.Equal(t, progress.LevelSuccess, last.Level)
}

func TestTagReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "d1t01.mp3")
	require.NoError(t, os.WriteFile(good, make([]byte, 64), 0644))

	recs, err := Pair(testShow(), []string{good, filepath.Join(dir, "missing1.mp3"), filepath.Join(dir, "missing2.mp3")})
	require.NoError(t, err)

	settings := config.DefaultSettings()
	settings.CreatePlaylist = false

	var (
		mu     sync.Mutex
		errs   int
		warned bool
	)
	m := NewManager(afero.NewOsFs(), settings, nil, func(e progress.Event) {
		mu.Lock()
		defer mu.Unlock()
		switch e.Level {
		case progress.LevelError:
			errs++
		case progress.LevelWarning:
			warned = true
		}
	})

	require.NoError(t, m.Tag(context.Background(), recs))

	tagged, total := m.Progress()
	assert.Equal(t, int32(1), tagged)
	assert.Equal(t, int32(3), total)
	assert.Equal(t, 2, errs)
	assert.True(t, warned)
}
