package config

import (
	"testing"

	"github.com/handiism/setlist/internal/audio"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	got, err := LoadFs(fs, "/etc/setlist/settings.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func TestLoadYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/settings.yml", []byte(
		"data_path: https://example.org/gd.tsv\n"+
			"layout: full\n"+
			"max_lines_per_page: 24\n"+
			"playlist_format: pls\n"), 0644))

	got, err := LoadFs(fs, "/cfg/settings.yml")
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/gd.tsv", got.DataPath)
	assert.Equal(t, "full", got.Layout)
	assert.Equal(t, 24, got.MaxLinesPerPage)
	assert.Equal(t, audio.FormatPLS, got.ToPlaylistFormat())
	// untouched keys keep defaults
	assert.Equal(t, "gd-{volume}.html", got.VolumeFileNameFormat)
}

func TestLoadJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "settings.json", []byte(`{"band": "Jerry Garcia Band", "modify_tags": false}`), 0644))

	got, err := LoadFs(fs, "settings.json")
	require.NoError(t, err)

	tc := got.ToTagConfig()
	assert.Equal(t, "Jerry Garcia Band", tc.Band)
	assert.False(t, tc.ModifyTags)
}

func TestLoadInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "settings.json", []byte("{"), 0644))

	_, err := LoadFs(fs, "settings.json")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	for _, path := range []string{"/cfg/settings.json", "/cfg/settings.yaml"} {
		t.Run(path, func(t *testing.T) {
			fs := afero.NewMemMapFs()

			want := DefaultSettings()
			want.OutputDir = "/srv/books"
			want.IncludeYearDividers = false
			require.NoError(t, want.SaveFs(fs, path))

			got, err := LoadFs(fs, path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestToVolumeConfig(t *testing.T) {
	s := DefaultSettings()
	s.OutputDir = "/books"

	vc := s.ToVolumeConfig()
	assert.Equal(t, "/books", vc.OutputDir)
	assert.Equal(t, "gd-{volume}.html", vc.FileNameFormat)
	assert.Equal(t, "compact", vc.Layout)
}
