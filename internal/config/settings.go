package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/handiism/setlist/internal/audio"
	"github.com/handiism/setlist/internal/model"
	"github.com/spf13/afero"
)

// Settings holds all configuration options.
type Settings struct {
	// Data locations; a path may also be an http(s) URL.
	DataPath    string `json:"data_path" yaml:"data_path"`
	TrimmedPath string `json:"trimmed_path" yaml:"trimmed_path"`
	JSONLPath   string `json:"jsonl_path" yaml:"jsonl_path"`

	// Book settings
	OutputDir            string `json:"output_dir" yaml:"output_dir"`
	VolumeFileNameFormat string `json:"volume_file_name_format" yaml:"volume_file_name_format"`
	Layout               string `json:"layout" yaml:"layout"` // compact, full
	Stylesheet           string `json:"stylesheet" yaml:"stylesheet"`
	IncludeYearDividers  bool   `json:"include_year_dividers" yaml:"include_year_dividers"`
	MaxLinesPerPage      int    `json:"max_lines_per_page" yaml:"max_lines_per_page"`
	MaxConcurrentVolumes int    `json:"max_concurrent_volumes" yaml:"max_concurrent_volumes"`

	// Cover settings
	CoverImagePath string `json:"cover_image_path" yaml:"cover_image_path"`
	CoverMaxSize   int    `json:"cover_max_size" yaml:"cover_max_size"`

	// Recording settings
	Band                 string `json:"band" yaml:"band"`
	MaxConcurrentTagging int    `json:"max_concurrent_tagging" yaml:"max_concurrent_tagging"`
	ModifyTags           bool   `json:"modify_tags" yaml:"modify_tags"`
	CreatePlaylist       bool   `json:"create_playlist" yaml:"create_playlist"`
	PlaylistFormat       string `json:"playlist_format" yaml:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended          bool   `json:"m3u_extended" yaml:"m3u_extended"`

	// Logging
	LogLevel  string `json:"log_level" yaml:"log_level"`   // debug, info, warn, error
	LogFormat string `json:"log_format" yaml:"log_format"` // console, json
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataPath:    "data/gd_setlists.tsv",
		TrimmedPath: "data/gd_setlists_trimmed.tsv",
		JSONLPath:   "data/gd_setlists.jsonl",

		OutputDir:            "output",
		VolumeFileNameFormat: "gd-{volume}.html",
		Layout:               "compact",
		IncludeYearDividers:  true,
		MaxLinesPerPage:      model.DefaultPageLines,
		MaxConcurrentVolumes: 4,

		CoverMaxSize: 1000,

		Band:                 "Grateful Dead",
		MaxConcurrentTagging: 8,
		ModifyTags:           true,
		CreatePlaylist:       true,
		PlaylistFormat:       "m3u",
		M3UExtended:          true,

		LogLevel:  "info",
		LogFormat: "console",
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "setlist.yaml"
	}
	return filepath.Join(dir, "setlist", "settings.yaml")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads settings from a JSON or YAML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs is Load on an arbitrary filesystem.
func LoadFs(fs afero.Fs, path string) (*Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	return s.SaveFs(afero.NewOsFs(), path)
}

// SaveFs is Save on an arbitrary filesystem.
func (s *Settings) SaveFs(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, data, 0644)
}

// ToVolumeConfig converts settings to VolumeConfig.
func (s *Settings) ToVolumeConfig() *model.VolumeConfig {
	return &model.VolumeConfig{
		OutputDir:      s.OutputDir,
		FileNameFormat: s.VolumeFileNameFormat,
		Layout:         s.Layout,
	}
}

// ToTagConfig converts settings to TagConfig.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	if s.Band != "" {
		cfg.Band = s.Band
	}
	return cfg
}

// ToPlaylistFormat converts the playlist format name.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	return audio.ParsePlaylistFormat(s.PlaylistFormat)
}
