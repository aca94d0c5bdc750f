package model

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// VolumeConfig holds path formatting settings for book volumes.
//
// FileNameFormat supports placeholders that are replaced with actual values:
//   - {volume} - "complete", an era name such as "70s", or a year
//   - {layout} - the layout style ("compact" or "full")
//
// Example:
//
//	cfg := &VolumeConfig{
//	    OutputDir:      "/books",
//	    FileNameFormat: "gd-{volume}.html",
//	}
//	// Results in paths like "/books/gd-70s.html"
type VolumeConfig struct {
	// OutputDir is the directory volumes are written to.
	OutputDir string

	// FileNameFormat is the template for volume file names, extension included.
	FileNameFormat string

	// Layout is the layout style substituted for {layout}.
	Layout string
}

// Volume names a slice of the show list rendered as one book.
type Volume struct {
	// Name is "complete", an era name or a year.
	Name string

	// Title is the heading of the title page.
	Title string

	// YearRange is the human readable range, e.g. "1970–1979".
	YearRange string

	// Shows are the shows in the volume, in log order.
	Shows []*Show
}

// YearVolumeName returns the volume name used for a single year.
func YearVolumeName(year int) string {
	return strconv.Itoa(year)
}

// Path computes the output file path of the volume.
//
// Invalid filename characters are replaced with underscores and overlong
// names are truncated the same way album paths used to be.
func (v *Volume) Path(cfg *VolumeConfig) string {
	fileName := cfg.FileNameFormat
	if fileName == "" {
		fileName = "{volume}.html"
	}
	fileName = strings.ReplaceAll(fileName, "{volume}", v.Name)
	fileName = strings.ReplaceAll(fileName, "{layout}", cfg.Layout)
	fileName = sanitizeFileName(fileName)

	path := filepath.Join(cfg.OutputDir, fileName)

	// Limit total path length for Windows compatibility
	if len(path) >= 260 {
		ext := filepath.Ext(fileName)
		maxLen := 11 - len(ext)
		if maxLen > 0 && maxLen < len(fileName) {
			path = filepath.Join(cfg.OutputDir, fileName[:maxLen]+ext)
		}
	}

	return path
}

var (
	invalidChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots   = regexp.MustCompile(`\.+$`)
	repeatedSpaces = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("gd-1977/05.html") // Returns "gd-1977_05.html"
func sanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaces.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
