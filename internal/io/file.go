package ioutils

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// WriteFile writes data to path on fs, creating parent directories.
//
// The file is created with mode 0644 and truncated if it exists.
//
// Example:
//
//	err := WriteFile(fs, "/books/gd-70s.html", page)
func WriteFile(fs afero.Fs, path string, data []byte) error {
	if err := EnsureDir(fs, filepath.Dir(path)); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}

// EnsureDir creates a directory and its parents with mode 0755.
// An existing directory is not an error.
func EnsureDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, 0755)
}

// ListFiles returns the regular files in dir whose extension matches ext
// (case-insensitive, dot included), sorted by name.
func ListFiles(fs afero.Fs, dir, ext string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || (ext != "" && !strings.EqualFold(filepath.Ext(e.Name()), ext)) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	// afero.ReadDir returns entries sorted by name
	return files, nil
}
