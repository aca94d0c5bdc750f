package ioutils

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/handiism/setlist/internal/http"
	"github.com/handiism/setlist/internal/tsv"
	"github.com/spf13/afero"
)

// IsURL reports whether location is an http(s) URL rather than a path.
func IsURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Source opens setlist data from a local file or a URL.
//
// Example:
//
//	src := NewSource(afero.NewOsFs(), http.NewClient())
//	rows, err := src.ReadRows(ctx, "https://example.org/gd_setlists.tsv")
type Source struct {
	fs     afero.Fs
	client *http.Client
}

// NewSource creates a Source. A nil client rejects URLs.
func NewSource(fs afero.Fs, client *http.Client) *Source {
	return &Source{fs: fs, client: client}
}

// Open returns a reader over the data at location. The caller closes it.
func (s *Source) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsURL(location) {
		if s.client == nil {
			return nil, fmt.Errorf("remote location %s: no http client", location)
		}
		body, _, err := s.client.Open(ctx, location)
		return body, err
	}
	return s.fs.Open(location)
}

// ReadRows reads every row of the tab-separated log at location.
func (s *Source) ReadRows(ctx context.Context, location string) ([][]string, error) {
	rc, err := s.Open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, err := tsv.NewReader(rc).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return rows, nil
}
