package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "setlist"

// Client fetches remote setlist data.
//
// Client provides:
//   - A configured User-Agent header
//   - Timeout handling
//   - Streaming reads for parsing remote logs in place
//   - File download with progress tracking
//
// Example usage:
//
//	client := NewClient()
//
//	// Stream a remote log into the parser
//	body, err := client.Open(ctx, "https://example.org/gd_setlists.tsv")
//	defer body.Close()
//
//	// Or save it locally
//	err = client.DownloadFile(ctx, url, fs, "data/gd_setlists.tsv", func(written, total int64) {
//	    fmt.Printf("%d / %d bytes\n", written, total)
//	})
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client with a 60 second timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: DefaultUserAgent,
	}
}

// NewClientWith wraps an existing http.Client, e.g. one from httptest.
func NewClientWith(hc *http.Client) *Client {
	return &Client{httpClient: hc, userAgent: DefaultUserAgent}
}

// ProgressWriter wraps a writer to track download progress.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  contentLength,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, response.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes, or -1 when unknown.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Status)
}

// Open performs a GET request and returns the response body. The caller
// must close it.
func (c *Client) Open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return resp.Body, resp.ContentLength, nil
}

// Get performs a GET request and returns the whole response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	body, _, err := c.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return io.ReadAll(body)
}

// DownloadFile streams url into destPath on fs, creating parent directories.
//
// onProgress may be nil. The file is removed if the transfer fails.
func (c *Client) DownloadFile(ctx context.Context, url string, fs afero.Fs, destPath string, onProgress func(written, total int64)) (int64, error) {
	body, total, err := c.Open(ctx, url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	if err := fs.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return 0, err
	}

	file, err := fs.Create(destPath)
	if err != nil {
		return 0, err
	}

	var writer io.Writer = file
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   file,
			Total:    total,
			OnUpdate: onProgress,
		}
	}

	n, err := io.Copy(writer, body)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = fs.Remove(destPath)
		return n, fmt.Errorf("download %s: %w", url, err)
	}

	return n, nil
}
