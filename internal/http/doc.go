// Package http fetches setlist logs published at http(s) URLs.
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Read a remote log
//	data, err := client.Get(ctx, "https://example.org/gd_setlists.tsv")
//
//	// Download it with a progress callback
//	n, err := client.DownloadFile(ctx, url, afero.NewOsFs(), "data/gd_setlists.tsv", func(written, total int64) {
//	    fmt.Printf("%d bytes\n", written)
//	})
//
// Non-200 responses are reported as *StatusError.
package http
