// Package ioutils provides file system, data source and image utilities.
//
// All file operations go through an afero.Fs so that callers can use the
// real disk (afero.NewOsFs) or an in-memory filesystem in tests.
//
// # File Operations
//
//	err := ioutils.WriteFile(fs, "/books/gd-70s.html", page)
//	files, err := ioutils.ListFiles(fs, "/tapes/1977-05-08", ".mp3")
//
// # Data Sources
//
// A Source reads the setlist log from a local path or an http(s) URL:
//
//	src := ioutils.NewSource(fs, http.NewClient())
//	rows, err := src.ReadRows(ctx, settings.DataPath)
//
// # Image Processing
//
//	svc := ioutils.NewImageService(fs)
//	cover, err := svc.LoadCover(ctx, "art/cover.png", 1000)
package ioutils
