// Package recording tags a directory of show recordings from the setlist.
//
// # Manager
//
// The Manager coordinates the process:
//
//  1. List the audio files of a show directory, sorted by name
//  2. Pair them with the show's songs in performance order
//  3. Tag the files concurrently with ID3 metadata
//  4. Write a playlist (optional)
//
// # Basic Usage
//
//	manager := recording.NewManager(afero.NewOsFs(), settings, logger, func(e progress.Event) {
//	    fmt.Println(e.Message)
//	})
//
//	recordings, err := manager.Scan(show, "/tapes/gd1977-05-08")
//	if err != nil {
//	    log.Fatal(err) // e.g. ErrCountMismatch
//	}
//
//	err = manager.Tag(ctx, recordings)
package recording
