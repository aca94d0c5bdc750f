// Package setlist rebuilds concert shows from a tab-separated setlist log.
//
// The log mixes two kinds of rows:
//
//	1977/05/08	Grateful Dead	Barton Hall	Cornell University	Ithaca	NY
//	I	New Minglewood Blues
//		Loser
//	II	Scarlet Begonias
//		> Fire On The Mountain
//
// A seven-field header row starts a show. Two-field rows carry a set label
// and a song; an empty label continues the current set.
//
// # Parsing
//
//	rows, err := tsv.NewReader(file).ReadAll()
//	shows, err := setlist.NewParser(logger).Parse(rows)
//	if errors.Is(err, setlist.ErrMalformedHeaderRow) {
//	    log.Fatal(err)
//	}
//
// # Trimming
//
// Trim rewrites the log keeping only the rows of non-empty shows:
//
//	stats, err := parser.Trim(in, out)
//
// # Lookup and Export
//
// Index groups shows by date, and WriteJSONL/ReadJSONL move shows to and
// from a line-delimited JSON file.
package setlist
