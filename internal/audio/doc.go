// Package audio writes ID3 tags to show recordings and builds playlists for
// them.
//
// # ID3 Tagging
//
// A Tagger fills the frames of one recording from its show:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(rec, coverJPEG)
//
// The tagger supports:
//   - Artist, Album Artist (the band)
//   - Album (formatted date, venue and location)
//   - Track Title (song name without segue or note markers)
//   - Track Number, Disc Number (the set)
//   - Year, Recording Date
//   - Comments (show notes)
//   - Cover Art
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true)
//	content := creator.CreatePlaylist(recordings)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
