// Package model defines the core data structures used throughout
// the setlist application.
//
// # Show
//
// Show represents one concert with its header metadata and ordered sets:
//
//	fmt.Println(show)                 // 1977/05/08: Barton Hall (Ithaca, NY)
//	fmt.Println(show.FormattedDate()) // May 08, 1977
//	fmt.Println(show.Len())           // total songs across all sets
//
// # Set
//
// Set is one ordered block of songs within a show:
//
//	fmt.Println(set)                // I (electric)\nChina Cat Sunflower\n...
//	fmt.Println(set.DisplayLabel()) // Set I
//
// # Book Layout
//
// PageGroupings and Layout decide how a show is spread over book pages, and
// Volume with VolumeConfig computes where a rendered book is written:
//
//	cfg := &model.VolumeConfig{OutputDir: "output", FileNameFormat: "gd-{volume}.html"}
//	vol := &model.Volume{Name: "70s"}
//	fmt.Println(vol.Path(cfg)) // output/gd-70s.html
//
// # Recording
//
// Recording pairs an audio file of a show with the song it contains.
package model
