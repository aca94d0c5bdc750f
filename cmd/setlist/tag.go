package main

import (
	"fmt"

	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/recording"
	"github.com/handiism/setlist/internal/setlist"
	"github.com/spf13/cobra"
)

func init() {
	tagCmd.RunE = tagRecordings
	flags := tagCmd.Flags()
	flags.StringVar(&tagCmd.furtherID, "further-id", "", `Pick one of several shows on the date, e.g. "(late)"`)
	flags.BoolVar(&tagCmd.playlist, "playlist", false, "Create a playlist file")
	flags.StringVar(&tagCmd.format, "playlist-format", "", "Playlist format: m3u, pls, wpl, zpl (overrides config)")
	flags.BoolVar(&tagCmd.dryRun, "dry-run", false, "Show the pairing without writing tags")
	rootCmd.AddCommand(&tagCmd.Command)
}

var tagCmd = struct {
	cobra.Command
	furtherID string
	playlist  bool
	format    string
	dryRun    bool
}{
	Command: cobra.Command{
		Use:   "tag <date> <dir>",
		Short: "Write ID3 tags to a show's recordings from the setlist",
		Long: `Pairs the .mp3 files of <dir>, sorted by name, with the songs of the
show played on <date> (YYYY/MM/DD) and writes their ID3 tags.`,
		Args: cobra.ExactArgs(2),
	},
}

func tagRecordings(cmd *cobra.Command, args []string) error {
	date, dir := args[0], args[1]

	settings := rootCmd.settings
	if tagCmd.playlist {
		settings.CreatePlaylist = true
	}
	if tagCmd.format != "" {
		settings.PlaylistFormat = tagCmd.format
	}

	shows, err := loadShows(cmd.Context())
	if err != nil {
		return err
	}
	show, err := pickShow(setlist.NewIndex(shows).ByDate(date), date, tagCmd.furtherID)
	if err != nil {
		return err
	}

	manager := recording.NewManager(rootCmd.fs, settings, rootCmd.logger, printProgress)
	recordings, err := manager.Scan(show, dir)
	if err != nil {
		return err
	}

	if tagCmd.dryRun {
		for _, rec := range recordings {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-3s %-40s %s\n", rec.Number, rec.SetLabel, rec.Title(), rec.Path)
		}
		return nil
	}

	return manager.Tag(cmd.Context(), recordings)
}

// pickShow selects the show to tag among those played on date.
func pickShow(candidates []*model.Show, date, furtherID string) (*model.Show, error) {
	switch {
	case len(candidates) == 0:
		return nil, fmt.Errorf("no show on %s", date)
	case furtherID != "":
		for _, s := range candidates {
			if s.FurtherID == furtherID {
				return s, nil
			}
		}
		return nil, fmt.Errorf("no %s show on %s", furtherID, date)
	case len(candidates) > 1:
		return nil, fmt.Errorf("%d shows on %s, pick one with --further-id", len(candidates), date)
	default:
		return candidates[0], nil
	}
}
