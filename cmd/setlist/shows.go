package main

import (
	"fmt"

	"github.com/handiism/setlist/internal/render"
	"github.com/handiism/setlist/internal/setlist"
	"github.com/spf13/cobra"
)

func init() {
	showsCmd.RunE = listShows
	showsCmd.Flags().StringVar(&showsCmd.date, "date", "", "Only shows on this date (YYYY/MM/DD)")
	rootCmd.AddCommand(&showsCmd.Command)

	summaryCmd.RunE = summarize
	rootCmd.AddCommand(&summaryCmd.Command)
}

var showsCmd = struct {
	cobra.Command
	date string
}{
	Command: cobra.Command{
		Use:   "shows [query]",
		Short: "Print shows with their sets",
		Args:  cobra.MaximumNArgs(1),
	},
}

var summaryCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "summary [query]",
		Short: "Print a table of shows with set and song counts",
		Args:  cobra.MaximumNArgs(1),
	},
}

func listShows(cmd *cobra.Command, args []string) error {
	shows, err := loadShows(cmd.Context())
	if err != nil {
		return err
	}
	idx := setlist.NewIndex(shows)

	selected := idx.All()
	if showsCmd.date != "" {
		selected = idx.ByDate(showsCmd.date)
	}
	if len(args) == 1 {
		selected = setlist.NewIndex(selected).Search(args[0])
	}
	if len(selected) == 0 {
		return fmt.Errorf("no matching shows")
	}

	return render.WriteShows(cmd.OutOrStdout(), selected)
}

func summarize(cmd *cobra.Command, args []string) error {
	shows, err := loadShows(cmd.Context())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		shows = setlist.NewIndex(shows).Search(args[0])
	}

	if err := render.Summary(cmd.OutOrStdout(), shows); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d shows\n", len(shows))
	return nil
}
