package main

import (
	"fmt"

	"github.com/handiism/setlist/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	bookCmd.RunE = generateBook
	flags := bookCmd.Flags()
	flags.IntVar(&bookCmd.year, "year", 0, "Generate a single year")
	flags.StringVar(&bookCmd.era, "era", "", "Generate an era: 60s, 70s, 80s, 90s")
	flags.BoolVar(&bookCmd.all, "all", false, "Generate every era as a separate volume")
	flags.StringVar(&bookCmd.layout, "layout", "", "Layout style: compact or full (overrides config)")
	flags.StringVarP(&bookCmd.output, "output", "o", "", "Output directory (overrides config)")
	flags.StringVar(&bookCmd.cover, "cover", "", "Cover image for the title page (overrides config)")
	bookCmd.MarkFlagsMutuallyExclusive("year", "era", "all")
	rootCmd.AddCommand(&bookCmd.Command)
}

var bookCmd = struct {
	cobra.Command
	year   int
	era    string
	all    bool
	layout string
	output string
	cover  string
}{
	Command: cobra.Command{
		Use:   "book",
		Short: "Generate HTML setlist books",
		Args:  cobra.NoArgs,
	},
}

func generateBook(cmd *cobra.Command, args []string) error {
	settings := rootCmd.settings
	if bookCmd.layout != "" {
		if bookCmd.layout != "compact" && bookCmd.layout != "full" {
			return fmt.Errorf("invalid layout %q: want compact or full", bookCmd.layout)
		}
		settings.Layout = bookCmd.layout
	}
	if bookCmd.output != "" {
		settings.OutputDir = bookCmd.output
	}
	if bookCmd.cover != "" {
		settings.CoverImagePath = bookCmd.cover
	}
	if bookCmd.era != "" {
		if _, err := book.LookupEra(bookCmd.era); err != nil {
			return err
		}
	}

	shows, err := loadShows(cmd.Context())
	if err != nil {
		return err
	}

	gen := book.NewGenerator(rootCmd.fs, settings, rootCmd.logger, printProgress)

	if bookCmd.all {
		paths, err := gen.GenerateAll(cmd.Context(), shows)
		if err != nil {
			return err
		}
		success("Generated %d volumes", len(paths))
		return nil
	}

	_, err = gen.Generate(cmd.Context(), shows, book.Selection{Year: bookCmd.year, Era: bookCmd.era})
	return err
}
