package render

import (
	"io"
	"strconv"

	"github.com/handiism/setlist/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

var summaryHeader = []string{"Date", "Venue", "Location", "Sets", "Songs"}

// Summary writes an ASCII table with one row per show.
func Summary(w io.Writer, shows []*model.Show) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.ColumnAligns = []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight}
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})

	table.Header(summaryHeader)

	for _, show := range shows {
		date := show.Date
		if show.FurtherID != "" {
			date += " " + show.FurtherID
		}
		row := []string{
			date,
			show.VenueDisplay(),
			show.LocationDisplay(),
			strconv.Itoa(len(show.Sets)),
			strconv.Itoa(show.Len()),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}
