package setlist

import (
	"fmt"
	"io"

	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/tsv"
)

// TrimStats reports what a trim pass kept.
type TrimStats struct {
	RowsIn  int
	RowsOut int
	Shows   int
	Dropped int
}

// WriteShows re-serializes the retained rows of shows, in show order.
func WriteShows(w io.Writer, shows []*model.Show) (int, error) {
	wr := tsv.NewWriter(w)
	rows := 0
	for _, show := range shows {
		for _, row := range show.Rows {
			if err := wr.Write(row); err != nil {
				return rows, fmt.Errorf("show %s: %w", show.Date, err)
			}
			rows++
		}
	}
	return rows, wr.Flush()
}

// Trim parses the log read from r and writes back only the rows that belong
// to non-empty shows. Running Trim on its own output reproduces it exactly.
func (p *Parser) Trim(r io.Reader, w io.Writer) (TrimStats, error) {
	rows, err := tsv.NewReader(r).ReadAll()
	if err != nil {
		return TrimStats{}, err
	}

	shows, err := p.Parse(rows)
	if err != nil {
		return TrimStats{}, err
	}

	out, err := WriteShows(w, shows)
	if err != nil {
		return TrimStats{}, err
	}

	return TrimStats{
		RowsIn:  len(rows),
		RowsOut: out,
		Shows:   len(shows),
		Dropped: len(rows) - out,
	}, nil
}
