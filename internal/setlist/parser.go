package setlist

import (
	"strings"

	"github.com/handiism/setlist/internal/model"
	"go.uber.org/zap"
)

// Set annotations recognized at the start of a set's first song.
var setAnnotations = []string{"electric", "acoustic"}

// Show qualifiers recognized at the start of a header's notes field.
var furtherIDs = []string{"(early)", "(late)"}

// Parser rebuilds shows from the rows of a setlist log.
//
// Each row is classified on its own, using only the show being built so far:
//   - an empty row is skipped
//   - a two-field row (label, song) starts a new set or continues the last one
//   - a two-field row before any header is discarded
//   - a seven-field row is a header that closes the current show and opens a new one
//
// Shows without songs are dropped. A Parser holds no state between calls and
// may be shared by goroutines parsing independent inputs.
//
// Example usage:
//
//	rows, _ := tsv.NewReader(file).ReadAll()
//	shows, err := NewParser(logger).Parse(rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, show := range shows {
//	    fmt.Println(show)
//	}
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a new Parser. A nil logger disables logging.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse rebuilds shows from rows with a non-logging Parser.
func Parse(rows [][]string) ([]*model.Show, error) {
	return NewParser(nil).Parse(rows)
}

// Parse classifies rows one by one and returns the non-empty shows in input
// order.
//
// Returns a *MalformedHeaderRowError if a row that would start a show does not
// have exactly HeaderFields fields. Nothing is returned alongside the error.
func (p *Parser) Parse(rows [][]string) ([]*model.Show, error) {
	var (
		shows   []*model.Show
		current *model.Show
	)

	flush := func() {
		if current == nil {
			return
		}
		if current.Empty() {
			p.logger.Debug("dropping empty show", zap.String("date", current.Date), zap.String("venue", current.Venue1))
		} else {
			shows = append(shows, current)
		}
		current = nil
	}

	for i, row := range rows {
		switch len(row) {
		case 0:
			continue

		case 2:
			if current == nil {
				p.logger.Debug("discarding orphan row", zap.Int("row", i+1), zap.Strings("fields", row))
				continue
			}
			addSongRow(current, row)

		case HeaderFields:
			flush()
			current = newShow(row)

		default:
			return nil, &MalformedHeaderRowError{
				Row:    i + 1,
				Raw:    strings.Join(row, "\t"),
				Fields: len(row),
			}
		}
	}
	flush()

	p.logger.Debug("parsed setlist", zap.Int("rows", len(rows)), zap.Int("shows", len(shows)))
	return shows, nil
}

// addSongRow applies a (label, song) row to the show.
//
// A non-empty label always opens a new set, even if it repeats the previous
// label. An empty label continues the last set, except on the first song row
// of a show, which opens set "I".
func addSongRow(show *model.Show, row []string) {
	label, song := row[0], row[1]

	if label != "" || len(show.Sets) == 0 {
		if label == "" {
			label = model.DefaultSetLabel
		}
		annotation, first := splitAnnotation(song)
		show.Sets = append(show.Sets, model.NewSet(label, annotation, first))
	} else {
		show.LastSet().Add(song)
	}

	show.AddRow(row)
}

// splitAnnotation extracts a leading "(electric)" or "(acoustic)" token and
// the single space following it.
func splitAnnotation(song string) (*string, string) {
	for _, annotation := range setAnnotations {
		prefix := "(" + annotation + ")"
		if strings.HasPrefix(song, prefix) {
			return model.Optional(annotation), strings.TrimPrefix(song[len(prefix):], " ")
		}
	}
	return nil, song
}

// newShow builds a show from a seven-field header row:
// date, band (unused), venue1, venue2, city, state or country, notes.
func newShow(row []string) *model.Show {
	furtherID, notes := splitFurtherID(row[6])

	show := &model.Show{
		Date:           row[0],
		FurtherID:      furtherID,
		Venue1:         row[2],
		Venue2:         model.Optional(row[3]),
		City:           row[4],
		StateOrCountry: row[5],
		Notes:          model.Optional(notes),
	}
	show.AddRow(row)

	return show
}

// splitFurtherID moves a leading "(early)"/"(late)" qualifier out of the notes.
func splitFurtherID(notes string) (string, string) {
	for _, id := range furtherIDs {
		if strings.HasPrefix(notes, id) {
			return id, strings.TrimPrefix(notes[len(id):], " ")
		}
	}
	return "", notes
}
