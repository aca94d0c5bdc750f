package model

// DefaultPageLines is the number of song lines that fit on one book page.
const DefaultPageLines = 20

// LayoutType describes how a show is laid out in the book.
type LayoutType int

const (
	// LayoutSingle fits the whole show on one page.
	LayoutSingle LayoutType = iota

	// LayoutSpread spreads the show across facing pages.
	LayoutSpread
)

// String returns the CSS-friendly name of the layout.
func (lt LayoutType) String() string {
	switch lt {
	case LayoutSpread:
		return "spread"
	default:
		return "single"
	}
}

// PageGroupings splits the show's sets into pages of at most maxLines songs.
//
// Sets are never split. When more than one page is needed the songs are
// divided as evenly as possible, keeping each page under maxLines where the
// sets allow it. A maxLines <= 0 uses DefaultPageLines.
//
// Example (5/27/1993, sets of 8, 11 and 1 songs):
//
//	show.PageGroupings(20) // [[Set 1] [Set 2 Encore]]
func (s *Show) PageGroupings(maxLines int) [][]*Set {
	if maxLines <= 0 {
		maxLines = DefaultPageLines
	}

	numPages := 1
	currLines := 0
	for _, set := range s.Sets {
		if currLines+set.Len() >= maxLines {
			numPages++
			currLines = set.Len()
		} else {
			currLines += set.Len()
		}
	}

	if numPages == 1 {
		return [][]*Set{s.Sets}
	}

	songsPerPage := (s.Len() + 1) / numPages

	var pages [][]*Set
	currSongs := 0
	next := 0

	for page := 1; page <= numPages; page++ {
		if next >= len(s.Sets) {
			break
		}

		pages = append(pages, []*Set{s.Sets[next]})
		currSongs += s.Sets[next].Len()
		next++

		for songsPerPage*page > currSongs+5 {
			if next >= len(s.Sets) {
				break
			}
			if pageLen(pages[len(pages)-1])+s.Sets[next].Len() > maxLines {
				break
			}
			pages[len(pages)-1] = append(pages[len(pages)-1], s.Sets[next])
			currSongs += s.Sets[next].Len()
			next++
		}
	}

	for ; next < len(s.Sets); next++ {
		if len(pages) < numPages {
			pages = append(pages, nil)
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], s.Sets[next])
	}

	return pages
}

// Layout classifies the show as a single page or a spread.
func (s *Show) Layout(maxLines int) LayoutType {
	if len(s.PageGroupings(maxLines)) > 1 {
		return LayoutSpread
	}
	return LayoutSingle
}

func pageLen(sets []*Set) int {
	n := 0
	for _, set := range sets {
		n += set.Len()
	}
	return n
}
