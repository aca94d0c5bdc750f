package render

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/handiism/setlist/internal/model"
)

// DefaultStylesheet is linked from documents that do not name one.
const DefaultStylesheet = "templates/style.css"

// ShowHTML renders one show as an <article>.
//
// Sets are grouped into pages of at most maxLines songs; the article's
// data-layout attribute tells the stylesheet whether the show fits on a
// single page or spreads across facing pages.
func ShowHTML(show *model.Show, maxLines int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<article class=\"show\" data-layout=\"%s\">\n", show.Layout(maxLines))

	sb.WriteString("  <header class=\"show-header\">\n")
	fmt.Fprintf(&sb, "    <h2 class=\"show-date\">%s</h2>\n", esc(show.FormattedDate()))
	fmt.Fprintf(&sb, "    <p class=\"show-venue\">%s</p>\n", esc(show.VenueDisplay()))
	fmt.Fprintf(&sb, "    <p class=\"show-location\">%s</p>\n", esc(show.LocationDisplay()))
	if show.Notes != nil {
		fmt.Fprintf(&sb, "    <p class=\"show-notes\">%s</p>\n", esc(cleanNotes(*show.Notes)))
	}
	sb.WriteString("  </header>\n")

	for _, page := range show.PageGroupings(maxLines) {
		sb.WriteString("  <div class=\"sets\">\n")
		for _, set := range page {
			writeSetHTML(&sb, set)
		}
		sb.WriteString("  </div>\n")
	}

	sb.WriteString("</article>\n")
	return sb.String()
}

func writeSetHTML(sb *strings.Builder, set *model.Set) {
	sb.WriteString("    <section class=\"set\">\n")

	sb.WriteString("      <h3 class=\"set-label\">")
	sb.WriteString(esc(set.DisplayLabel()))
	if set.Annotation != nil {
		fmt.Fprintf(sb, " <span class=\"set-annotation\">(%s)</span>", esc(*set.Annotation))
	}
	sb.WriteString("</h3>\n")

	sb.WriteString("      <ul class=\"songs\">\n")
	for _, entry := range set.Songs {
		name, segue, note := FormatSong(entry)
		class := ""
		if segue {
			class = " class=\"segue\""
		}
		if note != "" {
			fmt.Fprintf(sb, "        <li%s>%s <span class=\"song-note\">%s</span></li>\n", class, esc(name), esc(note))
		} else {
			fmt.Fprintf(sb, "        <li%s>%s</li>\n", class, esc(name))
		}
	}
	sb.WriteString("      </ul>\n")

	sb.WriteString("    </section>\n")
}

// cleanNotes drops one pair of parentheses wrapping the whole note.
func cleanNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if len(notes) >= 2 && strings.HasPrefix(notes, "(") && strings.HasSuffix(notes, ")") {
		return notes[1 : len(notes)-1]
	}
	return notes
}

// YearDivider renders the page that opens a year.
func YearDivider(year, showCount int) string {
	return fmt.Sprintf("<div class=\"year-divider\">\n  <h1 class=\"year\">%d</h1>\n  <p class=\"show-count\">%s</p>\n</div>\n",
		year, showCountText(showCount))
}

// TitlePage holds the contents of a volume's title page.
type TitlePage struct {
	Title     string
	Subtitle  string
	YearRange string
	ShowCount int

	// Cover is optional JPEG data shown above the title.
	Cover []byte
}

// HTML renders the title page.
func (p *TitlePage) HTML() string {
	var sb strings.Builder
	sb.WriteString("<div class=\"volume-title-page\">\n")
	if len(p.Cover) > 0 {
		fmt.Fprintf(&sb, "  <img class=\"cover\" alt=\"\" src=\"data:image/jpeg;base64,%s\">\n",
			base64.StdEncoding.EncodeToString(p.Cover))
	}
	fmt.Fprintf(&sb, "  <h1>%s</h1>\n", esc(p.Title))
	fmt.Fprintf(&sb, "  <p class=\"subtitle\">%s</p>\n", esc(p.Subtitle))
	fmt.Fprintf(&sb, "  <p class=\"year-range\">%s</p>\n", esc(p.YearRange))
	sb.WriteString("  <hr class=\"decorative-rule\">\n")
	fmt.Fprintf(&sb, "  <p class=\"show-count\">%s</p>\n", showCountText(p.ShowCount))
	sb.WriteString("</div>\n")
	return sb.String()
}

// Document wraps body in a complete HTML document.
func Document(body, title, layout, stylesheet string) string {
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "  <title>%s</title>\n", esc(title))
	fmt.Fprintf(&sb, "  <link rel=\"stylesheet\" href=\"%s\">\n", esc(stylesheet))
	sb.WriteString("</head>\n")
	fmt.Fprintf(&sb, "<body class=\"layout-%s\">\n", esc(layout))
	sb.WriteString(body)
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func showCountText(n int) string {
	if n == 1 {
		return "1 show"
	}
	return fmt.Sprintf("%d shows", n)
}

func esc(s string) string {
	return html.EscapeString(s)
}
