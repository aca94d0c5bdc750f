// Package book renders setlist volumes as printable HTML documents.
//
// A volume holds every show, one era or one year. Shows are grouped by
// year, optionally behind a divider page, and laid out so that no page
// carries more than MaxLinesPerPage songs.
//
//	gen := book.NewGenerator(afero.NewOsFs(), settings, logger, nil)
//	path, err := gen.Generate(ctx, shows, book.Selection{Era: "70s"})
//	// path == "output/gd-70s.html"
package book

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/handiism/setlist/internal/config"
	ioutils "github.com/handiism/setlist/internal/io"
	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/progress"
	"github.com/handiism/setlist/internal/render"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generator writes book volumes.
type Generator struct {
	fs         afero.Fs
	settings   *config.Settings
	volumes    *model.VolumeConfig
	images     *ioutils.ImageService
	logger     *zap.Logger
	onProgress progress.Func
}

// NewGenerator creates a Generator writing to fs. logger and onProgress
// may be nil.
func NewGenerator(fs afero.Fs, settings *config.Settings, logger *zap.Logger, onProgress progress.Func) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		fs:         fs,
		settings:   settings,
		volumes:    settings.ToVolumeConfig(),
		images:     ioutils.NewImageService(fs),
		logger:     logger,
		onProgress: onProgress,
	}
}

// Volume selects the shows of a volume and names it.
//
// Returns ErrNoShows when nothing matches and ErrUnknownEra for a bad era.
func (g *Generator) Volume(shows []*model.Show, sel Selection) (*model.Volume, error) {
	band := g.band()
	vol := &model.Volume{Name: sel.VolumeName()}

	switch {
	case sel.Year != 0:
		vol.Shows = lo.Filter(shows, func(s *model.Show, _ int) bool { return s.Year() == sel.Year })
		vol.Title = fmt.Sprintf("%s %d", band, sel.Year)
		vol.YearRange = model.YearVolumeName(sel.Year)

	case sel.Era != "":
		era, err := LookupEra(sel.Era)
		if err != nil {
			return nil, err
		}
		vol.Shows = lo.Filter(shows, func(s *model.Show, _ int) bool { return era.Contains(s.Year()) })
		vol.Title = fmt.Sprintf("%s: The %s", band, strings.ToUpper(era.Name))
		vol.YearRange = fmt.Sprintf("%d–%d", era.Start, era.End)

	default:
		vol.Shows = shows
		vol.Title = band + ": Complete Setlists"
		if years := knownYears(shows); len(years) > 0 {
			vol.YearRange = fmt.Sprintf("%d–%d", years[0], years[len(years)-1])
		}
	}

	if len(vol.Shows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoShows, vol.Name)
	}
	return vol, nil
}

// Render produces the complete HTML document of a volume. cover may be nil.
func (g *Generator) Render(vol *model.Volume, cover []byte) string {
	var body strings.Builder

	title := &render.TitlePage{
		Title:     g.band(),
		Subtitle:  "Complete Setlists",
		YearRange: vol.YearRange,
		ShowCount: len(vol.Shows),
		Cover:     cover,
	}
	body.WriteString(title.HTML())

	byYear := lo.GroupBy(vol.Shows, func(s *model.Show) int { return s.Year() })
	years := lo.Keys(byYear)
	slices.Sort(years)

	dividers := g.settings.IncludeYearDividers && len(years) > 1
	for _, year := range years {
		yearShows := byYear[year]
		if dividers {
			body.WriteString(render.YearDivider(year, len(yearShows)))
		}
		for _, show := range yearShows {
			body.WriteString(render.ShowHTML(show, g.settings.MaxLinesPerPage))
		}
	}

	return render.Document(body.String(), vol.Title, g.settings.Layout, g.settings.Stylesheet)
}

// Generate writes the volume for sel and returns its path.
func (g *Generator) Generate(ctx context.Context, shows []*model.Show, sel Selection) (string, error) {
	cover, err := g.loadCover(ctx)
	if err != nil {
		return "", err
	}
	return g.generate(ctx, shows, sel, cover)
}

// GenerateAll writes one volume per era concurrently, at most
// MaxConcurrentVolumes at a time. Eras without shows are skipped with a
// warning. The returned paths follow the order of Eras.
func (g *Generator) GenerateAll(ctx context.Context, shows []*model.Show) ([]string, error) {
	cover, err := g.loadCover(ctx)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(Eras))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, g.settings.MaxConcurrentVolumes))

	for i, era := range Eras {
		i, era := i, era
		eg.Go(func() error {
			path, err := g.generate(ctx, shows, Selection{Era: era.Name}, cover)
			if errors.Is(err, ErrNoShows) {
				g.onProgress.Send(progress.LevelWarning, "No shows found for the %s", era.Name)
				return nil
			}
			if err != nil {
				return fmt.Errorf("volume %s: %w", era.Name, err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return lo.Compact(paths), nil
}

func (g *Generator) generate(ctx context.Context, shows []*model.Show, sel Selection, cover []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	vol, err := g.Volume(shows, sel)
	if err != nil {
		return "", err
	}

	path := vol.Path(g.volumes)
	g.logger.Debug("rendering volume", zap.String("volume", vol.Name), zap.Int("shows", len(vol.Shows)), zap.String("path", path))

	if err := ioutils.WriteFile(g.fs, path, []byte(g.Render(vol, cover))); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	g.onProgress.Send(progress.LevelSuccess, "Generated: %s (%d shows)", path, len(vol.Shows))
	return path, nil
}

func (g *Generator) loadCover(ctx context.Context) ([]byte, error) {
	if g.settings.CoverImagePath == "" {
		return nil, nil
	}
	cover, err := g.images.LoadCover(ctx, g.settings.CoverImagePath, g.settings.CoverMaxSize)
	if err != nil {
		return nil, fmt.Errorf("cover image %s: %w", g.settings.CoverImagePath, err)
	}
	return cover, nil
}

func (g *Generator) band() string {
	if g.settings.Band == "" {
		return "Grateful Dead"
	}
	return g.settings.Band
}

// knownYears returns the distinct positive show years in ascending order.
func knownYears(shows []*model.Show) []int {
	years := lo.Uniq(lo.FilterMap(shows, func(s *model.Show, _ int) (int, bool) {
		return s.Year(), s.Year() > 0
	}))
	slices.Sort(years)
	return years
}
