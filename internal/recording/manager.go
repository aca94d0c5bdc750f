package recording

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/handiism/setlist/internal/audio"
	"github.com/handiism/setlist/internal/config"
	ioutils "github.com/handiism/setlist/internal/io"
	"github.com/handiism/setlist/internal/model"
	"github.com/handiism/setlist/internal/progress"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AudioExt is the extension of the files a show directory is scanned for.
const AudioExt = ".mp3"

// ErrCountMismatch is returned when a directory does not hold exactly one
// file per song.
var ErrCountMismatch = errors.New("recording count does not match song count")

// Pair matches files, in the given order, with the show's songs in
// performance order.
func Pair(show *model.Show, files []string) ([]*model.Recording, error) {
	slots := show.Slots()
	if len(files) != len(slots) {
		return nil, fmt.Errorf("%w: %s has %d songs, found %d files", ErrCountMismatch, show.Date, len(slots), len(files))
	}

	recordings := make([]*model.Recording, len(slots))
	for i, slot := range slots {
		recordings[i] = model.NewRecording(show, slot.SetIndex, slot.SetLabel, i+1, slot.Song, files[i])
	}
	return recordings, nil
}

// Manager tags the recordings of a show.
//
// Files are listed and playlists written through fs. Tags are written in
// place by the ID3 library, so fs must be backed by the OS filesystem when
// tagging.
type Manager struct {
	fs       afero.Fs
	settings *config.Settings
	tagger   *audio.Tagger
	playlist *audio.PlaylistCreator
	images   *ioutils.ImageService
	logger   *zap.Logger

	total  int32
	tagged int32

	onProgress progress.Func
}

// NewManager creates a new Manager. logger and onProgress may be nil.
func NewManager(fs afero.Fs, settings *config.Settings, logger *zap.Logger, onProgress progress.Func) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		fs:         fs,
		settings:   settings,
		tagger:     audio.NewTagger(settings.ToTagConfig()),
		playlist:   audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended),
		images:     ioutils.NewImageService(fs),
		logger:     logger,
		onProgress: onProgress,
	}
}

// Scan lists the audio files in dir, sorted by name, and pairs them with
// the show's songs.
func (m *Manager) Scan(show *model.Show, dir string) ([]*model.Recording, error) {
	files, err := ioutils.ListFiles(m.fs, dir, AudioExt)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("scanned recordings", zap.String("dir", dir), zap.Int("files", len(files)))
	return Pair(show, files)
}

// Tag writes ID3 tags to every recording, at most MaxConcurrentTagging at a
// time, then writes the playlist if enabled. A file that fails to tag is
// reported and skipped; the returned error is reserved for cancellation and
// setup failures.
func (m *Manager) Tag(ctx context.Context, recordings []*model.Recording) error {
	if len(recordings) == 0 {
		return nil
	}
	show := recordings[0].Show

	atomic.StoreInt32(&m.total, int32(len(recordings)))
	atomic.StoreInt32(&m.tagged, 0)

	cover, err := m.loadCover(ctx)
	if err != nil {
		m.onProgress.Send(progress.LevelWarning, "Error loading cover for %s: %v", show.Date, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, m.settings.MaxConcurrentTagging))

	for _, rec := range recordings {
		rec := rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.tagger.SaveTags(rec, cover); err != nil {
				m.onProgress.Send(progress.LevelError, "Error tagging %s: %v", filepath.Base(rec.Path), err)
				return nil // Continue with other recordings
			}
			atomic.AddInt32(&m.tagged, 1)
			m.onProgress.Send(progress.LevelVerbose, "Tagged: %s (%s)", filepath.Base(rec.Path), rec.Title())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist {
		path, err := m.WritePlaylist(recordings)
		if err != nil {
			m.onProgress.Send(progress.LevelWarning, "Error creating playlist: %v", err)
		} else {
			m.onProgress.Send(progress.LevelSuccess, "Created playlist %s", path)
		}
	}

	done, total := m.Progress()
	if done == total {
		m.onProgress.Send(progress.LevelSuccess, "Successfully tagged %s (%d recordings)", show.Date, total)
	} else {
		m.onProgress.Send(progress.LevelWarning, "Finished %s, %d of %d recordings failed", show.Date, total-done, total)
	}

	return nil
}

// WritePlaylist writes the playlist next to the first recording and returns
// its path.
func (m *Manager) WritePlaylist(recordings []*model.Recording) (string, error) {
	if len(recordings) == 0 {
		return "", errors.New("no recordings")
	}
	dir := filepath.Dir(recordings[0].Path)
	path := filepath.Join(dir, PlaylistName(recordings[0].Show, m.settings.ToPlaylistFormat()))

	content := m.playlist.CreatePlaylist(recordings)
	if err := ioutils.WriteFile(m.fs, path, []byte(content)); err != nil {
		return "", err
	}
	return path, nil
}

// Progress returns the number of recordings tagged so far and the total.
func (m *Manager) Progress() (tagged, total int32) {
	return atomic.LoadInt32(&m.tagged), atomic.LoadInt32(&m.total)
}

func (m *Manager) loadCover(ctx context.Context) ([]byte, error) {
	if m.settings.CoverImagePath == "" {
		return nil, nil
	}
	return m.images.LoadCover(ctx, m.settings.CoverImagePath, m.settings.CoverMaxSize)
}

// PlaylistName returns the playlist file name of a show, e.g.
// "1970-02-13 (late).m3u".
func PlaylistName(show *model.Show, format audio.PlaylistFormat) string {
	name := strings.ReplaceAll(show.Date, "/", "-")
	if show.FurtherID != "" {
		name += " " + show.FurtherID
	}
	return name + format.Extension()
}
