// Package tui provides a Bubble Tea terminal browser for the setlist log.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/setlist/internal/model"
	sprogress "github.com/handiism/setlist/internal/progress"
	"github.com/handiism/setlist/internal/render"
	"github.com/handiism/setlist/internal/setlist"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateBrowse
	StateDetail
	StateError
)

// Loader reads and parses the setlist log.
type Loader func(ctx context.Context) ([]*model.Show, error)

// LogEntry represents a status message in the UI.
type LogEntry struct {
	Message string
	Level   sprogress.Level
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	filter   textinput.Model
	spinner  spinner.Model
	position progress.Model
	source   string
	load     Loader
	logs     []LogEntry
	err      error

	index    *setlist.Index
	visible  []*model.Show
	cursor   int
	offset   int
	selected *model.Show

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a TUI model that loads its shows with load. source
// names the log in the header.
func NewModel(ctx context.Context, source string, load Loader) Model {
	ti := textinput.New()
	ti.Placeholder = "date, venue or city"
	ti.Prompt = "/ "
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	pos := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	pos.Width = 40

	ctx, cancel := context.WithCancel(ctx)

	return Model{
		state:    StateLoading,
		filter:   ti,
		spinner:  sp,
		position: pos,
		source:   source,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init starts loading the log.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadShows())
}

// Message types
type (
	// ShowsLoadedMsg is sent once the log has been parsed.
	ShowsLoadedMsg struct {
		Shows []*model.Show
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.position.Width = min(max(msg.Width-20, 20), 80)
		m.clampOffset()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateDetail:
				m.state = StateBrowse
				m.selected = nil
				m.filter.Focus()
				return m, nil
			case StateBrowse:
				if m.filter.Value() != "" {
					m.filter.SetValue("")
					m.applyFilter()
					return m, nil
				}
			}
			m.cancel()
			return m, tea.Quit

		case "q":
			if m.state == StateError {
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateBrowse && len(m.visible) > 0 {
				m.selected = m.visible[m.cursor]
				m.state = StateDetail
				m.filter.Blur()
				return m, nil
			}

		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		case "pgup":
			m.move(-m.listHeight())
			return m, nil
		case "pgdown":
			m.move(m.listHeight())
			return m, nil
		case "home":
			m.move(-len(m.visible))
			return m, nil
		case "end":
			m.move(len(m.visible))
			return m, nil
		}

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ShowsLoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			m.addLog(sprogress.LevelError, "Failed to load %s", m.source)
			return m, nil
		}
		m.index = setlist.NewIndex(msg.Shows)
		m.state = StateBrowse
		m.applyFilter()
		m.addLog(sprogress.LevelSuccess, "Loaded %d shows from %s", m.index.Len(), m.source)
	}

	// Update filter input
	if m.state == StateBrowse {
		before := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
		if m.filter.Value() != before {
			m.applyFilter()
		}
	}

	return m, tea.Batch(cmds...)
}

// loadShows runs the loader in the background.
func (m Model) loadShows() tea.Cmd {
	load, ctx := m.load, m.ctx
	return func() tea.Msg {
		shows, err := load(ctx)
		return ShowsLoadedMsg{Shows: shows, Err: err}
	}
}

func (m *Model) applyFilter() {
	if m.index == nil {
		return
	}
	m.visible = m.index.Search(m.filter.Value())
	m.cursor = 0
	m.offset = 0
}

func (m *Model) move(delta int) {
	if m.state != StateBrowse || len(m.visible) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
	m.clampOffset()
}

// clampOffset scrolls the list so the cursor stays visible.
func (m *Model) clampOffset() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return 15
	}
	return max(m.height-14, 3)
}

func (m *Model) addLog(level sprogress.Level, format string, args ...any) {
	m.logs = append(m.logs, LogEntry{Message: fmt.Sprintf(format, args...), Level: level})
	// Keep only last 5 logs
	if len(m.logs) > 5 {
		m.logs = m.logs[len(m.logs)-5:]
	}
}

// Selected returns the show open in the detail view, or nil.
func (m Model) Selected() *model.Show {
	return m.selected
}

// Visible returns the shows matching the current filter.
func (m Model) Visible() []*model.Show {
	return m.visible
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Setlist Browser"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.source))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateDetail:
		b.WriteString(m.viewDetail())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Parsing setlist log..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(warningStyle.Render("No shows match."))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.offset+m.listHeight(), len(m.visible))
	for i := m.offset; i < end; i++ {
		show := m.visible[i]
		line := fmt.Sprintf("%s  %s, %s", show.Date, show.VenueDisplay(), show.LocationDisplay())
		if show.FurtherID != "" {
			line += " " + show.FurtherID
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var percent float64
	if len(m.visible) > 1 {
		percent = float64(m.cursor) / float64(len(m.visible)-1)
	}
	b.WriteString(m.position.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Show %d/%d | %d in log", m.cursor+1, len(m.visible), m.index.Len())))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDetail() string {
	show := m.selected
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(show.FormattedDate()))
	b.WriteString("\n")
	b.WriteString(show.VenueDisplay())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(show.LocationDisplay()))
	b.WriteString("\n")
	if show.Notes != nil {
		b.WriteString(warningStyle.Render(*show.Notes))
		b.WriteString("\n")
	}

	var sets strings.Builder
	for i, set := range show.Sets {
		if i > 0 {
			sets.WriteString("\n\n")
		}
		label := set.DisplayLabel()
		if set.Annotation != nil {
			label += " (" + *set.Annotation + ")"
		}
		sets.WriteString(successStyle.Render(label))
		for _, entry := range set.Songs {
			name, segue, note := render.FormatSong(entry)
			sets.WriteString("\n")
			if segue {
				sets.WriteString(dimStyle.Render("> "))
			} else {
				sets.WriteString("  ")
			}
			sets.WriteString(name)
			if note != "" {
				sets.WriteString(dimStyle.Render(" " + note))
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(sets.String()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case sprogress.LevelError:
			style = errorStyle
			prefix = "✗"
		case sprogress.LevelWarning:
			style = warningStyle
			prefix = "!"
		case sprogress.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case sprogress.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateLoading:
		return "esc: quit"
	case StateBrowse:
		return "type to filter • ↑/↓: move • enter: open • esc: clear/quit"
	case StateDetail:
		return "esc: back • ctrl+c: quit"
	case StateError:
		return "q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(ctx context.Context, source string, load Loader) error {
	p := tea.NewProgram(NewModel(ctx, source, load), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
