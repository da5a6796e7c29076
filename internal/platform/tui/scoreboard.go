package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/storage"
)

const (
	boardSidebarMin   = 80 // Terminal width needed for the game sidebar
	boardSidebarWidth = 20
	boardBestLimit    = 100
	boardRecentLimit  = 50
)

// boardView selects what the scoreboard lists.
type boardView int

const (
	viewBest   boardView = iota // Best scores of the selected game
	viewRecent                  // Latest sessions of every game
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Toggle, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Toggle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs per game and the recent session log.
type ScoreboardModel struct {
	games    []registry.GameInfo
	selected int
	view     boardView
	store    *storage.Store
	tickRate int

	best    []storage.ScoreEntry
	recent  []storage.SessionRecord
	stats   storage.GameStats
	loadErr error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard sized and timed by cfg.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig) ScoreboardModel {
	m := ScoreboardModel{
		games:    registry.List(),
		store:    store,
		tickRate: cfg.TickRate,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	if m.tickRate <= 0 {
		m.tickRate = core.DefaultConfig().TickRate
	}
	m.reload()
	return m
}

func (m *ScoreboardModel) sidebar() bool {
	return m.view == viewBest && m.width >= boardSidebarMin
}

func (m *ScoreboardModel) currentGame() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.selected].ID
}

// reload fetches rows for the current view and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.best, m.recent, m.loadErr = nil, nil, nil
	m.stats = storage.GameStats{GameID: m.currentGame()}

	if m.store != nil {
		switch m.view {
		case viewBest:
			if id := m.currentGame(); id != "" {
				m.best, m.loadErr = m.store.TopScores(id, boardBestLimit)
				if stats, err := m.store.Stats(id); err == nil {
					m.stats = stats
				}
			}
		case viewRecent:
			m.recent, m.loadErr = m.store.RecentSessions(boardRecentLimit)
		}
	}

	m.table = m.buildTable()
}

// columns lays out the table for the current view in the given width.
func (m *ScoreboardModel) columns(width int) []table.Column {
	if m.view == viewRecent {
		player := max(width-48, 8)
		return []table.Column{
			{Title: "Game", Width: 12},
			{Title: "Player", Width: min(player, 16)},
			{Title: "Via", Width: 8},
			{Title: "Score", Width: 7},
			{Title: "Time", Width: 6},
			{Title: "When", Width: 12},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: min(max(width-22, 12), 20)},
	}
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.view == viewRecent {
		rows := make([]table.Row, 0, len(m.recent))
		for _, r := range m.recent {
			player := r.Player
			if player == "" {
				player = "-"
			}
			rows = append(rows, table.Row{
				r.GameID,
				player,
				r.Frontend,
				fmt.Sprintf("%d", r.Score),
				m.playTime(r.Ticks),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
		return rows
	}

	rows := make([]table.Row, 0, len(m.best))
	for i, s := range m.best {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

func (m *ScoreboardModel) buildTable() table.Model {
	width := m.width - 4
	if m.sidebar() {
		width -= boardSidebarWidth + 3
	}

	t := table.New(
		table.WithColumns(m.columns(width)),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// playTime formats simulation ticks as wall time at the board's tick rate.
func (m *ScoreboardModel) playTime(ticks int64) string {
	d := time.Duration(ticks) * time.Second / time.Duration(m.tickRate)
	secs := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.games)) % len(m.games)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.view == viewBest {
				m.view = viewRecent
			} else {
				m.view = viewBest
			}
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if m.view == viewBest {
				m.step(1)
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.view == viewBest {
				m.step(-1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(m.title(), m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(dim.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	body := boxStyle.Render(m.tableView())
	switch {
	case m.sidebar():
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.gameList(), "  ", body))
	case m.view == viewBest && len(m.games) > 0:
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.selected].Title), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	default:
		b.WriteString(centerText(body, m.width))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) title() string {
	if m.view == viewRecent {
		return "RECENT SESSIONS"
	}
	if len(m.games) == 0 {
		return "BEST RUNS"
	}
	return "BEST RUNS - " + m.games[m.selected].Title
}

// statsLine summarizes recorded sessions for the selected game.
func (m ScoreboardModel) statsLine() string {
	if m.view != viewBest || m.stats.Sessions == 0 {
		return ""
	}
	return fmt.Sprintf("%d sessions  avg %.0f  played %s",
		m.stats.Sessions, m.stats.AvgScore, m.playTime(m.stats.TotalTicks))
}

func (m ScoreboardModel) gameList() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(boardSidebarWidth).
		Padding(0, 1)
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var list strings.Builder
	list.WriteString("Games\n")
	for i, g := range m.games {
		if i == m.selected {
			list.WriteString(active.Render("> " + g.Title))
		} else {
			list.WriteString("  " + g.Title)
		}
		list.WriteString("\n")
	}
	return style.Render(list.String())
}

func (m ScoreboardModel) tableView() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	switch {
	case m.store == nil:
		return empty.Render("Scores are off: no database.")
	case m.loadErr != nil:
		return empty.Render("Could not load scores.")
	case m.view == viewRecent && len(m.recent) == 0:
		return empty.Render("No sessions recorded yet.")
	case m.view == viewBest && len(m.best) == 0:
		return empty.Render("No runs recorded yet.\nDrive somewhere to score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
