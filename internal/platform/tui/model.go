package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/platform/session"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/storage"
)

// Options configures a game model. Zero values are valid.
type Options struct {
	Store    *storage.Store
	Audio    session.SoundPlayer
	Logger   *log.Logger
	Frontend string // Defaults to session.FrontendTerminal
	Player   string
	ShowFPS  bool
}

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *HeldKeys
	pending  *core.InputFrame // Edge-triggered actions since the last tick
	pointer  *core.Pointer
	fire     *bool
	fps      *fpsCounter
	showFPS  bool
	logger   *log.Logger
	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately with cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	frontend := opts.Frontend
	if frontend == "" {
		frontend = session.FrontendTerminal
	}

	sess := session.New(game, session.Options{
		Config:   cfg,
		Store:    opts.Store,
		Audio:    opts.Audio,
		Logger:   logger,
		Frontend: frontend,
		Player:   opts.Player,
	})

	pending := core.NewInputFrame()
	fire := false

	return Model{
		session: sess,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    NewKeyMapper(),
		held:    NewHeldKeys(),
		pending: &pending,
		// Centered and invalid until the first mouse event
		pointer: &core.Pointer{X: 0.5, Y: 0.5},
		fire:    &fire,
		fps:     &fpsCounter{},
		showFPS: opts.ShowFPS,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsFire(msg):
		*m.fire = true
		return m, nil
	case key.Matches(msg, m.keys.Keys().Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("Screenshot failed", "error", err)
		} else {
			m.logger.Info("Screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Keys().FPS):
		m.showFPS = !m.showFPS
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.session.Finish()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.session.Finish()
		m.back = true
		return m, tea.Quit
	case IsHeldAction(action):
		m.held.Press(action, time.Now())
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleMouse tracks the pointer in normalized view coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	w, h := m.screen.Width(), m.screen.Height()
	if w <= 0 || h <= 0 {
		return m, nil
	}

	m.pointer.X = (float64(msg.X) + 0.5) / float64(w)
	m.pointer.Y = (float64(msg.Y) + 0.5) / float64(h)
	m.pointer.Valid = true

	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.pointer.Down = true
		case tea.MouseActionRelease:
			m.pointer.Down = false
		}
	} else if msg.Action == tea.MouseActionRelease {
		m.pointer.Down = false
	}

	return m, nil
}

// handleResize processes window resize events.
// The scenario keeps running; only the view is rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick builds the input frame for this tick and steps the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.held.Apply(&frame, now)

	frame.Pointer = *m.pointer
	if *m.fire {
		frame.Pointer.Down = true
		frame.Pointer.Valid = true
		*m.fire = false
	}

	if frame.Has(core.ActionRestart) {
		m.held.Release()
	}
	m.session.Tick(frame)

	m.pending.Clear()
	m.fps.Tick(now)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	m.session.Game().Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.session.Game().Render(m.screen)
	if m.showFPS {
		label := fmt.Sprintf("%.0f fps", m.fps.Value())
		m.screen.DrawTextColored(m.screen.Width()-len(label)-1, 0, label, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Session returns the running session.
func (m Model) Session() *session.Session {
	return m.session
}

// fpsCounter measures tick throughput over one-second windows.
type fpsCounter struct {
	since  time.Time
	frames int
	value  float64
}

// Tick records a frame at now.
func (c *fpsCounter) Tick(now time.Time) {
	if c.since.IsZero() {
		c.since = now
	}
	c.frames++
	if elapsed := now.Sub(c.since); elapsed >= time.Second {
		c.value = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.since = now
	}
}

// Value returns the last measured rate.
func (c *fpsCounter) Value() float64 {
	return c.value
}

// Run starts the Bubble Tea program for a single game.
// Returns true when the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer aim needs motion without a button held
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
