// Package session runs one play-through of a registered game independently
// of the frontend. The terminal, window and SSH frontends feed it input
// frames at the tick rate; it steps the game, forwards sound cues and
// records the result when the run ends.
package session

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/storage"
)

// Frontend names recorded with each session.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendSSH      = "ssh"
)

// SoundPlayer plays sound cues raised by a game.
type SoundPlayer interface {
	Play(s core.Sound)
}

// Options configures a Session. Every field except Config is optional.
type Options struct {
	Config   core.RuntimeConfig
	Store    *storage.Store
	Audio    SoundPlayer
	Logger   *log.Logger
	Frontend string
	Player   string
}

// Session owns a game instance for the lifetime of one frontend run.
type Session struct {
	id    string
	game  registry.Game
	opts  Options
	state core.GameState
	ticks int64
	saved bool
}

// New creates a session and resets the game with the runtime config.
func New(game registry.Game, opts Options) *Session {
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Frontend == "" {
		opts.Frontend = FrontendTerminal
	}

	s := &Session{game: game, opts: opts}
	s.start()
	return s
}

func (s *Session) start() {
	s.id = uuid.NewString()
	s.ticks = 0
	s.saved = false
	s.game.Reset(s.opts.Config)
	s.state = s.game.State()
}

// ID returns the UUID of the current run. Restart assigns a new one.
func (s *Session) ID() string {
	return s.id
}

// Game returns the game being played.
func (s *Session) Game() registry.Game {
	return s.game
}

// State returns the state after the last tick.
func (s *Session) State() core.GameState {
	return s.state
}

// Ticks returns the number of unpaused ticks in the current run.
func (s *Session) Ticks() int64 {
	return s.ticks
}

// Config returns the runtime config the game was reset with.
func (s *Session) Config() core.RuntimeConfig {
	return s.opts.Config
}

// Resize updates the screen size used by the next restart.
// The running scenario keeps its world; only the view changes.
func (s *Session) Resize(w, h int) {
	s.opts.Config.ScreenW = w
	s.opts.Config.ScreenH = h
}

// Tick advances the game by one step. A restart action records the
// finished run and starts a new one instead of stepping.
func (s *Session) Tick(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		s.Finish()
		s.start()
		return core.StepResult{State: s.state}
	}

	result := s.game.Step(in)
	s.state = result.State
	if !s.state.Paused {
		s.ticks++
	}

	if s.opts.Audio != nil {
		for _, snd := range result.Sounds {
			s.opts.Audio.Play(snd)
		}
	}

	if s.state.GameOver {
		s.Finish()
	}

	return result
}

// Finish records the current run once. Runs with no ticks are not recorded;
// the score table only receives positive scores.
// Storage errors are logged, the frontend keeps running.
func (s *Session) Finish() {
	if s.saved || s.ticks == 0 {
		return
	}
	s.saved = true

	if s.opts.Store == nil {
		return
	}

	gameID := s.game.ID()
	if s.state.Score > 0 {
		if _, err := s.opts.Store.SaveScore(gameID, s.state.Score); err != nil {
			s.opts.Logger.Warn("Could not save score", "game", gameID, "error", err)
		}
	}

	_, err := s.opts.Store.SaveSession(storage.SessionRecord{
		SessionID: s.id,
		GameID:    gameID,
		Frontend:  s.opts.Frontend,
		Player:    s.opts.Player,
		Score:     s.state.Score,
		Ticks:     s.ticks,
	})
	if err != nil {
		s.opts.Logger.Warn("Could not save session", "game", gameID, "error", err)
		return
	}
	s.opts.Logger.Debug("Session recorded", "game", gameID, "session", s.id, "score", s.state.Score, "ticks", s.ticks)
}
