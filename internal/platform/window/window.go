// Package window runs a game in a desktop window with ebiten. Unlike the
// terminal frontend it sees real key-held state and an exact mouse position,
// and draws the game's scene with vector shapes.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/platform/session"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/storage"
)

// ErrNoScene is returned for games that cannot describe a scene.
var ErrNoScene = errors.New("window: game has no scene")

// Options configures the window frontend. Zero values are valid.
type Options struct {
	Store   *storage.Store
	Audio   session.SoundPlayer
	Logger  *log.Logger
	Player  string
	Scale   float64 // Window size relative to the world, default 1
	ShowFPS bool
}

// Window adapts a session to ebiten.Game.
type Window struct {
	session *session.Session
	scener  registry.Scener
	input   inputSource
	width   int
	height  int
	showFPS bool
}

// New creates a window for game. The game must implement registry.Scener.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	scener, ok := game.(registry.Scener)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoScene, game.ID())
	}

	sess := session.New(game, session.Options{
		Config:   cfg,
		Store:    opts.Store,
		Audio:    opts.Audio,
		Logger:   opts.Logger,
		Frontend: session.FrontendWindow,
		Player:   opts.Player,
	})

	// The world size is fixed by the game config after Reset
	sc := scener.Scene()
	return &Window{
		session: sess,
		scener:  scener,
		input:   ebitenInput{},
		width:   int(sc.Width),
		height:  int(sc.Height),
		showFPS: opts.ShowFPS,
	}, nil
}

// Update steps the game once. ebiten calls it at the configured TPS.
func (w *Window) Update() error {
	if w.input.JustPressed(ebiten.KeyF) {
		w.showFPS = !w.showFPS
	}

	frame := buildFrame(w.input, w.width, w.height)
	if frame.Has(core.ActionQuit) || frame.Has(core.ActionBack) {
		w.session.Finish()
		return ebiten.Termination
	}

	w.session.Tick(frame)
	return nil
}

// Draw renders the current scene.
func (w *Window) Draw(screen *ebiten.Image) {
	drawScene(screen, w.scener.Scene())
	if w.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f fps / %.0f tps", ebiten.ActualFPS(), ebiten.ActualTPS()), w.width-120, 8)
	}
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Session returns the running session.
func (w *Window) Session() *session.Session {
	return w.session
}

// Run opens a window and plays game until it is closed or the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	w, err := New(game, cfg, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(float64(w.width)*scale), int(float64(w.height)*scale))
	ebiten.SetWindowTitle("Arcade Motion - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	err = ebiten.RunGame(w)
	// Closing the window ends the run like quitting does
	w.session.Finish()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
