package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

// GameKeyMap defines the key bindings used while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	FPS        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Fire},
		{k.Pause, k.Restart, k.Back, k.Quit},
		{k.Screenshot, k.FPS},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "reverse"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		FPS: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fps"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Fire has no action of its own; see IsFire.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	case msg.Type == tea.KeyEnter:
		return core.ActionConfirm, false
	}

	return core.ActionNone, false
}

// IsFire reports whether the key is the keyboard fire binding.
func (km *KeyMapper) IsFire(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Fire)
}

// IsHeldAction reports whether an action is level-triggered.
func IsHeldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MenuKeyMap defines the key bindings for the game picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Scoreboard, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(keys MenuKeyMap, msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, keys.Up):
		return MenuActionUp
	case key.Matches(msg, keys.Down):
		return MenuActionDown
	case key.Matches(msg, keys.Select):
		return MenuActionSelect
	case key.Matches(msg, keys.Scoreboard):
		return MenuActionScoreboard
	case key.Matches(msg, keys.Back):
		return MenuActionBack
	}

	return MenuActionNone
}

// Hold windows for terminal key repeat. Terminals only report presses, so
// a key counts as held until its repeat stream stops. The first window
// covers the OS repeat delay, the second the gap between repeats.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

type heldKey struct {
	last    time.Time
	repeats int
}

// HeldKeys emulates key-held state from key press events.
type HeldKeys struct {
	InitialHold time.Duration
	RepeatHold  time.Duration
	keys        map[core.Action]*heldKey
}

// NewHeldKeys creates a tracker with the default hold windows.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		InitialHold: DefaultInitialHold,
		RepeatHold:  DefaultRepeatHold,
		keys:        make(map[core.Action]*heldKey),
	}
}

// Press records a key press at now. Pressing a direction releases its
// opposite, since a terminal repeats only the most recent key.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if opp := opposite(a); opp != core.ActionNone {
		delete(h.keys, opp)
	}
	if k, ok := h.keys[a]; ok && now.Sub(k.last) <= h.window(k) {
		k.last = now
		k.repeats++
		return
	}
	h.keys[a] = &heldKey{last: now}
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.keys)
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	k, ok := h.keys[a]
	return ok && now.Sub(k.last) <= h.window(k)
}

// Apply sets every action still held at now on the frame and drops the
// ones whose window has passed.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, k := range h.keys {
		if now.Sub(k.last) > h.window(k) {
			delete(h.keys, a)
			continue
		}
		frame.Set(a)
	}
}

func (h *HeldKeys) window(k *heldKey) time.Duration {
	if k.repeats == 0 {
		return h.InitialHold
	}
	return h.RepeatHold
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
