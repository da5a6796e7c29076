package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = %v, %v; want %v, %v", tt.name, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestIsFire(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsFire(tea.KeyMsg{Type: tea.KeySpace}) {
		t.Error("Space should fire")
	}
	if km.IsFire(runeKey("f")) {
		t.Error("f should not fire")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(keys, tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldKeysInitialWindow(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)

	if !h.Held(core.ActionUp, t0.Add(500*time.Millisecond)) {
		t.Error("Key should be held inside the initial window")
	}
	if h.Held(core.ActionUp, t0.Add(DefaultInitialHold+time.Millisecond)) {
		t.Error("Key should be released after the initial window")
	}
}

func TestHeldKeysRepeatWindow(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionLeft, t0.Add(400*time.Millisecond)) // first repeat
	h.Press(core.ActionLeft, t0.Add(430*time.Millisecond))

	if !h.Held(core.ActionLeft, t0.Add(530*time.Millisecond)) {
		t.Error("Key should be held between repeats")
	}
	if h.Held(core.ActionLeft, t0.Add(430*time.Millisecond+DefaultRepeatHold+time.Millisecond)) {
		t.Error("Key should be released once repeats stop")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.Held(core.ActionLeft, now) {
		t.Error("Pressing right should release left")
	}
	if !h.Held(core.ActionRight, now) {
		t.Error("Right should be held")
	}
}

func TestHeldKeysApply(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionLeft, t0)

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(100*time.Millisecond))
	if !frame.Has(core.ActionUp) || !frame.Has(core.ActionLeft) {
		t.Error("Apply should set held actions")
	}

	late := core.NewInputFrame()
	h.Apply(&late, t0.Add(time.Second))
	if late.Has(core.ActionUp) || late.Has(core.ActionLeft) {
		t.Error("Apply should drop expired keys")
	}
	if len(h.keys) != 0 {
		t.Errorf("Expired keys should be pruned, %d left", len(h.keys))
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionDown, t0)
	h.Release()

	if h.Held(core.ActionDown, t0) {
		t.Error("Release should forget held keys")
	}
}
