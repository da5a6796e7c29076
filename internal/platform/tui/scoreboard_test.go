package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/storage"
)

func init() {
	registry.Register("frames", func() registry.Game { return &frameGame{} })
}

func boardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func boardConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}
}

func TestScoreboardPlayTime(t *testing.T) {
	m := NewScoreboardModel(nil, boardConfig())

	tests := []struct {
		ticks int64
		want  string
	}{
		{0, "0:00"},
		{60, "0:01"},
		{3600, "1:00"},
		{3690, "1:02"},
	}
	for _, tt := range tests {
		if got := m.playTime(tt.ticks); got != tt.want {
			t.Errorf("playTime(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, boardConfig())
	if !strings.Contains(m.View(), "no database") {
		t.Error("View should explain that scores are off")
	}
}

func TestScoreboardBestAndStats(t *testing.T) {
	store := boardStore(t)
	if _, err := store.SaveScore("frames", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	rec := storage.SessionRecord{SessionID: "a", GameID: "frames", Frontend: "terminal", Score: 42, Ticks: 120}
	if _, err := store.SaveSession(rec); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	m := NewScoreboardModel(store, boardConfig())
	for i, g := range m.games {
		if g.ID == "frames" {
			m.selected = i
		}
	}
	m.reload()

	if len(m.best) != 1 || m.best[0].Score != 42 {
		t.Fatalf("best = %+v, want one score of 42", m.best)
	}
	if got := m.statsLine(); !strings.Contains(got, "1 sessions") || !strings.Contains(got, "0:02") {
		t.Errorf("statsLine() = %q", got)
	}
}

func TestScoreboardToggleRecent(t *testing.T) {
	store := boardStore(t)
	for _, id := range []string{"s1", "s2"} {
		rec := storage.SessionRecord{SessionID: id, GameID: "frames", Frontend: "ssh", Player: "sam"}
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, boardConfig())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(ScoreboardModel)

	if m.view != viewRecent {
		t.Fatal("s should switch to the recent sessions view")
	}
	if len(m.recent) != 2 {
		t.Errorf("Expected 2 recent sessions, got %d", len(m.recent))
	}
	if m.sidebar() {
		t.Error("The recent view lists every game and has no sidebar")
	}
	if !strings.Contains(m.View(), "RECENT SESSIONS") {
		t.Error("View should show the recent sessions title")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if updated.(ScoreboardModel).view != viewBest {
		t.Error("s should toggle back to best runs")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, boardConfig())

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(ScoreboardModel).IsGoingBack() {
		t.Error("Esc should go back")
	}

	quit, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !quit.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
