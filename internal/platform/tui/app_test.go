package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/toppa/internal/core"
	"github.com/vovakirdan/toppa/internal/games/toppa"
	"github.com/vovakirdan/toppa/internal/storage"
)

func newTestApp(t *testing.T) (AppModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}
	play := NewModel(toppa.New(), store, cfg, nil)
	return NewAppModel(play, store), store
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am
}

// tickAt builds a tick message d after a fixed base time.
func tickAt(d time.Duration) TickMsg {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return TickMsg(base.Add(d))
}

func TestAppScoreboardToggle(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.inBoard {
		t.Fatal("esc on the title screen should open the scoreboard")
	}
	if !strings.Contains(m.View(), "No matches recorded yet") {
		t.Errorf("empty scoreboard view missing placeholder:\n%s", m.View())
	}

	// Ticks keep reaching the game while the board is open.
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inBoard {
		t.Fatal("esc on the scoreboard should return to the game")
	}
	if !strings.Contains(m.View(), "T O P P A") {
		t.Errorf("game view missing title:\n%s", m.View())
	}
}

func TestAppBackIgnoredDuringMatch(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if !m.play.State().InMatch {
		t.Fatal("enter should start the countdown")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inBoard {
		t.Error("scoreboard must not open mid-match")
	}
}

func TestAppQuit(t *testing.T) {
	m, _ := newTestApp(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(AppModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRecordsResultOnce(t *testing.T) {
	m, store := newTestApp(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	frame := time.Second / 60
	i := 0
	for ; i < 200*60 && !m.play.State().GameOver; i++ {
		m = update(t, m, tickAt(time.Duration(i)*frame))
	}
	if !m.play.State().GameOver {
		t.Fatal("match never reached the result screen")
	}
	for j := range 10 {
		m = update(t, m, tickAt(time.Duration(i+j)*frame))
	}

	st, err := store.Stats(toppa.GameID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Games != 1 {
		t.Errorf("logged %d matches, want 1", st.Games)
	}
}

func TestModelFollowsWallClock(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    toppa.Status
	}{
		{"counting down", 3 * time.Second, toppa.StatusCountdown},
		{"playing", 10 * time.Second, toppa.StatusPlaying},
		{"finishing", 95 * time.Second, toppa.StatusFinishing},
		{"result", 200 * time.Second, toppa.StatusResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestApp(t)
			game := m.play.game.(*toppa.Game)

			// One tick per wall second, far slower than the tick rate.
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			for s := time.Duration(0); s <= tt.elapsed; s += time.Second {
				m = update(t, m, tickAt(s))
			}

			if got := game.Session().Status(); got != tt.want {
				t.Errorf("after %v: status = %v, want %v", tt.elapsed, got, tt.want)
			}
			if game.Now() != tt.elapsed {
				t.Errorf("game time = %v, want %v", game.Now(), tt.elapsed)
			}
		})
	}
}
