package toppa

import (
	"math/rand"
	"testing"
	"time"
)

func newTestSession(seed int64) *Session {
	return NewSession(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func countTiles(b Board) int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] != TileEmpty {
				n++
			}
		}
	}
	return n
}

// startPlaying runs a session from Initial into Playing at 4s.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	if !s.Start(0) {
		t.Fatal("Start from initial refused")
	}
	s.Tick(4 * time.Second)
	if s.Status() != StatusPlaying {
		t.Fatalf("status = %v, want playing", s.Status())
	}
}

func TestSessionCountdown(t *testing.T) {
	s := newTestSession(1)

	if v := s.View(0); v.Status != StatusInitial || v.TimeLeft != 90 {
		t.Fatalf("initial view = %+v", v)
	}

	s.Start(0)
	if s.Status() != StatusCountdown {
		t.Fatalf("status = %v, want countdown", s.Status())
	}
	if s.Start(0) {
		t.Error("Start during countdown must be refused")
	}

	labels := []struct {
		at   time.Duration
		want string
	}{
		{0, "3"},
		{time.Second, "2"},
		{2 * time.Second, "1"},
		{3*time.Second + 500*time.Millisecond, "START"},
	}
	for _, l := range labels {
		at := l.at
		s.Tick(at)
		if got := s.View(at).Countdown; got != l.want {
			t.Errorf("label at %v = %q, want %q", at, got, l.want)
		}
		if s.Status() != StatusCountdown {
			t.Errorf("left countdown early at %v", at)
		}
	}

	if s.MoveLeft(2 * time.Second) {
		t.Error("moves must be ignored during countdown")
	}

	s.Tick(4 * time.Second)
	if s.Status() != StatusPlaying {
		t.Fatalf("status = %v, want playing", s.Status())
	}
	v := s.View(4 * time.Second)
	if n := countTiles(v.Grids.Board); n != 2 {
		t.Errorf("opening board has %d tiles, want 2", n)
	}
	if v.TimeLeft != 90 {
		t.Errorf("TimeLeft = %d, want 90", v.TimeLeft)
	}
	if v.Phase != PhaseChange {
		t.Errorf("opening animation phase = %v, want change", v.Phase)
	}
}

func TestSessionMove(t *testing.T) {
	s := newTestSession(2)
	startPlaying(t, s)

	s.engine.Board = Board{{1, 1, 0, 0}}
	now := 5 * time.Second

	if !s.MoveLeft(now) {
		t.Fatal("merge move should succeed")
	}
	v := s.View(now)
	if v.Score != 6 || v.Merges != 1 {
		t.Errorf("score=%d merges=%d, want 6 and 1", v.Score, v.Merges)
	}
	if v.Grids.Board[0][0] != TileTwo {
		t.Errorf("merged tile = %v, want 2", v.Grids.Board[0][0])
	}
	if n := countTiles(v.Grids.Board); n != 2 {
		t.Errorf("board has %d tiles, want merged tile plus one spawn", n)
	}
	if v.Phase != PhaseInitial {
		t.Errorf("phase = %v, want animation restarted", v.Phase)
	}
}

func TestSessionNoOpMove(t *testing.T) {
	s := newTestSession(3)
	startPlaying(t, s)

	s.engine.Board = Board{{1, 2, 0, 0}}
	s.Tick(4500 * time.Millisecond) // opening animation done

	before := s.engine
	if s.MoveLeft(5 * time.Second) {
		t.Fatal("move that changes nothing must report false")
	}
	if s.engine.Board != before.Board {
		t.Error("board changed")
	}
	if s.engine.Score != before.Score || s.engine.MergeCount != before.MergeCount || s.engine.TimeLimit != before.TimeLimit {
		t.Error("counters changed")
	}
	if countTiles(s.engine.Board) != 2 {
		t.Error("no-op move must not spawn")
	}
	if s.anim.Phase() != PhaseNone || s.animTask.active {
		t.Errorf("phase=%v animating=%v, want the animation left idle", s.anim.Phase(), s.animTask.active)
	}
}

func TestSessionStuckBoardKeepsPlaying(t *testing.T) {
	s := newTestSession(5)
	startPlaying(t, s)

	s.engine.Board = Board{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}
	s.Tick(4500 * time.Millisecond)
	before := s.engine.Board

	moves := []struct {
		name string
		move func(time.Duration) bool
	}{
		{"left", s.MoveLeft},
		{"right", s.MoveRight},
		{"up", s.MoveUp},
		{"down", s.MoveDown},
	}
	now := 5 * time.Second
	for _, m := range moves {
		if m.move(now) {
			t.Errorf("%s on a full checkerboard reported a change", m.name)
		}
		s.Tick(now)
		now += time.Second
	}

	if s.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing", s.Status())
	}
	if s.engine.Board != before {
		t.Error("board changed")
	}
	if s.anim.Phase() != PhaseNone || s.animTask.active {
		t.Errorf("phase=%v animating=%v, want the animation left idle", s.anim.Phase(), s.animTask.active)
	}
}

func TestSessionTimeExtension(t *testing.T) {
	s := newTestSession(4)
	startPlaying(t, s)

	s.engine.Board = Board{{6, 6, 0, 0}}
	if !s.MoveLeft(10 * time.Second) {
		t.Fatal("top-tier merge should succeed")
	}
	if s.engine.TimeLimit != 120*time.Second {
		t.Errorf("TimeLimit = %v, want 2m0s", s.engine.TimeLimit)
	}

	// Past the original budget but within the extended one.
	at := 4*time.Second + 100*time.Second
	s.Tick(at)
	if s.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing", s.Status())
	}
	if got := s.View(at).TimeLeft; got != 20 {
		t.Errorf("TimeLeft = %d, want 20", got)
	}
}

func TestSessionTimeout(t *testing.T) {
	s := newTestSession(5)
	startPlaying(t, s)

	end := 94 * time.Second
	if s.MoveUp(end) || s.MoveDown(end) || s.MoveLeft(end) || s.MoveRight(end) {
		t.Error("moves after the budget must be ignored")
	}

	s.Tick(end)
	if s.Status() != StatusFinishing {
		t.Fatalf("status = %v, want finishing", s.Status())
	}
	if got := s.View(end + time.Second).TimeLeft; got != 0 {
		t.Errorf("frozen TimeLeft = %d, want 0", got)
	}
	if _, ok := s.Result(); ok {
		t.Error("Result must not be available while finishing")
	}

	s.Tick(end + 2*time.Second)
	if s.Status() != StatusFinishing {
		t.Errorf("status = %v, want finishing until the delay passes", s.Status())
	}

	s.engine.Score = 12345
	s.Tick(end + 3*time.Second)
	if s.Status() != StatusResult {
		t.Fatalf("status = %v, want result", s.Status())
	}
	res, ok := s.Result()
	if !ok {
		t.Fatal("Result unavailable")
	}
	if res.ScoreText != "12,345" {
		t.Errorf("ScoreText = %q, want 12,345", res.ScoreText)
	}
}

func TestSessionNoMovesLeft(t *testing.T) {
	s := newTestSession(6)
	startPlaying(t, s)

	s.engine.Board = Board{
		{5, 5, 3, 4},
		{4, 5, 3, 5},
		{3, 4, 5, 4},
		{5, 3, 4, 3},
	}
	now := 20 * time.Second
	if !s.MoveLeft(now) {
		t.Fatal("merge move should succeed")
	}
	if s.Status() != StatusFinishing {
		t.Fatalf("status = %v, want finishing", s.Status())
	}
	if got := s.View(now).TimeLeft; got != 74 {
		t.Errorf("frozen TimeLeft = %d, want 74", got)
	}
	if s.MoveUp(now) {
		t.Error("moves must be ignored once finishing")
	}

	s.Tick(now + 3*time.Second)
	if s.Status() != StatusResult {
		t.Errorf("status = %v, want result", s.Status())
	}
}

func TestSessionRetry(t *testing.T) {
	s := newTestSession(7)
	startPlaying(t, s)
	if s.Retry(5 * time.Second) {
		t.Error("retry must be refused while playing")
	}

	s.engine.Score = 500
	s.Tick(94 * time.Second)
	s.Tick(97 * time.Second)
	if s.Status() != StatusResult {
		t.Fatalf("status = %v, want result", s.Status())
	}

	if !s.Retry(100 * time.Second) {
		t.Fatal("retry from result refused")
	}
	v := s.View(100 * time.Second)
	if v.Status != StatusCountdown || v.Score != 0 || v.Merges != 0 || v.TimeLeft != 90 {
		t.Errorf("retry view = %+v", v)
	}
	if countTiles(v.Grids.Board) != 0 {
		t.Error("board should be cleared on retry")
	}

	s.Tick(104 * time.Second)
	if s.Status() != StatusPlaying {
		t.Errorf("status = %v, want playing after second countdown", s.Status())
	}
}
