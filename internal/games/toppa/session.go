package toppa

import (
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
)

// Config holds the rule timings and spawn odds of a session.
type Config struct {
	TimeLimit      time.Duration // Initial match budget
	CountdownBeat  time.Duration // Length of one countdown step
	CountdownBeats int           // Numbered steps shown before START
	FinishDelay    time.Duration // Frozen-board display before the result
	MoveDuration   time.Duration
	ChangeDuration time.Duration
	Spawn          SpawnWeights
}

// DefaultConfig returns the standard 90 second match.
func DefaultConfig() Config {
	return Config{
		TimeLimit:      90 * time.Second,
		CountdownBeat:  time.Second,
		CountdownBeats: 3,
		FinishDelay:    3 * time.Second,
		MoveDuration:   DefaultMoveDuration,
		ChangeDuration: DefaultChangeDuration,
		Spawn:          DefaultSpawnWeights,
	}
}

// Session is one player's game from the title screen through any number of
// matches. All state lives here; there is no package-level game state.
//
// Session is not safe for concurrent use. The caller's frame loop is the
// only thread of control: it issues commands and calls Tick once per frame.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	status statusMachine
	engine Engine
	clock  Clock
	anim   Animator
	spawn  SpawnPolicy

	finishAt   time.Duration
	frozenLeft int // Timer display captured when the board froze

	countdownTask frameTask
	timerTask     frameTask
	finishTask    frameTask
	animTask      frameTask
}

// NewSession creates a session in the Initial state.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   rng,
		clock: Clock{Beat: cfg.CountdownBeat, Beats: cfg.CountdownBeats},
		anim:  Animator{MoveDuration: cfg.MoveDuration, ChangeDuration: cfg.ChangeDuration},
		spawn: SpawnPolicy{Weights: cfg.Spawn},
	}
	s.engine.TimeLimit = cfg.TimeLimit

	s.countdownTask.step = s.countdownStep
	s.timerTask.step = s.timerStep
	s.finishTask.step = s.finishStep
	s.animTask.step = s.anim.Tick

	return s
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status.status
}

// Start begins a new countdown. Only valid from Initial or Result.
func (s *Session) Start(now time.Duration) bool {
	if !s.status.begin() {
		return false
	}
	s.reset()
	s.clock.BeginCountdown(now)
	s.countdownTask.start(now)
	return true
}

// Retry is Start issued from the result screen.
func (s *Session) Retry(now time.Duration) bool {
	return s.Start(now)
}

// reset returns every per-match value to its initial state.
func (s *Session) reset() {
	s.engine.Reset(s.cfg.TimeLimit)
	s.anim.Stop()
	s.animTask.stop()
	s.timerTask.stop()
	s.finishTask.stop()
}

// countdownStep shows 3, 2, 1, START and then starts play.
func (s *Session) countdownStep(now time.Duration) bool {
	if s.Status() != StatusCountdown {
		return false
	}
	if !s.clock.CountdownDone(now) {
		return true
	}
	s.beginMatch(now)
	return false
}

// beginMatch clears the board, spawns the opening tiles and starts the
// match timer.
func (s *Session) beginMatch(now time.Duration) {
	if !s.status.play() {
		return
	}
	s.engine.Reset(s.cfg.TimeLimit)
	s.clock.BeginMatch(now)

	s.spawn.Spawn(&s.engine.Grids, s.rng)
	s.spawn.Spawn(&s.engine.Grids, s.rng)
	s.startAnimation(now, true)

	s.timerTask.start(now)
}

// timerStep keeps the match running until its budget is spent.
func (s *Session) timerStep(now time.Duration) bool {
	if s.Status() != StatusPlaying {
		return false
	}
	if s.running(now) {
		return true
	}
	s.finish(now)
	return false
}

// finish freezes the board and schedules the result screen.
func (s *Session) finish(now time.Duration) {
	if !s.status.finish() {
		return
	}
	s.finishAt = now + s.cfg.FinishDelay
	s.frozenLeft = s.clock.Remaining(now, s.engine.TimeLimit)
	s.finishTask.start(now)
}

func (s *Session) finishStep(now time.Duration) bool {
	if s.Status() != StatusFinishing {
		return false
	}
	if now < s.finishAt {
		return true
	}
	s.status.result()
	return false
}

func (s *Session) running(now time.Duration) bool {
	return s.clock.Running(now, s.engine.TimeLimit)
}

func (s *Session) startAnimation(now time.Duration, skipMove bool) {
	if s.anim.Start(now, skipMove) {
		s.animTask.start(now)
	}
}

// Move resolves a directional command. It returns true only when the
// session is playing with time left and at least one tile moves or merges.
// A move that changes nothing still clears the previous move's animation
// grids, but nothing spawns and the animation is not restarted.
func (s *Session) Move(dir Direction, now time.Duration) bool {
	if !s.Status().AcceptsMoves() || !s.running(now) {
		return false
	}
	if !s.engine.Slide(dir) {
		return false
	}

	s.spawn.Spawn(&s.engine.Grids, s.rng)
	if !s.engine.CanMove() {
		s.finish(now)
	}
	s.startAnimation(now, false)
	return true
}

// MoveLeft moves tiles toward column 0.
func (s *Session) MoveLeft(now time.Duration) bool { return s.Move(DirLeft, now) }

// MoveRight moves tiles toward the last column.
func (s *Session) MoveRight(now time.Duration) bool { return s.Move(DirRight, now) }

// MoveUp moves tiles toward row 0.
func (s *Session) MoveUp(now time.Duration) bool { return s.Move(DirUp, now) }

// MoveDown moves tiles toward the last row.
func (s *Session) MoveDown(now time.Duration) bool { return s.Move(DirDown, now) }

// Tick runs one frame of every active loop. Call it once per rendered frame.
func (s *Session) Tick(now time.Duration) {
	s.countdownTask.run(now)
	s.timerTask.run(now)
	s.finishTask.run(now)
	s.animTask.run(now)
}

// View is everything a renderer polls each frame.
type View struct {
	Status    Status
	Countdown string // Countdown label, empty outside the countdown
	Grids     Grids
	Score     int
	Merges    int
	TimeLeft  int // Whole seconds shown on the timer
	Phase     AnimPhase
	Ratio     float64
	Hints     [BoardSize][BoardSize]CellHint
}

// View captures the renderable state at now.
func (s *Session) View(now time.Duration) View {
	v := View{
		Status: s.Status(),
		Grids:  s.engine.Grids,
		Score:  s.engine.Score,
		Merges: s.engine.MergeCount,
		Phase:  s.anim.Phase(),
		Ratio:  s.anim.Ratio(),
		Hints:  s.anim.Hints(&s.engine.Grids),
	}

	switch v.Status {
	case StatusInitial:
		v.TimeLeft = int(s.cfg.TimeLimit / time.Second)
	case StatusCountdown:
		v.TimeLeft = int(s.cfg.TimeLimit / time.Second)
		v.Countdown = s.clock.CountdownLabel(now)
	case StatusPlaying:
		v.TimeLeft = s.clock.Remaining(now, s.engine.TimeLimit)
	default:
		v.TimeLeft = s.frozenLeft
	}

	return v
}

// ResultSummary is the final tally offered for sharing.
type ResultSummary struct {
	Score       int
	Merges      int
	ScoreText   string // Score with thousands separators
	MergesText  string
	HighestTile Tile
}

// Result returns the final tally. ok is false outside the Result state.
func (s *Session) Result() (ResultSummary, bool) {
	if s.Status() != StatusResult {
		return ResultSummary{}, false
	}
	return ResultSummary{
		Score:       s.engine.Score,
		Merges:      s.engine.MergeCount,
		ScoreText:   humanize.Comma(int64(s.engine.Score)),
		MergesText:  humanize.Comma(int64(s.engine.MergeCount)),
		HighestTile: MaxLight(s.engine.Board),
	}, true
}
