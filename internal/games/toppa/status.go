package toppa

// Status is the phase of a session.
type Status int

const (
	StatusInitial Status = iota
	StatusCountdown
	StatusPlaying
	StatusFinishing
	StatusResult
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusCountdown:
		return "countdown"
	case StatusPlaying:
		return "playing"
	case StatusFinishing:
		return "finishing"
	case StatusResult:
		return "result"
	default:
		return "unknown"
	}
}

// AcceptsMoves reports whether directional commands may change the board.
func (s Status) AcceptsMoves() bool {
	return s == StatusPlaying
}

// CanBegin reports whether start/retry is accepted.
func (s Status) CanBegin() bool {
	return s == StatusInitial || s == StatusResult
}

// CapturesArrows reports whether arrow input belongs to the board rather
// than to the surrounding UI (menus, scrolling).
func (s Status) CapturesArrows() bool {
	return s == StatusCountdown || s == StatusPlaying || s == StatusFinishing
}

// statusMachine guards every transition. An invalid transition is refused
// and leaves the status unchanged.
type statusMachine struct {
	status Status
}

func (m *statusMachine) transition(from, to Status) bool {
	if m.status != from {
		return false
	}
	m.status = to
	return true
}

func (m *statusMachine) begin() bool {
	if !m.status.CanBegin() {
		return false
	}
	m.status = StatusCountdown
	return true
}

func (m *statusMachine) play() bool   { return m.transition(StatusCountdown, StatusPlaying) }
func (m *statusMachine) finish() bool { return m.transition(StatusPlaying, StatusFinishing) }
func (m *statusMachine) result() bool { return m.transition(StatusFinishing, StatusResult) }
