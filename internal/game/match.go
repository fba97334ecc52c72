package game

// Phase is the round lifecycle state. Transitions run strictly
// Ready → Countdown → Playing, with Paused reachable from Playing only,
// and the RoundScored → Countdown → Playing loop repeating until a side
// reaches the winning score, which ends in the terminal GameOver.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseCountdown
	PhasePlaying
	PhasePaused
	PhaseRoundScored
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseRoundScored:
		return "round-scored"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Match tracks scores, rally counters and the round lifecycle.
type Match struct {
	ScoreLeft  int
	ScoreRight int
	RallyCount int
	MaxRally   int

	Phase          Phase
	PointsToWin    int
	CountdownLeft  int
	countdownTicks int

	// ServeTo is the side the next serve travels toward.
	ServeTo Side
}

// NewMatch creates a match in the Ready phase.
func NewMatch(cfg Config) *Match {
	return &Match{
		Phase:          PhaseReady,
		PointsToWin:    cfg.PointsToWin,
		countdownTicks: cfg.CountdownTicks,
		ServeTo:        SideRight,
	}
}

// Start moves the match from Ready into the opening countdown.
func (m *Match) Start() {
	if m.Phase != PhaseReady {
		return
	}
	m.beginCountdown()
}

// Pause suspends play. Only the Playing phase can pause.
func (m *Match) Pause() {
	if m.Phase == PhasePlaying {
		m.Phase = PhasePaused
	}
}

// Resume returns a paused match to play.
func (m *Match) Resume() {
	if m.Phase == PhasePaused {
		m.Phase = PhasePlaying
	}
}

// TickCountdown advances the countdown by one tick and reports whether
// it just expired, which is the moment to serve.
func (m *Match) TickCountdown() bool {
	if m.Phase != PhaseCountdown {
		return false
	}
	m.CountdownLeft--
	if m.CountdownLeft > 0 {
		return false
	}
	m.Phase = PhasePlaying
	return true
}

// RecordRally counts a paddle contact within the current round.
func (m *Match) RecordRally() {
	m.RallyCount++
	if m.RallyCount > m.MaxRally {
		m.MaxRally = m.RallyCount
	}
}

// RecordPoint awards a point to scorer and moves the match to
// RoundScored, or to GameOver when the winning score is reached. The
// next serve travels toward the side that conceded.
func (m *Match) RecordPoint(scorer Side) {
	if scorer == SideLeft {
		m.ScoreLeft++
	} else {
		m.ScoreRight++
	}
	m.RallyCount = 0
	m.ServeTo = scorer.Other()

	if m.ScoreLeft >= m.PointsToWin || m.ScoreRight >= m.PointsToWin {
		m.Phase = PhaseGameOver
		return
	}
	m.Phase = PhaseRoundScored
}

// NextRound moves a scored round into the pre-serve countdown.
func (m *Match) NextRound() {
	if m.Phase != PhaseRoundScored {
		return
	}
	m.beginCountdown()
}

// Over reports whether the match reached its terminal state.
func (m *Match) Over() bool {
	return m.Phase == PhaseGameOver
}

// Winner returns the winning side once the match is over.
func (m *Match) Winner() Side {
	if m.ScoreLeft >= m.PointsToWin {
		return SideLeft
	}
	return SideRight
}

func (m *Match) beginCountdown() {
	m.Phase = PhaseCountdown
	m.CountdownLeft = m.countdownTicks
}
