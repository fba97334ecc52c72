package game

import (
	"fmt"
	"math/rand"

	"pongsim/internal/geom"
)

// Opponent decides a paddle target once per tick. Implemented by the AI
// controller; the engine only drives it and reports point outcomes.
type Opponent interface {
	Decide(ball *Ball, own, opp *Paddle, scoreOwn, scoreOpp int, dt float64)
	RecordPointOutcome(playerWon bool)
	Reset()
}

// Engine owns one match's simulation: clock, bodies, collision
// resolution, match lifecycle and opponent updates. One tick is an
// atomic unit; callers read state between ticks only, and feed human
// input exclusively through SetHumanTarget.
type Engine struct {
	cfg      Config
	clock    *Clock
	resolver *Resolver
	rng      *rand.Rand

	ball  *Ball
	left  *Paddle
	right *Paddle
	match *Match

	opponents map[Side]Opponent
	queue     EventQueue
	tick      uint64
}

// NewEngine validates the configuration and builds a match with a human
// left paddle and an AI right paddle. rng seeds every randomized path in
// the simulation, so a seeded source replays identically.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return &Engine{
		cfg:       cfg,
		clock:     NewClock(),
		resolver:  NewResolver(cfg),
		rng:       rng,
		ball:      NewBall(cfg),
		left:      NewPaddle(cfg, SideLeft, false),
		right:     NewPaddle(cfg, SideRight, true),
		match:     NewMatch(cfg),
		opponents: make(map[Side]Opponent),
	}, nil
}

// AttachOpponent wires an opponent controller to a side's paddle.
func (e *Engine) AttachOpponent(side Side, op Opponent) {
	e.opponents[side] = op
	e.paddle(side).IsAIControlled = true
}

// Start begins the match with the opening countdown.
func (e *Engine) Start() {
	e.match.Start()
}

// Pause suspends play; Resume continues it.
func (e *Engine) Pause() { e.match.Pause() }

// Resume continues a paused match.
func (e *Engine) Resume() { e.match.Resume() }

// Advance feeds a wall-clock delta to the clock and runs the resulting
// fixed steps. It returns the number of ticks executed.
func (e *Engine) Advance(dt float64) int {
	steps := e.clock.Advance(dt)
	for i := 0; i < steps; i++ {
		e.Tick()
	}
	return steps
}

// Clock exposes the simulation clock, mainly so tests and replay tooling
// can lock the time scale.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// Tick executes one fixed step: integrate, resolve collisions, apply
// scoring, then let the opponents pick their next targets.
func (e *Engine) Tick() {
	e.tick++
	ts := e.clock.TimeScale()

	switch e.match.Phase {
	case PhaseCountdown:
		e.left.Integrate(e.cfg.FieldHeight, 1, ts)
		e.right.Integrate(e.cfg.FieldHeight, 1, ts)
		if e.match.TickCountdown() {
			e.serve()
		}
		return

	case PhaseRoundScored:
		e.match.NextRound()
		return

	case PhasePlaying:
		// fall through below

	default:
		// Ready, Paused and GameOver ticks mutate nothing.
		return
	}

	e.ball.Integrate(e.cfg, 1, ts)
	e.left.Integrate(e.cfg.FieldHeight, 1, ts)
	e.right.Integrate(e.cfg.FieldHeight, 1, ts)

	events := e.resolver.DetectAndResolve(e.ball, e.left, e.right)
	for _, ev := range events {
		e.queue.Emit(ev)
		switch ev.Kind {
		case EventPaddleHit:
			e.match.RecordRally()
		case EventScore:
			e.applyScore(ev.Side)
		}
	}

	if e.match.Phase == PhasePlaying {
		for side, op := range e.opponents {
			own := e.paddle(side)
			op.Decide(e.ball, own, e.paddle(side.Other()), e.score(side), e.score(side.Other()), 1)
		}
	}
}

// SetHumanTarget is the external input setter: y is the desired paddle
// center. The target goes through the same rate-limited integration path
// the AI uses, so human movement obeys the same speed and bounds rules.
func (e *Engine) SetHumanTarget(y float64) {
	for _, p := range []*Paddle{e.left, e.right} {
		if !p.IsAIControlled {
			p.SetTarget(y-p.Height/2, e.cfg.FieldHeight)
		}
	}
}

// MoveHumanTarget shifts the human target by dy field units.
func (e *Engine) MoveHumanTarget(dy float64) {
	for _, p := range []*Paddle{e.left, e.right} {
		if !p.IsAIControlled {
			p.SetTarget(p.TargetY+dy, e.cfg.FieldHeight)
		}
	}
}

// DrainEvents returns the events raised since the last drain.
func (e *Engine) DrainEvents() []Event {
	return e.queue.Drain()
}

// Ball returns the simulation ball. Read between ticks only.
func (e *Engine) Ball() *Ball { return e.ball }

// Match returns the match state. Read between ticks only.
func (e *Engine) Match() *Match { return e.match }

// Paddle returns the paddle defending the given side.
func (e *Engine) Paddle(side Side) *Paddle {
	return e.paddle(side)
}

// Config returns the simulation configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Snapshot is a render-ready copy of the visible state.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Countdown  int
	ScoreLeft  int
	ScoreRight int
	Rally      int
	MaxRally   int

	BallPos   geom.Vector2
	BallTrail []geom.Vector2

	Left  PaddleView
	Right PaddleView
}

// PaddleView is the renderable slice of a paddle's state.
type PaddleView struct {
	Y        float64
	Height   float64
	X        float64
	Width    float64
	Flashing bool
}

// Snapshot captures the current visible state for a renderer.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:       e.tick,
		Phase:      e.match.Phase,
		Countdown:  e.match.CountdownLeft,
		ScoreLeft:  e.match.ScoreLeft,
		ScoreRight: e.match.ScoreRight,
		Rally:      e.match.RallyCount,
		MaxRally:   e.match.MaxRally,
		BallPos:    e.ball.Center(),
		BallTrail:  append([]geom.Vector2(nil), e.ball.Trail()...),
		Left:       e.paddleView(e.left),
		Right:      e.paddleView(e.right),
	}
}

func (e *Engine) paddleView(p *Paddle) PaddleView {
	return PaddleView{
		Y:        p.Position.Y,
		Height:   p.Height,
		X:        p.Position.X,
		Width:    p.Width,
		Flashing: p.Flashing(),
	}
}

func (e *Engine) paddle(side Side) *Paddle {
	if side == SideLeft {
		return e.left
	}
	return e.right
}

func (e *Engine) score(side Side) int {
	if side == SideLeft {
		return e.match.ScoreLeft
	}
	return e.match.ScoreRight
}

// serve launches a new round toward the side that conceded the last
// point and clears opponent tracking state.
func (e *Engine) serve() {
	e.ball.Reset(e.cfg, e.match.ServeTo == SideRight, e.rng)
	for _, op := range e.opponents {
		op.Reset()
	}
}

// applyScore awards the point, parks the ball in the center, and
// notifies opponents of the outcome for adaptive difficulty.
func (e *Engine) applyScore(scorer Side) {
	e.match.RecordPoint(scorer)

	e.ball.Position = geom.Vector2{
		X: e.cfg.FieldWidth/2 - e.ball.Radius,
		Y: e.cfg.FieldHeight/2 - e.ball.Radius,
	}
	e.ball.Velocity = geom.Vector2{}
	e.ball.Spin = 0
	e.ball.SyncBounds()

	for side, op := range e.opponents {
		op.RecordPointOutcome(scorer != side)
	}
}
