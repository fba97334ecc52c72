package ai

import (
	"context"
	"math/rand"
	"time"

	"pongsim/internal/game"
)

const (
	// NudgePixels is the bounded position adjustment a categorical
	// model output maps to. The model steers; it never teleports.
	NudgePixels = 50.0

	// DefaultInferTimeout bounds a synchronous provider call well under
	// one tick.
	DefaultInferTimeout = 10 * time.Millisecond

	// defensiveJitter is the fraction of the field height the idle
	// defensive position wanders by, scaled by the error scale.
	defensiveJitter = 0.1
)

// Controller is the opponent decision module. Once per tick it reads the
// ball and paddle state, picks a target for its paddle, degrades that
// target according to the difficulty parameters, and writes it through
// the paddle's normal target-seeking path.
type Controller struct {
	cfg        game.Config
	difficulty *Difficulty
	predictor  Predictor
	rng        *rand.Rand

	provider     Provider
	inferTimeout time.Duration

	lastVX    float64
	countdown float64
	committed float64
}

// NewController creates a controller for the given difficulty. rng is
// the injected randomness source; a seeded source makes the controller
// deterministic.
func NewController(cfg game.Config, difficulty *Difficulty, rng *rand.Rand) *Controller {
	return &Controller{
		cfg:        cfg,
		difficulty: difficulty,
		predictor:  NewPredictor(cfg),
		rng:        rng,
		committed:  cfg.FieldHeight / 2,
	}
}

// SetProvider configures an optional learned-model backend. A zero
// timeout selects the default.
func (c *Controller) SetProvider(p Provider, timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultInferTimeout
	}
	c.provider = p
	c.inferTimeout = timeout
}

// Decide runs one decision step. dt is in ticks, as for the physics.
func (c *Controller) Decide(ball *game.Ball, own, opp *game.Paddle, scoreOwn, scoreOpp int, dt float64) {
	params := c.difficulty.Params()
	own.MoveSpeed = c.cfg.PaddleMoveSpeed * params.SpeedScale

	// A direction change invalidates whatever the controller was
	// tracking; it has to "see" the ball again.
	if c.lastVX*ball.Velocity.X < 0 {
		c.countdown = params.ReactionTime
	}
	c.lastVX = ball.Velocity.X

	var target float64
	if c.movingToward(ball, own) {
		raw := c.rawTarget(ball, own, opp, scoreOwn, scoreOpp)
		target = c.applyReactionDelay(raw, params, dt)
	} else {
		// Ball moving away: drift back to a loosely centered
		// defensive position.
		jitter := (c.rng.Float64()*2 - 1) * defensiveJitter * c.cfg.FieldHeight * params.ErrorScale
		target = c.cfg.FieldHeight/2 + jitter
	}

	target += (c.rng.Float64()*2 - 1) * c.cfg.FieldHeight * params.ErrorScale

	own.SetTarget(target-own.Height/2, c.cfg.FieldHeight)
}

// RecordPointOutcome forwards a point result to the adaptive state.
// playerWon is true when the human took the point.
func (c *Controller) RecordPointOutcome(playerWon bool) {
	c.difficulty.RecordPointOutcome(playerWon)
}

// Reset discards cached tracking state at a round boundary. Any
// inference still in flight is abandoned with it; results for a dead
// round are never retried.
func (c *Controller) Reset() {
	c.countdown = c.difficulty.Params().ReactionTime
	c.committed = c.cfg.FieldHeight / 2
	c.lastVX = 0
}

// Difficulty exposes the controller's difficulty state.
func (c *Controller) Difficulty() *Difficulty {
	return c.difficulty
}

func (c *Controller) movingToward(ball *game.Ball, own *game.Paddle) bool {
	if own.Side == game.SideLeft {
		return ball.Velocity.X < 0
	}
	return ball.Velocity.X > 0
}

// rawTarget computes the undegraded target center: the learned model's
// bounded nudge when a provider is configured and answers in time, the
// analytic intercept otherwise.
func (c *Controller) rawTarget(ball *game.Ball, own, opp *game.Paddle, scoreOwn, scoreOpp int) float64 {
	if c.provider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), c.inferTimeout)
		out, err := c.provider.Infer(ctx, Features(c.cfg, ball, own, opp, scoreOwn, scoreOpp))
		cancel()
		if err == nil {
			switch Argmax(out) {
			case OutputUp:
				return own.CenterY() - NudgePixels
			case OutputDown:
				return own.CenterY() + NudgePixels
			default:
				return own.CenterY()
			}
		}
		// Inference failure is recovered locally; fall through to the
		// rule-based path.
	}

	faceX := own.Bounds().Right()
	if own.Side == game.SideRight {
		faceX = own.Position.X
	}
	return c.predictor.PredictInterceptY(ball, faceX, DefaultMaxBounces)
}

// applyReactionDelay eases from the last committed target toward the new
// raw target while the reaction countdown runs, then commits the raw
// target and restarts the countdown.
func (c *Controller) applyReactionDelay(raw float64, params Params, dt float64) float64 {
	budget := params.ReactionTime
	if budget <= 0 {
		c.committed = raw
		return raw
	}

	if c.countdown > 0 {
		c.countdown -= dt * game.FixedStep
		if c.countdown > 0 {
			frac := 1 - c.countdown/budget
			return c.committed + (raw-c.committed)*frac
		}
	}

	c.committed = raw
	c.countdown = budget
	return raw
}
