package ai

import (
	"math"
	"testing"

	"pongsim/internal/game"
	"pongsim/internal/geom"
)

func ballAt(cfg game.Config, x, y, vx, vy float64) *game.Ball {
	b := game.NewBall(cfg)
	b.Position = geom.Vector2{X: x - b.Radius, Y: y - b.Radius}
	b.Velocity = geom.Vector2{X: vx, Y: vy}
	b.SyncBounds()
	return b
}

func TestPredictInterceptY_StraightBall(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewPredictor(cfg)

	// Purely horizontal flight: no reflection, predicted Y is current Y.
	ball := ballAt(cfg, 200, 317, 5, 0)
	got := p.PredictInterceptY(ball, 700, DefaultMaxBounces)
	if math.Abs(got-317) > 1e-9 {
		t.Errorf("expected 317, got %f", got)
	}
}

func TestPredictInterceptY_BallMovingAway(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewPredictor(cfg)

	ball := ballAt(cfg, 200, 250, -5, 3)
	got := p.PredictInterceptY(ball, 700, DefaultMaxBounces)
	if got != 250 {
		t.Errorf("expected current Y for a departing ball, got %f", got)
	}
}

func TestPredictInterceptY_NearZeroHorizontal(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewPredictor(cfg)

	// Degenerate vertical motion must not divide by zero.
	ball := ballAt(cfg, 200, 250, 0, 8)
	got := p.PredictInterceptY(ball, 700, DefaultMaxBounces)
	if got != 250 {
		t.Errorf("expected current Y for vertical motion, got %f", got)
	}
}

func TestPredictInterceptY_SingleReflection(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewPredictor(cfg)

	// 100 ticks to the plane, y would reach 900; one mirror fold off
	// the bottom wall lands it at 300.
	ball := ballAt(cfg, 200, 300, 5, 6)
	got := p.PredictInterceptY(ball, 700, DefaultMaxBounces)
	if math.Abs(got-300) > 1e-6 {
		t.Errorf("expected folded intercept 300, got %f", got)
	}
}

func TestPredictInterceptY_StaysInField(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewPredictor(cfg)

	// A pathologically steep flight exhausts the fold budget; the
	// result is still clamped into the field.
	ball := ballAt(cfg, 10, 300, 0.1, 14)
	got := p.PredictInterceptY(ball, 790, DefaultMaxBounces)
	if got < 0 || got > cfg.FieldHeight {
		t.Errorf("intercept %f outside field", got)
	}
}

func TestSimulateForwardPath_Bounded(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewPredictor(cfg)

	ball := ballAt(cfg, 400, 300, 2, 1)
	path := p.SimulateForwardPath(ball, DefaultForwardFrames)

	if len(path) == 0 || len(path) > DefaultForwardFrames {
		t.Fatalf("expected 1..%d positions, got %d", DefaultForwardFrames, len(path))
	}
	for i, pos := range path {
		if pos.Y < 0 || pos.Y > cfg.FieldHeight {
			t.Fatalf("step %d: y=%f outside field", i, pos.Y)
		}
	}
}

func TestPredictors_Agree(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewPredictor(cfg)

	// The step simulation honors the ball radius at walls, the analytic
	// fold does not, so agreement is qualitative.
	const tolerance = 40.0

	cases := []struct{ vx, vy float64 }{
		{5, 0},
		{5, 2},
		{5, 6},
		{4, -5},
	}
	for _, tt := range cases {
		ball := ballAt(cfg, 200, 300, tt.vx, tt.vy)
		paddleX := 700.0

		analytic := p.PredictInterceptY(ball, paddleX, DefaultMaxBounces)

		frames := int((paddleX-200)/tt.vx) + 2
		path := p.SimulateForwardPath(ball, frames)
		var simulated float64
		found := false
		for _, pos := range path {
			if pos.X >= paddleX {
				simulated = pos.Y
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("v=(%f,%f): forward path never reached the plane", tt.vx, tt.vy)
		}

		if math.Abs(simulated-analytic) > tolerance {
			t.Errorf("v=(%f,%f): analytic %f vs simulated %f", tt.vx, tt.vy, analytic, simulated)
		}
	}
}
