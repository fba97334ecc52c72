package model

import (
	"context"
	"testing"

	"pongsim/internal/ai"
	"pongsim/internal/game"
)

// features builds a vector the way the controller does, from raw field
// values.
func features(cfg game.Config, ballY, vy, paddleY float64) [ai.FeatureCount]float64 {
	var f [ai.FeatureCount]float64
	f[1] = ballY / cfg.FieldHeight
	f[3] = vy / ai.VelocityNorm
	f[4] = paddleY / cfg.FieldHeight
	return f
}

func TestRuleProvider_Votes(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewRuleProvider(cfg)

	cases := []struct {
		name               string
		ballY, vy, paddleY float64
		want               int
	}{
		{"ball settling above paddle", 100, 0, 400, ai.OutputUp},
		{"ball settling below paddle", 500, 0, 200, ai.OutputDown},
		{"ball dead ahead", 300, 0, 300, ai.OutputStay},
		{"inside deadband", 305, 0, 300, ai.OutputStay},
		{"drifting down past paddle", 280, 2, 300, ai.OutputDown},
		{"bounces off the floor", 550, 3, 300, ai.OutputDown},
	}
	for _, tt := range cases {
		out, err := p.Infer(context.Background(), features(cfg, tt.ballY, tt.vy, tt.paddleY))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got := ai.Argmax(out); got != tt.want {
			t.Errorf("%s: voted %d, want %d (out=%v)", tt.name, got, tt.want, out)
		}
	}
}

func TestRuleProvider_OneHot(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewRuleProvider(cfg)

	out, err := p.Infer(context.Background(), features(cfg, 100, 5, 400))
	if err != nil {
		t.Fatal(err)
	}
	sum := 0.0
	for _, v := range out {
		if v != 0 && v != 1 {
			t.Errorf("non-binary component %f", v)
		}
		sum += v
	}
	if sum != 1 {
		t.Errorf("expected exactly one vote, got sum %f", sum)
	}
}

func TestRuleProvider_HonorsContext(t *testing.T) {
	cfg := game.DefaultConfig()
	p := NewRuleProvider(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Infer(ctx, features(cfg, 300, 0, 300)); err == nil {
		t.Error("expected an error from a canceled context")
	}
}
