package model

import (
	"context"
	"math"

	"pongsim/internal/ai"
	"pongsim/internal/game"
)

// ruleDeadband is how close (in field units) the projected ball must be
// to the paddle center before the rule provider answers "stay".
const ruleDeadband = 12.0

// RuleProvider is an ai.Provider with no learned model behind it: it
// projects the ball forward from the feature vector alone and answers
// up/stay/down. It backs cmd/inferd and doubles as a test provider.
type RuleProvider struct {
	cfg game.Config
}

// NewRuleProvider creates a rule provider for the given field geometry.
func NewRuleProvider(cfg game.Config) *RuleProvider {
	return &RuleProvider{cfg: cfg}
}

// Infer denormalizes the feature vector, folds the ball's vertical
// travel over a one-second horizon, and votes for the direction that
// closes the gap to the paddle. The output is a hard one-hot vector.
func (r *RuleProvider) Infer(ctx context.Context, features [ai.FeatureCount]float64) ([ai.OutputCount]float64, error) {
	if err := ctx.Err(); err != nil {
		return [ai.OutputCount]float64{}, err
	}

	ballY := features[1] * r.cfg.FieldHeight
	vy := features[3] * ai.VelocityNorm
	paddleY := features[4] * r.cfg.FieldHeight

	projected := foldY(ballY+vy*60, r.cfg.FieldHeight)

	var out [ai.OutputCount]float64
	switch {
	case math.Abs(projected-paddleY) <= ruleDeadband:
		out[ai.OutputStay] = 1
	case projected < paddleY:
		out[ai.OutputUp] = 1
	default:
		out[ai.OutputDown] = 1
	}
	return out, nil
}

// foldY mirrors a projected y back into [0, height].
func foldY(y, height float64) float64 {
	for i := 0; i < ai.DefaultMaxBounces; i++ {
		if y < 0 {
			y = -y
			continue
		}
		if y > height {
			y = 2*height - y
			continue
		}
		break
	}
	return math.Min(math.Max(y, 0), height)
}
