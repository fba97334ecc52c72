package ai

import "pongsim/internal/game"

// Normalization constants for the feature vector. These are part of the
// provider contract and must not drift from what models were trained on.
const (
	VelocityNorm = 15.0
	ScoreNorm    = 10.0
)

// Features builds the 8-component input vector for a model provider:
// ball position and velocity, both paddle positions, and the score, each
// scaled into roughly [0,1] by the fixed constants above.
func Features(cfg game.Config, ball *game.Ball, own, opp *game.Paddle, scoreOwn, scoreOpp int) [FeatureCount]float64 {
	center := ball.Center()
	return [FeatureCount]float64{
		center.X / cfg.FieldWidth,
		center.Y / cfg.FieldHeight,
		ball.Velocity.X / VelocityNorm,
		ball.Velocity.Y / VelocityNorm,
		own.CenterY() / cfg.FieldHeight,
		opp.CenterY() / cfg.FieldHeight,
		float64(scoreOwn) / ScoreNorm,
		float64(scoreOpp) / ScoreNorm,
	}
}
