package ai

import "context"

// Feature vector and output sizes for the model-provider boundary.
const (
	FeatureCount = 8
	OutputCount  = 3
)

// Output indices of the categorical inference result.
const (
	OutputUp = iota
	OutputStay
	OutputDown
)

// Provider is an external inference backend: a bounded, synchronous
// function from a fixed-size feature vector to up/stay/down
// probabilities. The controller calls it with a deadline context and
// falls back to the rule-based predictor on any error, so a provider can
// fail or time out without ever stalling a tick.
type Provider interface {
	Infer(ctx context.Context, features [FeatureCount]float64) ([OutputCount]float64, error)
}

// Argmax returns the index of the largest output component.
func Argmax(out [OutputCount]float64) int {
	best := 0
	for i := 1; i < OutputCount; i++ {
		if out[i] > out[best] {
			best = i
		}
	}
	return best
}
