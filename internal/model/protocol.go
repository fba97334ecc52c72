// Package model implements the inference-provider boundary: a local
// rule-based provider and a websocket client for a remote one, plus the
// JSON frames they share with cmd/inferd.
package model

import "pongsim/internal/ai"

// InferRequest is one inference call on the wire. IDs pair responses
// with requests across the connection.
type InferRequest struct {
	ID       string                   `json:"id"`
	Features [ai.FeatureCount]float64 `json:"features"`
}

// InferResponse carries the categorical output or an error message.
type InferResponse struct {
	ID     string                  `json:"id"`
	Output [ai.OutputCount]float64 `json:"output"`
	Error  string                  `json:"error,omitempty"`
}
