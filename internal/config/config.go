package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"pongsim/internal/ai"
)

// Default values for configuration
const (
	DefaultPoints      = 10
	DefaultDifficulty  = "intermediate"
	DefaultBallSpeed   = 0.5
	DefaultSensitivity = 0.5
)

// Config holds the application configuration
type Config struct {
	Difficulty  ai.Tier
	BallSpeed   float64 // user-facing [0,1] scalar
	Sensitivity float64 // user-facing [0,1] scalar
	PointsToWin int
	ModelURL    string // empty disables the learned opponent
	InferWait   time.Duration
	Seed        int64
	Mute        bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pongsim", flag.ContinueOnError)

	difficulty := fs.String("difficulty", DefaultDifficulty, "opponent difficulty (beginner|intermediate|expert|unbeatable|adaptive)")
	ballSpeed := fs.Float64("ball-speed", DefaultBallSpeed, "ball speed scalar (0-1)")
	sensitivity := fs.Float64("sensitivity", DefaultSensitivity, "paddle sensitivity scalar (0-1)")
	points := fs.Int("points", DefaultPoints, "points to win (>=1)")
	modelURL := fs.String("model", "", "inference server URL (ws://host:port/infer), empty for rule-based opponent")
	inferWait := fs.Duration("infer-timeout", ai.DefaultInferTimeout, "per-call inference timeout")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")
	mute := fs.Bool("mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	tier, err := ai.ParseTier(strings.ToLower(*difficulty))
	if err != nil {
		return nil, err
	}

	if *ballSpeed < 0 || *ballSpeed > 1 {
		return nil, fmt.Errorf("ball-speed must be between 0 and 1, got %g", *ballSpeed)
	}
	if *sensitivity < 0 || *sensitivity > 1 {
		return nil, fmt.Errorf("sensitivity must be between 0 and 1, got %g", *sensitivity)
	}
	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}
	if *inferWait <= 0 {
		return nil, fmt.Errorf("infer-timeout must be positive, got %v", *inferWait)
	}

	cfg := &Config{
		Difficulty:  tier,
		BallSpeed:   *ballSpeed,
		Sensitivity: *sensitivity,
		PointsToWin: *points,
		ModelURL:    *modelURL,
		InferWait:   *inferWait,
		Seed:        *seed,
		Mute:        *mute,
	}

	return cfg, nil
}
