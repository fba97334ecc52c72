package ai

import (
	"math"
	"testing"
)

func TestParseTier(t *testing.T) {
	cases := []struct {
		name    string
		want    Tier
		wantErr bool
	}{
		{"beginner", TierBeginner, false},
		{"intermediate", TierIntermediate, false},
		{"expert", TierExpert, false},
		{"unbeatable", TierUnbeatable, false},
		{"adaptive", TierAdaptive, false},
		{"Expert", 0, true},
		{"impossible", 0, true},
		{"", 0, true},
	}
	for _, tt := range cases {
		got, err := ParseTier(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTier(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTier(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFixedTierPresets(t *testing.T) {
	d := NewDifficulty(TierUnbeatable)
	p := d.Params()
	if p.ErrorScale != 0 {
		t.Errorf("unbeatable must inject no error, got %f", p.ErrorScale)
	}
	if p.SpeedScale != 1.3 {
		t.Errorf("unbeatable speed scale: got %f", p.SpeedScale)
	}

	// Outcomes must not move a fixed tier.
	for i := 0; i < 50; i++ {
		d.RecordPointOutcome(true)
	}
	if d.Params() != p {
		t.Error("fixed tier drifted after outcomes")
	}
}

func TestAdaptive_RampsUpOnWins(t *testing.T) {
	d := NewDifficulty(TierAdaptive)
	start := d.Level()

	for i := 0; i < 10; i++ {
		d.RecordPointOutcome(true)
	}
	if d.Level() <= start {
		t.Errorf("level did not rise after a win streak: %f -> %f", start, d.Level())
	}

	// A dominant player's error scale shrinks and speed grows.
	p := d.Params()
	beginner := NewDifficulty(TierBeginner).Params()
	if p.ErrorScale >= beginner.ErrorScale {
		t.Errorf("error scale did not tighten: %f", p.ErrorScale)
	}
	if p.SpeedScale <= beginner.SpeedScale {
		t.Errorf("speed scale did not grow: %f", p.SpeedScale)
	}
}

func TestAdaptive_BottomsOutOnLosses(t *testing.T) {
	d := NewDifficulty(TierAdaptive)

	// Twenty straight losses: 0.5 minus twenty 0.05 steps floors at 0.
	for i := 0; i < AdaptiveWindow; i++ {
		d.RecordPointOutcome(false)
	}
	if d.Level() != 0 {
		t.Fatalf("expected level 0 after a full losing window, got %f", d.Level())
	}

	got := d.Params()
	want := NewDifficulty(TierBeginner).Params()
	if math.Abs(got.ReactionTime-want.ReactionTime) > 1e-12 ||
		math.Abs(got.ErrorScale-want.ErrorScale) > 1e-12 ||
		math.Abs(got.SpeedScale-want.SpeedScale) > 1e-12 {
		t.Errorf("level 0 params %+v, want beginner preset %+v", got, want)
	}
}

func TestAdaptive_DeadBandHoldsLevel(t *testing.T) {
	d := NewDifficulty(TierAdaptive)

	// Alternate outcomes: the rate settles near 0.5, inside the band.
	for i := 0; i < 2*AdaptiveWindow; i++ {
		d.RecordPointOutcome(i%2 == 0)
	}
	if math.Abs(d.Level()-0.5) > 0.15 {
		t.Errorf("balanced play moved the level to %f", d.Level())
	}
}

func TestAdaptive_LevelStaysClamped(t *testing.T) {
	d := NewDifficulty(TierAdaptive)
	for i := 0; i < 100; i++ {
		d.RecordPointOutcome(true)
	}
	if d.Level() != 1 {
		t.Errorf("expected level capped at 1, got %f", d.Level())
	}
	for i := 0; i < 200; i++ {
		d.RecordPointOutcome(false)
	}
	if d.Level() != 0 {
		t.Errorf("expected level floored at 0, got %f", d.Level())
	}
}
