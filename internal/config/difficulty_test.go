package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:      ScalingConfig{SpawnMultiplier: 2, SpeedMultiplier: 1},
	}

	tests := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{"start", 0, 0.2},
		{"half", 500, 0.6},
		{"max", 1000, 1.0},
		{"beyond max", 5000, 1.0},
	}

	dm := NewDifficultyManager(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dm.Level(0, tt.elapsed); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Level() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.4})
	if got := dm.Level(100, 1e6); got != 0.4 {
		t.Errorf("Level() = %v, expected 0.4", got)
	}
	dm.SetEnabled(true)
	if dm.IsEnabled() != true {
		t.Errorf("IsEnabled() = false after SetEnabled(true)")
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := dm.Level(50, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(50) = %v, expected 0.5", got)
	}
}

func TestSpawnChanceAndSpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:     ScalingConfig{SpawnMultiplier: 2, SpeedMultiplier: 0.5},
	})

	if got := dm.SpawnChance(0.01, 0, 1000); math.Abs(got-0.03) > 1e-9 {
		t.Errorf("SpawnChance() = %v, expected 0.03", got)
	}
	if got := dm.SpawnChance(0.9, 0, 1000); got != 1.0 {
		t.Errorf("SpawnChance() = %v, expected clamp to 1", got)
	}
	if got := dm.Speed(40, 0, 1000); math.Abs(got-60) > 1e-9 {
		t.Errorf("Speed() = %v, expected 60", got)
	}
}
