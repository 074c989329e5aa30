package config

import (
	_ "embed"
)

//go:embed defaults/bogger.yaml
var defaultBoggerYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultBoggerYAML))
	copy(out, defaultBoggerYAML)
	return out
}

// DefaultBoggerConfig returns the default Bogger configuration.
func DefaultBoggerConfig() BoggerConfig {
	return BoggerConfig{
		Playfield: PlayfieldConfig{
			Width:           800,
			Height:          600,
			Walls:           true,
			RepelMargin:     24,
			RepelForcePerMs: 3.5,
		},
		Physics: PhysicsConfig{
			Iterations:     10,
			StiffnessScale: 500,
			DampingScale:   50,
		},
		Chain: ChainConfig{
			SegmentLength:      30,
			SegmentWidth:       8,
			SegmentMass:        0.5,
			SegmentAirFriction: 0.05,
			JointRestLength:    0,
			JointStiffness:     0.6,
			JointDamping:       0.1,
			GrowSlack:          5,
			Floor:              3,
			RetractCooldownMs:  120,
			AnchorX:            340,
			AnchorY:            70,
			InitialSegments:    3,
		},
		Tether: TetherConfig{
			RestLength: 22,
			Stiffness:  0.2,
			Damping:    0.05,
		},
		Player: PlayerConfig{
			Radius:       10,
			Mass:         2,
			AirFriction:  0.08,
			Force:        1200,
			SpoolScale:   0.65,
			RetractScale: 1.0,
		},
		Berries: BerryConfig{
			Count:          24,
			Radius:         6,
			Mass:           0.3,
			AirFriction:    0.03,
			Value:          1,
			GoldenChance:   0.1,
			GoldenValue:    10,
			Respawn:        true,
			Health:         100,
			DecayPerSecond: 0,
		},
		Spiders: SpiderConfig{
			Enabled:     true,
			SpawnChance: 0.004,
			MaxAlive:    3,
			Radius:      7,
			Mass:        0.4,
			AirFriction: 0.02,
			Speed:       40,
			ActivateMs:  600,
		},
		Rocks: RockConfig{
			Radius: 22,
			Positions: []Point{
				{X: 120, Y: 480},
				{X: 680, Y: 460},
				{X: 640, Y: 200},
			},
		},
		Collector: CollectorConfig{
			X:      340,
			Y:      0,
			Width:  120,
			Height: 40,
		},
		Timer: TimerConfig{
			CountdownMs: 90000,
		},
		Scoring: ScoringConfig{
			SpiderPenalty: 5,
			RescueBonusMs: 5000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 90000,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier: 2.0,
				SpeedMultiplier: 0.5,
			},
		},
	}
}
