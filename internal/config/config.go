// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for Bogger.
package config

import (
	"errors"
	"fmt"
)

// BoggerConfig contains every tuning constant of a session.
type BoggerConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Chain      ChainConfig      `yaml:"chain" toml:"chain"`
	Tether     TetherConfig     `yaml:"tether" toml:"tether"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Berries    BerryConfig      `yaml:"berries" toml:"berries"`
	Spiders    SpiderConfig     `yaml:"spiders" toml:"spiders"`
	Rocks      RockConfig       `yaml:"rocks" toml:"rocks"`
	Collector  CollectorConfig  `yaml:"collector" toml:"collector"`
	Timer      TimerConfig      `yaml:"timer" toml:"timer"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayfieldConfig defines the world rectangle and its edge behaviour.
type PlayfieldConfig struct {
	Width           float64 `yaml:"width" toml:"width"`
	Height          float64 `yaml:"height" toml:"height"`
	Walls           bool    `yaml:"walls" toml:"walls"`
	RepelMargin     float64 `yaml:"repel_margin" toml:"repel_margin"`             // Distance from an edge where berries get pushed
	RepelForcePerMs float64 `yaml:"repel_force_per_ms" toml:"repel_force_per_ms"` // Force per elapsed millisecond
}

// PhysicsConfig defines solver settings and how normalized constraint
// stiffness/damping map onto engine spring units.
type PhysicsConfig struct {
	Iterations     int     `yaml:"iterations" toml:"iterations"`
	StiffnessScale float64 `yaml:"stiffness_scale" toml:"stiffness_scale"`
	DampingScale   float64 `yaml:"damping_scale" toml:"damping_scale"`
}

// ChainConfig defines pontoon geometry and the growth/shrink protocol.
type ChainConfig struct {
	SegmentLength      float64 `yaml:"segment_length" toml:"segment_length"`
	SegmentWidth       float64 `yaml:"segment_width" toml:"segment_width"`
	SegmentMass        float64 `yaml:"segment_mass" toml:"segment_mass"`
	SegmentAirFriction float64 `yaml:"segment_air_friction" toml:"segment_air_friction"`
	JointRestLength    float64 `yaml:"joint_rest_length" toml:"joint_rest_length"`
	JointStiffness     float64 `yaml:"joint_stiffness" toml:"joint_stiffness"` // 0..1, 1 = rigid
	JointDamping       float64 `yaml:"joint_damping" toml:"joint_damping"`
	GrowSlack          float64 `yaml:"grow_slack" toml:"grow_slack"`
	Floor              int     `yaml:"floor" toml:"floor"` // Minimum retained segments, anchor included
	RetractCooldownMs  float64 `yaml:"retract_cooldown_ms" toml:"retract_cooldown_ms"`
	AnchorX            float64 `yaml:"anchor_x" toml:"anchor_x"`
	AnchorY            float64 `yaml:"anchor_y" toml:"anchor_y"`
	InitialSegments    int     `yaml:"initial_segments" toml:"initial_segments"` // Segments after the anchor
}

// TetherConfig defines the grab constraint between the free end and the craft.
type TetherConfig struct {
	RestLength float64 `yaml:"rest_length" toml:"rest_length"`
	Stiffness  float64 `yaml:"stiffness" toml:"stiffness"`
	Damping    float64 `yaml:"damping" toml:"damping"`
}

// PlayerConfig defines the collector craft.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius" toml:"radius"`
	Mass         float64 `yaml:"mass" toml:"mass"`
	AirFriction  float64 `yaml:"air_friction" toml:"air_friction"`
	Force        float64 `yaml:"force" toml:"force"`
	SpoolScale   float64 `yaml:"spool_scale" toml:"spool_scale"`
	RetractScale float64 `yaml:"retract_scale" toml:"retract_scale"`
}

// BerryConfig defines berry population and scoring.
type BerryConfig struct {
	Count          int     `yaml:"count" toml:"count"`
	Radius         float64 `yaml:"radius" toml:"radius"`
	Mass           float64 `yaml:"mass" toml:"mass"`
	AirFriction    float64 `yaml:"air_friction" toml:"air_friction"`
	Value          int     `yaml:"value" toml:"value"`
	GoldenChance   float64 `yaml:"golden_chance" toml:"golden_chance"`
	GoldenValue    int     `yaml:"golden_value" toml:"golden_value"`
	Respawn        bool    `yaml:"respawn" toml:"respawn"`
	Health         float64 `yaml:"health" toml:"health"`
	DecayPerSecond float64 `yaml:"decay_per_second" toml:"decay_per_second"` // 0 disables decay
}

// SpiderConfig defines spider spawning, penalties and rescue rewards.
type SpiderConfig struct {
	Enabled     bool    `yaml:"enabled" toml:"enabled"`
	SpawnChance float64 `yaml:"spawn_chance" toml:"spawn_chance"` // Per tick probability
	MaxAlive    int     `yaml:"max_alive" toml:"max_alive"`
	Radius      float64 `yaml:"radius" toml:"radius"`
	Mass        float64 `yaml:"mass" toml:"mass"`
	AirFriction float64 `yaml:"air_friction" toml:"air_friction"`
	Speed       float64 `yaml:"speed" toml:"speed"`
	ActivateMs  float64 `yaml:"activate_ms" toml:"activate_ms"` // Delay before a spawned spider can be rescued
}

// RockConfig lists the static rescue rocks.
type RockConfig struct {
	Radius    float64 `yaml:"radius" toml:"radius"`
	Positions []Point `yaml:"positions" toml:"positions"`
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// CollectorConfig is the scoring sensor zone.
type CollectorConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ScoringConfig defines penalties and rewards outside berry values.
type ScoringConfig struct {
	SpiderPenalty int     `yaml:"spider_penalty" toml:"spider_penalty"`
	RescueBonusMs float64 `yaml:"rescue_bonus_ms" toml:"rescue_bonus_ms"`
}

// TimerConfig defines the session countdown.
type TimerConfig struct {
	CountdownMs float64 `yaml:"countdown_ms" toml:"countdown_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string  `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at" toml:"max_at"` // Score or elapsed ms at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier float64 `yaml:"spawn_multiplier" toml:"spawn_multiplier"` // Added to spider spawn chance factor at max difficulty
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to spider speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports the first structural problem in cfg.
func (c BoggerConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %gx%g", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Chain.SegmentLength <= 0 {
		errs = append(errs, fmt.Errorf("chain.segment_length must be positive, got %g", c.Chain.SegmentLength))
	}
	if c.Chain.SegmentMass <= 0 {
		errs = append(errs, fmt.Errorf("chain.segment_mass must be positive, got %g", c.Chain.SegmentMass))
	}
	if c.Chain.Floor < 1 {
		errs = append(errs, fmt.Errorf("chain.floor must keep the anchor (>= 1), got %d", c.Chain.Floor))
	}
	if c.Chain.JointStiffness <= 0 || c.Tether.Stiffness <= 0 {
		errs = append(errs, errors.New("joint and tether stiffness must be positive"))
	}
	if c.Player.Mass <= 0 {
		errs = append(errs, fmt.Errorf("player.mass must be positive, got %g", c.Player.Mass))
	}
	if c.Berries.Mass <= 0 || c.Spiders.Mass <= 0 {
		errs = append(errs, errors.New("berry and spider mass must be positive"))
	}
	if c.Spiders.SpawnChance < 0 || c.Spiders.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("spiders.spawn_chance must be in [0, 1], got %g", c.Spiders.SpawnChance))
	}
	if c.Physics.StiffnessScale <= 0 {
		errs = append(errs, fmt.Errorf("physics.stiffness_scale must be positive, got %g", c.Physics.StiffnessScale))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
