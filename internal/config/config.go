// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// SlingshotConfig contains all configuration for the Slingshot game.
// Distances are world units (the playfield is World.Width × World.Height,
// y grows downward); durations are seconds.
type SlingshotConfig struct {
	World    WorldConfig    `yaml:"world"`
	Launcher LauncherConfig `yaml:"launcher"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Preview  PreviewConfig  `yaml:"preview"`
	Rounds   RoundsConfig   `yaml:"rounds"`
	Timing   TimingConfig   `yaml:"timing"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// LauncherConfig defines the sling anchor and pull limits.
type LauncherConfig struct {
	AnchorX            float64 `yaml:"anchor_x"`
	AnchorY            float64 `yaml:"anchor_y"`
	GrabRadius         float64 `yaml:"grab_radius"` // aim must start this close to the anchor
	MaxPull            float64 `yaml:"max_pull"`
	MinPull            float64 `yaml:"min_pull"` // shorter pulls are abandoned, not fired
	VelocityMultiplier float64 `yaml:"velocity_multiplier"`
}

// PhysicsConfig defines flight and collision parameters.
type PhysicsConfig struct {
	Gravity             float64 `yaml:"gravity"`
	ProjectileRadius    float64 `yaml:"projectile_radius"`
	GroundRestitution   float64 `yaml:"ground_restitution"`
	GroundFriction      float64 `yaml:"ground_friction"`
	SettleSpeed         float64 `yaml:"settle_speed"`
	ObstacleRestitution float64 `yaml:"obstacle_restitution"`
	BoundsMargin        float64 `yaml:"bounds_margin"`
	CeilingLimit        float64 `yaml:"ceiling_limit"` // how far above y=0 before the shot is lost
	MaxFrameDelta       float64 `yaml:"max_frame_delta"`
}

// PreviewConfig defines the aiming trajectory preview.
type PreviewConfig struct {
	Step     float64 `yaml:"step"`
	MaxSteps int     `yaml:"max_steps"`
}

// RoundsConfig defines round generation.
type RoundsConfig struct {
	ShotsPerRound     int     `yaml:"shots_per_round"`
	MaxTargets        int     `yaml:"max_targets"`
	TargetSize        float64 `yaml:"target_size"`
	HitRadiusFactor   float64 `yaml:"hit_radius_factor"`
	MinSeparation     float64 `yaml:"min_separation"`
	ObstacleMargin    float64 `yaml:"obstacle_margin"`
	PlacementAttempts int     `yaml:"placement_attempts"`
	TargetMinX        float64 `yaml:"target_min_x"`
	TargetMaxX        float64 `yaml:"target_max_x"`
	TargetMinY        float64 `yaml:"target_min_y"`
	TargetMaxY        float64 `yaml:"target_max_y"`
	ObstacleFromLevel int     `yaml:"obstacle_from_level"`
	ObstacleWidth     float64 `yaml:"obstacle_width"`
	ObstacleMinHeight float64 `yaml:"obstacle_min_height"`
	ObstacleMaxHeight float64 `yaml:"obstacle_max_height"`
	AnchorClearance   float64 `yaml:"anchor_clearance"` // obstacle never starts closer than this to the anchor
	ObstacleMaxX      float64 `yaml:"obstacle_max_x"`
	MotionFromLevel   int     `yaml:"motion_from_level"`
	MotionMinAmp      float64 `yaml:"motion_min_amplitude"`
	MotionMaxAmp      float64 `yaml:"motion_max_amplitude"`
	MotionMinSpeed    float64 `yaml:"motion_min_speed"`
	MotionMaxSpeed    float64 `yaml:"motion_max_speed"`
	PointsPerHit      int     `yaml:"points_per_hit"`
}

// TimingConfig defines the delays between lifecycle phases.
type TimingConfig struct {
	ClearDelay     float64 `yaml:"clear_delay"`
	FailDelay      float64 `yaml:"fail_delay"`
	GroundCooldown float64 `yaml:"ground_cooldown"`
	BoundsCooldown float64 `yaml:"bounds_cooldown"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
