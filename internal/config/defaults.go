package config

import (
	_ "embed"
)

//go:embed defaults/slingshot.yaml
var defaultSlingshotYAML []byte

// DefaultSlingshotConfig returns the default Slingshot configuration.
// Kept in sync with defaults/slingshot.yaml; used when the embedded YAML
// cannot be parsed.
func DefaultSlingshotConfig() SlingshotConfig {
	return SlingshotConfig{
		World: WorldConfig{
			Width:   800,
			Height:  450,
			GroundY: 400,
		},
		Launcher: LauncherConfig{
			AnchorX:            120,
			AnchorY:            330,
			GrabRadius:         40,
			MaxPull:            90,
			MinPull:            12,
			VelocityMultiplier: 9.2,
		},
		Physics: PhysicsConfig{
			Gravity:             900,
			ProjectileRadius:    10,
			GroundRestitution:   0.45,
			GroundFriction:      0.8,
			SettleSpeed:         60,
			ObstacleRestitution: 0.6,
			BoundsMargin:        100,
			CeilingLimit:        600,
			MaxFrameDelta:       0.05,
		},
		Preview: PreviewConfig{
			Step:     0.033,
			MaxSteps: 40,
		},
		Rounds: RoundsConfig{
			ShotsPerRound:     3,
			MaxTargets:        3,
			TargetSize:        40,
			HitRadiusFactor:   0.5,
			MinSeparation:     60,
			ObstacleMargin:    20,
			PlacementAttempts: 40,
			TargetMinX:        380,
			TargetMaxX:        760,
			TargetMinY:        140,
			TargetMaxY:        370,
			ObstacleFromLevel: 3,
			ObstacleWidth:     30,
			ObstacleMinHeight: 80,
			ObstacleMaxHeight: 220,
			AnchorClearance:   160,
			ObstacleMaxX:      560,
			MotionFromLevel:   4,
			MotionMinAmp:      15,
			MotionMaxAmp:      60,
			MotionMinSpeed:    1.2,
			MotionMaxSpeed:    2.2,
			PointsPerHit:      100,
		},
		Timing: TimingConfig{
			ClearDelay:     1.2,
			FailDelay:      1.8,
			GroundCooldown: 0.6,
			BoundsCooldown: 0.3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "slingshot":
		return defaultSlingshotYAML
	default:
		return nil
	}
}
