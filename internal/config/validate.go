package config

import (
	"errors"
	"fmt"
)

// Validate reports every field that would make the simulation degenerate.
func (c SlingshotConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	unit := func(name string, v float64) {
		if v <= 0 || v >= 1 {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1), got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.ground_y", c.World.GroundY)
	positive("launcher.max_pull", c.Launcher.MaxPull)
	positive("launcher.grab_radius", c.Launcher.GrabRadius)
	positive("launcher.velocity_multiplier", c.Launcher.VelocityMultiplier)
	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.projectile_radius", c.Physics.ProjectileRadius)
	positive("physics.max_frame_delta", c.Physics.MaxFrameDelta)
	positive("preview.step", c.Preview.Step)
	positive("rounds.target_size", c.Rounds.TargetSize)
	unit("physics.ground_restitution", c.Physics.GroundRestitution)
	unit("physics.obstacle_restitution", c.Physics.ObstacleRestitution)

	if c.Launcher.MinPull < 0 || c.Launcher.MinPull >= c.Launcher.MaxPull {
		errs = append(errs, fmt.Errorf("launcher.min_pull must be in [0, max_pull), got %v", c.Launcher.MinPull))
	}
	if c.Preview.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("preview.max_steps must be positive, got %d", c.Preview.MaxSteps))
	}
	if c.Rounds.ShotsPerRound <= 0 {
		errs = append(errs, fmt.Errorf("rounds.shots_per_round must be positive, got %d", c.Rounds.ShotsPerRound))
	}
	if c.Rounds.MaxTargets <= 0 {
		errs = append(errs, fmt.Errorf("rounds.max_targets must be positive, got %d", c.Rounds.MaxTargets))
	}
	if c.Rounds.TargetMinX > c.Rounds.TargetMaxX || c.Rounds.TargetMinY > c.Rounds.TargetMaxY {
		errs = append(errs, errors.New("rounds: target bounds are inverted"))
	}
	if c.Rounds.TargetMaxY+c.Rounds.TargetSize/2 > c.World.GroundY {
		errs = append(errs, errors.New("rounds.target_max_y puts targets below the ground"))
	}

	return errors.Join(errs...)
}
