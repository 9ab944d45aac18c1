package slingshot

import "math"

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	Level      int
	Score      int
	ShotsLeft  int
	Status     Status
	Time       float64
	Projectile Projectile
	Aim        [2]float64
	Targets    []Target
	Obstacles  []Obstacle
	Pending    []string
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	targets := make([]Target, len(e.round.Targets))
	copy(targets, e.round.Targets)
	for i := range targets {
		if m := targets[i].Motion; m != nil {
			mc := *m
			targets[i].Motion = &mc
		}
	}
	obstacles := make([]Obstacle, len(e.round.Obstacles))
	copy(obstacles, e.round.Obstacles)

	return Snapshot{
		Level:      e.round.Level,
		Score:      e.score,
		ShotsLeft:  e.round.ShotsLeft,
		Status:     e.round.Status,
		Time:       e.now,
		Projectile: e.projectile,
		Aim:        [2]float64{e.aim.X, e.aim.Y},
		Targets:    targets,
		Obstacles:  obstacles,
		Pending:    e.sched.Pending(),
	}
}

// Hash returns a hash of the snapshot for quick comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(uint64(s.Level))
	mix(uint64(s.Score))
	mix(uint64(s.ShotsLeft))
	mix(uint64(s.Status))
	mixF(s.Time)
	mixF(s.Projectile.Pos.X)
	mixF(s.Projectile.Pos.Y)
	mixF(s.Projectile.Vel.X)
	mixF(s.Projectile.Vel.Y)
	mixB(s.Projectile.Active)
	mixF(s.Aim[0])
	mixF(s.Aim[1])
	for _, t := range s.Targets {
		mix(uint64(t.ID))
		mixF(t.Pos.X)
		mixF(t.Pos.Y)
		mixF(t.Size)
		mixB(t.Hit)
		mixB(t.Motion != nil)
		if t.Motion != nil {
			mix(uint64(t.Motion.Axis))
			mixF(t.Motion.Amplitude)
			mixF(t.Motion.Speed)
			mixF(t.Motion.Phase)
		}
	}
	for _, o := range s.Obstacles {
		mixF(o.Pos.X)
		mixF(o.Pos.Y)
		mixF(o.W)
		mixF(o.H)
	}
	mix(uint64(len(s.Pending)))
	return h
}
