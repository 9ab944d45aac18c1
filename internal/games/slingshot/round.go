package slingshot

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// Axis selects the direction of a target's oscillation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Motion describes sinusoidal displacement of a target around its base position.
type Motion struct {
	Axis      Axis
	Amplitude float64
	Speed     float64 // radians per second
	Phase     float64
}

// Offset returns the displacement from the base position at time t.
func (m Motion) Offset(t float64) core.Vec2 {
	d := m.Amplitude * math.Sin(t*m.Speed+m.Phase)
	if m.Axis == AxisX {
		return core.V(d, 0)
	}
	return core.V(0, d)
}

// Target is something to knock out. Hit only ever goes from false to true.
type Target struct {
	ID     int
	Base   core.Vec2 // anchor for oscillation
	Pos    core.Vec2 // current center
	Size   float64
	Hit    bool
	Motion *Motion // nil for static targets
}

// Rect returns the target's square footprint at its current position.
func (t Target) Rect() core.Rect {
	return core.RectAround(t.Pos, t.Size)
}

// Obstacle is a static wall the projectile bounces off.
type Obstacle struct {
	Pos  core.Vec2 // top-left corner
	W, H float64
}

// Rect returns the obstacle as a rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.Pos.X, o.Pos.Y, o.W, o.H)
}

// Status is the round lifecycle state.
type Status int

const (
	StatusReady    Status = iota // waiting for the player to grab the sling
	StatusAiming                 // sling pulled, preview shown
	StatusFlying                 // projectile in the air
	StatusCooldown               // shot resolved, next state scheduled
	StatusFailed                 // out of shots, hard reset scheduled
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusAiming:
		return "aiming"
	case StatusFlying:
		return "flying"
	case StatusCooldown:
		return "cooldown"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Round is one wave of targets plus an optional obstacle and a shot budget.
type Round struct {
	Level     int
	Targets   []Target
	Obstacles []Obstacle
	ShotsLeft int
	Status    Status
}

// Remaining returns the number of targets not yet hit.
func (r *Round) Remaining() int {
	n := 0
	for _, t := range r.Targets {
		if !t.Hit {
			n++
		}
	}
	return n
}

// Cleared reports whether every target has been hit.
func (r *Round) Cleared() bool {
	return len(r.Targets) > 0 && r.Remaining() == 0
}

// NewRound builds the initial state for a level. It never fails: when
// random placement runs out of attempts a deterministic layout is used.
func NewRound(level int, cfg config.SlingshotConfig, rng *rand.Rand) Round {
	if level < 1 {
		level = 1
	}
	rc := cfg.Rounds

	r := Round{
		Level:     level,
		ShotsLeft: rc.ShotsPerRound,
		Status:    StatusReady,
	}

	if obs, ok := placeObstacle(level, cfg, rng); ok {
		r.Obstacles = append(r.Obstacles, obs)
	}

	n := TargetCount(level, rc.MaxTargets)
	placed := make([]core.Vec2, 0, n)
	for i := 0; i < n; i++ {
		pos, ok := sampleTarget(placed, r.Obstacles, cfg, rng)
		if !ok {
			pos = fallbackTarget(i, r.Obstacles, cfg)
		}
		placed = append(placed, pos)
		r.Targets = append(r.Targets, Target{
			ID:   i + 1,
			Base: pos,
			Pos:  pos,
			Size: rc.TargetSize,
		})
	}

	if level >= rc.MotionFromLevel && len(r.Targets) > 0 {
		idx := rng.Intn(len(r.Targets))
		r.Targets[idx].Motion = pickMotion(r.Targets[idx], r.Obstacles, level, cfg, rng)
	}

	return r
}

// TargetCount returns how many targets a level has: one per level up to
// maxTargets, and never fewer than two after the first level.
func TargetCount(level, maxTargets int) int {
	n := min(level, maxTargets)
	if level > 1 && n < 2 {
		n = 2
	}
	return max(n, 1)
}

// placeObstacle returns the level's obstacle, if the level has one.
// Height and lift grow with the level; x stays clear of the anchor.
func placeObstacle(level int, cfg config.SlingshotConfig, rng *rand.Rand) (Obstacle, bool) {
	rc := cfg.Rounds
	if level < rc.ObstacleFromLevel {
		return Obstacle{}, false
	}

	steps := float64(level - rc.ObstacleFromLevel)
	maxH := min(rc.ObstacleMinHeight+20*(steps+1), rc.ObstacleMaxHeight)
	h := randRange(rng, rc.ObstacleMinHeight, maxH)

	minX := cfg.Launcher.AnchorX + rc.AnchorClearance
	x := randRange(rng, minX, max(rc.ObstacleMaxX, minX))

	lift := randRange(rng, 0, min(10*steps, 60))
	y := max(cfg.World.GroundY-h-lift, 0)

	return Obstacle{Pos: core.V(x, y), W: rc.ObstacleWidth, H: h}, true
}

// sampleTarget draws candidate centers until one fits.
func sampleTarget(placed []core.Vec2, obstacles []Obstacle, cfg config.SlingshotConfig, rng *rand.Rand) (core.Vec2, bool) {
	rc := cfg.Rounds
	for attempt := 0; attempt < rc.PlacementAttempts; attempt++ {
		p := core.V(
			randRange(rng, rc.TargetMinX, rc.TargetMaxX),
			randRange(rng, rc.TargetMinY, rc.TargetMaxY),
		)
		if targetFits(p, placed, obstacles, cfg) {
			return p, true
		}
	}
	return core.Vec2{}, false
}

// targetFits reports whether a target centered at p keeps its distance from
// already placed targets and from every obstacle (plus margin).
func targetFits(p core.Vec2, placed []core.Vec2, obstacles []Obstacle, cfg config.SlingshotConfig) bool {
	rc := cfg.Rounds
	for _, q := range placed {
		if p.Dist(q) < rc.MinSeparation {
			return false
		}
	}
	return !hitsObstacle(p, obstacles, cfg)
}

func hitsObstacle(p core.Vec2, obstacles []Obstacle, cfg config.SlingshotConfig) bool {
	footprint := core.RectAround(p, cfg.Rounds.TargetSize)
	for _, o := range obstacles {
		if footprint.Intersects(o.Rect().Expand(cfg.Rounds.ObstacleMargin)) {
			return true
		}
	}
	return false
}

// fallbackTarget places target i on a fixed grid from the right edge,
// stepping past the obstacle when the grid slot overlaps it.
func fallbackTarget(i int, obstacles []Obstacle, cfg config.SlingshotConfig) core.Vec2 {
	rc := cfg.Rounds
	spacing := max(rc.MinSeparation, rc.TargetSize)

	x := max(rc.TargetMaxX-float64(i)*spacing, rc.TargetMinX)
	y := rc.TargetMaxY - float64(i%2)*spacing
	y = core.ClampF(y, rc.TargetMinY, rc.TargetMaxY)
	p := core.V(x, y)

	half := rc.TargetSize / 2
	for _, o := range obstacles {
		if !hitsObstacle(p, []Obstacle{o}, cfg) {
			continue
		}
		p.X = min(o.Rect().Right()+rc.ObstacleMargin+half, rc.TargetMaxX)
		if hitsObstacle(p, []Obstacle{o}, cfg) {
			p.Y = core.ClampF(o.Pos.Y-rc.ObstacleMargin-half, rc.TargetMinY, rc.TargetMaxY)
		}
	}
	return p
}

// pickMotion chooses an axis and amplitude that fit the room around the
// target. The other axis is tried when the first has too little room.
func pickMotion(t Target, obstacles []Obstacle, level int, cfg config.SlingshotConfig, rng *rand.Rand) *Motion {
	rc := cfg.Rounds
	want := min(rc.MotionMinAmp+5*float64(level-rc.MotionFromLevel+1), rc.MotionMaxAmp)

	axes := [2]Axis{AxisX, AxisY}
	if rng.Intn(2) == 1 {
		axes[0], axes[1] = axes[1], axes[0]
	}

	for _, axis := range axes {
		amp := min(want, motionRoom(t, axis, obstacles, cfg))
		if amp < rc.MotionMinAmp {
			continue
		}
		return &Motion{
			Axis:      axis,
			Amplitude: amp,
			Speed:     randRange(rng, rc.MotionMinSpeed, rc.MotionMaxSpeed),
			Phase:     rng.Float64() * 2 * math.Pi,
		}
	}
	return nil
}

// motionRoom returns how far the target can swing either way along axis
// without leaving the placement bounds or touching an obstacle's margin.
func motionRoom(t Target, axis Axis, obstacles []Obstacle, cfg config.SlingshotConfig) float64 {
	rc := cfg.Rounds
	half := t.Size / 2
	foot := core.RectAround(t.Base, t.Size)

	var room float64
	if axis == AxisX {
		room = min(t.Base.X-rc.TargetMinX, rc.TargetMaxX-t.Base.X)
	} else {
		room = min(t.Base.Y-rc.TargetMinY, rc.TargetMaxY-t.Base.Y)
	}

	for _, o := range obstacles {
		r := o.Rect().Expand(rc.ObstacleMargin)
		if axis == AxisX {
			if foot.Bottom() <= r.Y || foot.Y >= r.Bottom() {
				continue
			}
			if r.Right() <= t.Base.X {
				room = min(room, t.Base.X-half-r.Right())
			} else {
				room = min(room, r.X-(t.Base.X+half))
			}
		} else {
			if foot.Right() <= r.X || foot.X >= r.Right() {
				continue
			}
			if r.Bottom() <= t.Base.Y {
				room = min(room, t.Base.Y-half-r.Bottom())
			} else {
				room = min(room, r.Y-(t.Base.Y+half))
			}
		}
	}
	return max(room, 0)
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
