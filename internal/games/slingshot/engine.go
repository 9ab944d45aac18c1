package slingshot

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// Engine owns the round state and advances it. All mutation goes through
// SetupRound, the aim methods and Tick; callers must serialize them.
type Engine struct {
	cfg    config.SlingshotConfig
	rng    *rand.Rand
	logger *log.Logger

	round      Round
	projectile Projectile
	aim        core.Vec2
	preview    []core.Vec2
	score      int

	now       float64 // seconds since the round was set up
	skipDelta bool    // next Tick uses dt = 0
	sched     Scheduler
	events    []Event

	endReason EndReason
	shotHits  int
}

// NewEngine creates an engine at level 1.
func NewEngine(cfg config.SlingshotConfig, seed int64) *Engine {
	e := &Engine{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	e.SetupRound(1)
	return e
}

// SetLogger sets the logger used for lifecycle debug output.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.logger = l
}

// Anchor returns the launch point.
func (e *Engine) Anchor() core.Vec2 {
	return core.V(e.cfg.Launcher.AnchorX, e.cfg.Launcher.AnchorY)
}

// SetupRound replaces the round with a fresh one for level and cancels any
// pending transition. The score is kept.
func (e *Engine) SetupRound(level int) *Round {
	e.sched.Cancel()
	e.round = NewRound(level, e.cfg, e.rng)
	e.now = 0
	e.skipDelta = true
	e.preview = nil
	e.endReason = EndNone
	e.shotHits = 0
	e.resetProjectile()
	e.updateTargets()

	e.emit(Event{Kind: EventRoundStart})
	e.logger.Debug("round start",
		"level", e.round.Level,
		"targets", len(e.round.Targets),
		"obstacles", len(e.round.Obstacles),
		"shots", e.round.ShotsLeft,
	)
	return &e.round
}

// Reset starts a new run: score zero, level 1.
func (e *Engine) Reset() {
	e.score = 0
	e.SetupRound(1)
}

func (e *Engine) resetProjectile() {
	e.projectile = Projectile{
		Pos:    e.Anchor(),
		Radius: e.cfg.Physics.ProjectileRadius,
	}
	e.aim = e.Anchor()
}

// BeginAim grabs the sling if p is within reach of the anchor while the
// round is ready. Returns the clamped aim point, or false if ignored.
func (e *Engine) BeginAim(p core.Vec2) (core.Vec2, bool) {
	if e.round.Status != StatusReady {
		return core.Vec2{}, false
	}
	if p.Dist(e.Anchor()) > e.cfg.Launcher.GrabRadius {
		return core.Vec2{}, false
	}

	e.round.Status = StatusAiming
	e.setAim(p)
	return e.aim, true
}

// UpdateAim moves the pulled point and recomputes the trajectory preview.
// The returned preview is owned by the caller.
func (e *Engine) UpdateAim(p core.Vec2) (core.Vec2, []core.Vec2, bool) {
	if e.round.Status != StatusAiming {
		return core.Vec2{}, nil, false
	}
	e.setAim(p)
	return e.aim, append([]core.Vec2(nil), e.preview...), true
}

func (e *Engine) setAim(p core.Vec2) {
	lc := e.cfg.Launcher
	e.aim = ClampPull(e.Anchor(), p, lc.MaxPull)
	e.projectile.Pos = e.aim

	vel := LaunchVelocity(e.Anchor(), e.aim, lc.VelocityMultiplier)
	e.preview = PredictTrajectory(e.Anchor(), vel,
		e.cfg.Physics.Gravity, e.cfg.Preview.Step, e.cfg.Preview.MaxSteps, e.cfg.World.GroundY)
}

// ReleaseAim fires if the pull is long enough and a shot is left;
// otherwise the aim is abandoned. Returns true when a shot was fired.
func (e *Engine) ReleaseAim(p core.Vec2) bool {
	if e.round.Status != StatusAiming {
		return false
	}
	lc := e.cfg.Launcher
	e.aim = ClampPull(e.Anchor(), p, lc.MaxPull)
	e.preview = nil

	if e.aim.Dist(e.Anchor()) <= lc.MinPull || e.round.ShotsLeft <= 0 {
		e.round.Status = StatusReady
		e.resetProjectile()
		return false
	}

	e.round.ShotsLeft--
	e.projectile = Projectile{
		Pos:    e.Anchor(),
		Vel:    LaunchVelocity(e.Anchor(), e.aim, lc.VelocityMultiplier),
		Radius: e.cfg.Physics.ProjectileRadius,
		Active: true,
	}
	e.round.Status = StatusFlying
	e.endReason = EndNone
	e.shotHits = 0

	e.emit(Event{Kind: EventLaunch})
	e.logger.Debug("launch", "level", e.round.Level, "vel", e.projectile.Vel, "shots_left", e.round.ShotsLeft)
	return true
}

// CancelAim drops an aim in progress without firing.
func (e *Engine) CancelAim() {
	if e.round.Status != StatusAiming {
		return
	}
	e.round.Status = StatusReady
	e.preview = nil
	e.resetProjectile()
}

// Tick advances the simulation by dt seconds. The first tick after a round
// setup is treated as dt = 0, and dt is capped at physics.max_frame_delta.
func (e *Engine) Tick(dt float64) {
	if e.skipDelta {
		dt = 0
		e.skipDelta = false
	}
	dt = core.ClampF(dt, 0, e.cfg.Physics.MaxFrameDelta)

	e.now += dt
	e.sched.RunDue(e.now)

	e.updateTargets()

	if !e.projectile.Active {
		return
	}

	pc := e.cfg.Physics
	p := &e.projectile
	p.Integrate(pc.Gravity, dt)

	for _, o := range e.round.Obstacles {
		ResolveObstacle(p, o.Rect(), pc.ObstacleRestitution)
	}

	ended := false
	if _, settled := ResolveGround(p, e.cfg.World.GroundY, pc.GroundRestitution, pc.GroundFriction, pc.SettleSpeed); settled {
		p.Active = false
		e.endReason = EndGround
		ended = true
	}
	if p.Active && OutOfBounds(*p, e.cfg.World.Width, pc.BoundsMargin, pc.CeilingLimit) {
		p.Active = false
		e.endReason = EndBounds
		ended = true
	}

	for _, i := range HitTargets(*p, e.round.Targets, e.cfg.Rounds.HitRadiusFactor) {
		e.score += e.cfg.Rounds.PointsPerHit
		e.shotHits++
		id := e.round.Targets[i].ID
		e.emit(Event{Kind: EventHit, TargetID: id})
		e.logger.Debug("target hit", "level", e.round.Level, "target", id, "score", e.score)
	}

	e.resolveLifecycle(ended)
}

// resolveLifecycle moves the round on after the tick's physics.
func (e *Engine) resolveLifecycle(ended bool) {
	if e.round.Status != StatusFlying {
		return
	}
	tc := e.cfg.Timing

	if e.round.Cleared() {
		e.projectile.Active = false
		e.round.Status = StatusCooldown
		next := e.round.Level + 1
		e.sched.Schedule(e.now+tc.ClearDelay, "advance", func() { e.SetupRound(next) })

		e.emit(Event{Kind: EventRoundClear})
		e.logger.Info("round clear", "level", e.round.Level, "score", e.score)
		return
	}

	if !ended {
		return
	}

	if e.shotHits == 0 {
		e.emit(Event{Kind: EventMiss, Reason: e.endReason})
	}

	if e.round.ShotsLeft == 0 {
		e.round.Status = StatusFailed
		e.sched.Schedule(e.now+tc.FailDelay, "hard_reset", e.Reset)

		e.emit(Event{Kind: EventOutOfAmmo, Reason: e.endReason})
		e.logger.Info("out of shots", "level", e.round.Level, "score", e.score)
		return
	}

	delay := tc.GroundCooldown
	if e.endReason == EndBounds {
		delay = tc.BoundsCooldown
	}
	e.round.Status = StatusCooldown
	e.sched.Schedule(e.now+delay, "reload", e.reload)
}

// reload puts a fresh projectile on the sling for the next shot.
func (e *Engine) reload() {
	e.resetProjectile()
	e.endReason = EndNone
	e.skipDelta = true
	e.round.Status = StatusReady
}

// updateTargets moves oscillating targets to their position at the
// current time and snaps static ones to their base.
func (e *Engine) updateTargets() {
	rc := e.cfg.Rounds
	for i := range e.round.Targets {
		t := &e.round.Targets[i]
		if t.Motion == nil {
			t.Pos = t.Base
			continue
		}
		t.Pos = t.Base.Add(t.Motion.Offset(e.now))
		t.Pos.Y = core.ClampF(t.Pos.Y, rc.TargetMinY, rc.TargetMaxY)
	}
}

func (e *Engine) emit(ev Event) {
	ev.Level = e.round.Level
	ev.Score = e.score
	e.events = append(e.events, ev)
}

// DrainEvents returns the events since the last call and clears them.
func (e *Engine) DrainEvents() []Event {
	evs := e.events
	e.events = nil
	return evs
}

// Round returns the current round. The pointer stays valid until the next
// SetupRound; callers must not mutate it.
func (e *Engine) Round() *Round { return &e.round }

// Targets returns the round's targets.
func (e *Engine) Targets() []Target { return e.round.Targets }

// Obstacles returns the round's obstacles.
func (e *Engine) Obstacles() []Obstacle { return e.round.Obstacles }

// Projectile returns a copy of the projectile.
func (e *Engine) Projectile() Projectile { return e.projectile }

// Preview returns the current trajectory preview (empty unless aiming).
func (e *Engine) Preview() []core.Vec2 { return e.preview }

// AimPoint returns the clamped aim point.
func (e *Engine) AimPoint() core.Vec2 { return e.aim }

// Status returns the round status.
func (e *Engine) Status() Status { return e.round.Status }

// Score returns the run score.
func (e *Engine) Score() int { return e.score }

// ShotsLeft returns the remaining shot budget.
func (e *Engine) ShotsLeft() int { return e.round.ShotsLeft }

// Level returns the current level.
func (e *Engine) Level() int { return e.round.Level }

// Time returns seconds since the current round was set up.
func (e *Engine) Time() float64 { return e.now }

// LastEndReason returns why the most recent shot stopped.
func (e *Engine) LastEndReason() EndReason { return e.endReason }

// NextTransitionIn returns the seconds left until the next scheduled
// transition, if one is pending.
func (e *Engine) NextTransitionIn() (float64, bool) {
	at, ok := e.sched.Next()
	if !ok {
		return 0, false
	}
	return max(at-e.now, 0), true
}

// PendingTransitions lists scheduled transitions by name.
func (e *Engine) PendingTransitions() []string { return e.sched.Pending() }
