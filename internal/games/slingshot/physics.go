package slingshot

import (
	"math"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// EndReason records why a projectile stopped flying.
type EndReason int

const (
	EndNone   EndReason = iota
	EndGround           // settled after bouncing
	EndBounds           // left the play area
)

func (r EndReason) String() string {
	switch r {
	case EndGround:
		return "ground"
	case EndBounds:
		return "bounds"
	default:
		return "none"
	}
}

// Projectile is the single shot in play.
type Projectile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Active bool
}

// Integrate advances the projectile by dt with semi-implicit Euler:
// velocity first, then position with the new velocity.
func (p *Projectile) Integrate(gravity, dt float64) {
	p.Vel.Y += gravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// ResolveObstacle bounces the projectile off rect if they touch.
// The collision axis is the larger of the center-to-center offsets; ties go
// to y. The velocity component on that axis is reflected away from the rect
// and damped by restitution, and the projectile is pushed out to the rect's
// edge. Returns true on contact.
func ResolveObstacle(p *Projectile, rect core.Rect, restitution float64) bool {
	if !rect.CircleIntersects(p.Pos, p.Radius) {
		return false
	}

	c := rect.Center()
	dx := p.Pos.X - c.X
	dy := p.Pos.Y - c.Y

	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			p.Pos.X = rect.X - p.Radius
			p.Vel.X = -math.Abs(p.Vel.X) * restitution
		} else {
			p.Pos.X = rect.Right() + p.Radius
			p.Vel.X = math.Abs(p.Vel.X) * restitution
		}
		return true
	}

	if dy < 0 {
		p.Pos.Y = rect.Y - p.Radius
		p.Vel.Y = -math.Abs(p.Vel.Y) * restitution
	} else {
		p.Pos.Y = rect.Bottom() + p.Radius
		p.Vel.Y = math.Abs(p.Vel.Y) * restitution
	}
	return true
}

// ResolveGround bounces the projectile off the ground line.
// Returns whether it touched the ground and whether the rebound was too
// weak to continue (the projectile settles).
func ResolveGround(p *Projectile, groundY, restitution, friction, settleSpeed float64) (contact, settled bool) {
	if p.Pos.Y+p.Radius <= groundY {
		return false, false
	}

	p.Pos.Y = groundY - p.Radius
	p.Vel.Y = -math.Abs(p.Vel.Y) * restitution
	p.Vel.X *= friction

	return true, math.Abs(p.Vel.Y) < settleSpeed
}

// OutOfBounds reports whether the projectile left the play area: past
// either side by more than margin, or more than ceiling above the top.
func OutOfBounds(p Projectile, width, margin, ceiling float64) bool {
	if !p.Pos.Finite() {
		return true
	}
	return p.Pos.X < -margin || p.Pos.X > width+margin || p.Pos.Y < -ceiling
}

// HitTargets marks every unhit target within reach of the projectile and
// returns their indexes. Several targets can be hit in one call.
func HitTargets(p Projectile, targets []Target, sizeFactor float64) []int {
	var hits []int
	for i := range targets {
		t := &targets[i]
		if t.Hit {
			continue
		}
		if p.Pos.Dist(t.Pos) <= p.Radius+sizeFactor*t.Size {
			t.Hit = true
			hits = append(hits, i)
		}
	}
	return hits
}
