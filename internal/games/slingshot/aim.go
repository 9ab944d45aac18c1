package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// ClampPull limits an aim point to maxPull from the anchor. Points within
// the radius are returned unchanged; farther points are scaled back radially.
func ClampPull(anchor, p core.Vec2, maxPull float64) core.Vec2 {
	d := p.Sub(anchor)
	l := d.Len()
	if l <= maxPull || l == 0 {
		return p
	}
	return anchor.Add(d.Scale(maxPull / l))
}

// LaunchVelocity converts a pulled aim point into launch velocity: the
// projectile flies opposite to the pull, faster the farther it was pulled.
func LaunchVelocity(anchor, pulled core.Vec2, multiplier float64) core.Vec2 {
	return pulled.Sub(anchor).Scale(-multiplier)
}

// PredictTrajectory integrates a flight under gravity for up to maxSteps
// fixed steps and returns the visited points. It stops before the first
// point below groundY. The integrator matches the one used in flight, so the
// preview follows the real path for the same step size.
func PredictTrajectory(start, vel core.Vec2, gravity, step float64, maxSteps int, groundY float64) []core.Vec2 {
	points := make([]core.Vec2, 0, maxSteps)
	p := Projectile{Pos: start, Vel: vel}
	for i := 0; i < maxSteps; i++ {
		p.Integrate(gravity, step)
		if p.Pos.Y > groundY {
			break
		}
		points = append(points, p.Pos)
	}
	return points
}
