package slingshot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

func TestTargetCount(t *testing.T) {
	tests := []struct {
		level, max, want int
	}{
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 3},
		{7, 3, 3},
		{2, 1, 2},
		{0, 3, 1},
	}
	for _, tt := range tests {
		if got := TargetCount(tt.level, tt.max); got != tt.want {
			t.Errorf("TargetCount(%d, %d) = %d, want %d", tt.level, tt.max, got, tt.want)
		}
	}
}

func TestNewRoundLevelOne(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	r := NewRound(1, cfg, rand.New(rand.NewSource(1)))

	if len(r.Targets) != 1 {
		t.Errorf("targets = %d, want 1", len(r.Targets))
	}
	if len(r.Obstacles) != 0 {
		t.Errorf("obstacles = %d, want 0", len(r.Obstacles))
	}
	if r.ShotsLeft != cfg.Rounds.ShotsPerRound {
		t.Errorf("ShotsLeft = %d, want %d", r.ShotsLeft, cfg.Rounds.ShotsPerRound)
	}
	if r.Status != StatusReady {
		t.Errorf("Status = %v, want ready", r.Status)
	}
	if r.Targets[0].Motion != nil {
		t.Error("level 1 target should not move")
	}
}

func TestNewRoundPlacement(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	rc := cfg.Rounds

	for seed := int64(1); seed <= 50; seed++ {
		for level := 1; level <= 8; level++ {
			r := NewRound(level, cfg, rand.New(rand.NewSource(seed)))

			wantObstacle := level >= rc.ObstacleFromLevel
			if (len(r.Obstacles) == 1) != wantObstacle {
				t.Fatalf("seed %d level %d: obstacles = %d", seed, level, len(r.Obstacles))
			}
			for _, o := range r.Obstacles {
				if o.Pos.X < cfg.Launcher.AnchorX+rc.AnchorClearance {
					t.Errorf("seed %d level %d: obstacle at x=%.1f too close to the anchor", seed, level, o.Pos.X)
				}
				if o.Rect().Bottom() > cfg.World.GroundY+1e-9 {
					t.Errorf("seed %d level %d: obstacle sinks below ground", seed, level)
				}
			}

			moving := 0
			for _, tg := range r.Targets {
				if tg.Base.X < rc.TargetMinX || tg.Base.X > rc.TargetMaxX ||
					tg.Base.Y < rc.TargetMinY || tg.Base.Y > rc.TargetMaxY {
					t.Errorf("seed %d level %d: target %d out of bounds at %v", seed, level, tg.ID, tg.Base)
				}
				if hitsObstacle(tg.Base, r.Obstacles, cfg) {
					t.Errorf("seed %d level %d: target %d overlaps the obstacle", seed, level, tg.ID)
				}
				if tg.Motion != nil {
					moving++
				}
			}
			if moving > 1 {
				t.Errorf("seed %d level %d: %d moving targets", seed, level, moving)
			}
			if level < rc.MotionFromLevel && moving != 0 {
				t.Errorf("seed %d level %d: motion before level %d", seed, level, rc.MotionFromLevel)
			}
		}
	}
}

func TestNewRoundDeterministic(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	a := NewRound(5, cfg, rand.New(rand.NewSource(99)))
	b := NewRound(5, cfg, rand.New(rand.NewSource(99)))

	if len(a.Targets) != len(b.Targets) || len(a.Obstacles) != len(b.Obstacles) {
		t.Fatal("same seed produced different layouts")
	}
	for i := range a.Targets {
		if a.Targets[i].Base != b.Targets[i].Base {
			t.Errorf("target %d: %v vs %v", i, a.Targets[i].Base, b.Targets[i].Base)
		}
	}
}

func TestFallbackAvoidsObstacle(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	rc := cfg.Rounds
	// a wide wall across the grid slot of the first fallback target
	obs := []Obstacle{{Pos: core.V(rc.TargetMaxX-40, 0), W: 60, H: cfg.World.GroundY}}

	p := fallbackTarget(0, obs, cfg)
	if p.X < rc.TargetMinX || p.X > rc.TargetMaxX || p.Y < rc.TargetMinY || p.Y > rc.TargetMaxY {
		t.Errorf("fallback target out of bounds: %v", p)
	}
}

func TestMotionOffset(t *testing.T) {
	m := Motion{Axis: AxisX, Amplitude: 10, Speed: 2, Phase: 0}
	off := m.Offset(math.Pi / 4)
	if !near(off.X, 10) || off.Y != 0 {
		t.Errorf("Offset = %v, want (10,0)", off)
	}

	m = Motion{Axis: AxisY, Amplitude: 5, Speed: 1, Phase: math.Pi / 2}
	off = m.Offset(0)
	if off.X != 0 || !near(off.Y, 5) {
		t.Errorf("Offset = %v, want (0,5)", off)
	}
}

func TestMotionRoomLimitsAmplitude(t *testing.T) {
	cfg := config.DefaultSlingshotConfig()
	rc := cfg.Rounds
	tg := Target{Base: core.V(rc.TargetMinX+10, 250), Size: rc.TargetSize}

	if room := motionRoom(tg, AxisX, nil, cfg); !near(room, 10) {
		t.Errorf("x room = %v, want 10", room)
	}
	if m := pickMotion(tg, nil, rc.MotionFromLevel, cfg, rand.New(rand.NewSource(3))); m != nil && m.Axis == AxisX {
		t.Errorf("motion on a cramped axis: %+v", m)
	}
}

func TestRoundCleared(t *testing.T) {
	r := Round{Targets: []Target{{ID: 1}, {ID: 2}}}
	if r.Cleared() || r.Remaining() != 2 {
		t.Fatal("fresh round reported cleared")
	}
	r.Targets[0].Hit = true
	r.Targets[1].Hit = true
	if !r.Cleared() || r.Remaining() != 0 {
		t.Error("round with all targets hit not cleared")
	}
}
