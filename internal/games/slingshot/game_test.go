package slingshot

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "slingshot" || g.Title() != "Slingshot" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
	if !registry.Exists("slingshot") {
		t.Error("slingshot not registered")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should stay identical
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		switch i {
		case 10:
			input.Set(core.ActionFire)
		case 11, 12, 13:
			input.Set(core.ActionLeft)
		case 14:
			input.Set(core.ActionUp)
		case 15:
			input.Set(core.ActionFire)
		case 200:
			input.AddPointer(core.PointerDown, 12, 17)
		case 201:
			input.AddPointer(core.PointerMove, 7, 19)
		case 202:
			input.AddPointer(core.PointerUp, 7, 19)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1 := g1.Engine().Snapshot()
	s2 := g2.Engine().Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("snapshot hash mismatch: %+v vs %+v", s1, s2)
	}
	if s1.ShotsLeft == g1.cfg.Rounds.ShotsPerRound && s1.Level == 1 {
		t.Error("no shot was fired")
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)
	if g1.Engine().Snapshot().Hash() == g2.Engine().Snapshot().Hash() {
		t.Error("different seeds produced the same layout")
	}
}

func TestPointerDragFires(t *testing.T) {
	g := newTestGame(t, 42)

	// anchor (120,330) maps to cell (12,17) on an 80x24 screen
	in := core.NewInputFrame()
	in.AddPointer(core.PointerDown, 12, 17)
	in.AddPointer(core.PointerMove, 8, 17)
	g.Step(in)
	if g.Engine().Status() != StatusAiming {
		t.Fatalf("status = %v, want aiming", g.Engine().Status())
	}
	if len(g.Engine().Preview()) == 0 {
		t.Error("no preview while aiming")
	}

	in.Clear()
	in.AddPointer(core.PointerUp, 8, 17)
	g.Step(in)
	if g.Engine().Status() != StatusFlying {
		t.Fatalf("status = %v, want flying", g.Engine().Status())
	}
	if g.Engine().ShotsLeft() != g.cfg.Rounds.ShotsPerRound-1 {
		t.Errorf("ShotsLeft = %d", g.Engine().ShotsLeft())
	}
}

func TestPointerDownAwayFromAnchorIgnored(t *testing.T) {
	g := newTestGame(t, 42)
	in := core.NewInputFrame()
	in.AddPointer(core.PointerDown, 60, 5)
	g.Step(in)
	if g.Engine().Status() != StatusReady {
		t.Errorf("status = %v, want ready", g.Engine().Status())
	}
}

func TestKeyboardAim(t *testing.T) {
	g := newTestGame(t, 42)
	in := core.NewInputFrame()

	in.Set(core.ActionFire)
	g.Step(in)
	if g.Engine().Status() != StatusAiming {
		t.Fatalf("status = %v, want aiming", g.Engine().Status())
	}

	in.Clear()
	in.Set(core.ActionBack)
	g.Step(in)
	if g.Engine().Status() != StatusReady {
		t.Fatalf("back did not cancel aim: %v", g.Engine().Status())
	}

	in.Clear()
	in.Set(core.ActionFire)
	g.Step(in)
	for i := 0; i < 3; i++ {
		in.Clear()
		in.Set(core.ActionLeft)
		g.Step(in)
	}
	step := g.cfg.Launcher.MaxPull / keyboardSteps
	if got := g.Engine().Anchor().X - g.Engine().AimPoint().X; !near(got, 3*step) {
		t.Errorf("pulled %v, want %v", got, 3*step)
	}

	in.Clear()
	in.Set(core.ActionFire)
	g.Step(in)
	if g.Engine().Status() != StatusFlying {
		t.Errorf("status = %v, want flying", g.Engine().Status())
	}
}

func TestPauseStopsClock(t *testing.T) {
	g := newTestGame(t, 42)
	in := core.NewInputFrame()
	g.Step(in)
	g.Step(in)
	before := g.Engine().Time()

	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused {
		t.Fatal("not paused")
	}
	in.Clear()
	g.Step(in)
	if g.Engine().Time() != before {
		t.Error("clock advanced while paused")
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newTestGame(t, 42)
	g.Engine().SetupRound(3)
	g.Engine().score = 300

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)
	if res.State.Level != 1 || res.State.Score != 0 {
		t.Errorf("after restart level=%d score=%d", res.State.Level, res.State.Score)
	}
}

func TestRunEndedReported(t *testing.T) {
	g := newTestGame(t, 42)
	e := g.Engine()
	placeTargets(e, core.V(5000, 5000))
	e.round.ShotsLeft = 1
	e.score = 700
	e.BeginAim(e.Anchor())
	e.ReleaseAim(e.Anchor().Add(core.V(-20, 0)))

	in := core.NewInputFrame()
	var ended core.StepResult
	for i := 0; i < 600 && !ended.RunEnded; i++ {
		ended = g.Step(in)
	}
	if !ended.RunEnded || ended.FinalScore != 700 || ended.FinalLevel != 1 {
		t.Errorf("result = %+v", ended)
	}
	if ended.State.GameOver {
		t.Error("run loss should not report GameOver")
	}
}

func TestHUDShowsCooldown(t *testing.T) {
	g := newTestGame(t, 42)
	e := g.Engine()
	placeTargets(e, core.V(5000, 5000))
	e.BeginAim(e.Anchor())
	e.ReleaseAim(e.Anchor().Add(core.V(-20, 0)))

	in := core.NewInputFrame()
	for i := 0; i < 600 && e.Status() == StatusFlying; i++ {
		g.Step(in)
	}
	if e.Status() != StatusCooldown {
		t.Fatalf("status = %v, want cooldown", e.Status())
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "[cooldown] 0.") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(20, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Error("no size warning rendered")
	}
}

func TestRenderDrawsWorld(t *testing.T) {
	g := newTestGame(t, 42)
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if scr.Get(12, 17) != ProjectileChar && scr.Get(12, 17) != AnchorChar {
		t.Errorf("anchor cell = %q", scr.Get(12, 17))
	}
	if !strings.ContainsRune(scr.String(), TargetChar) {
		t.Error("no target drawn")
	}
	if !strings.ContainsRune(scr.Row(23), GroundChar) {
		t.Error("no ground drawn")
	}
}
