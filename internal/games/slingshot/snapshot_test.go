package slingshot

import (
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

func TestSnapshotIsIndependentCopy(t *testing.T) {
	e := newTestEngine(t)
	placeTargets(e, core.V(500, 200))
	e.round.Targets[0].Motion = &Motion{Axis: AxisY, Amplitude: 20, Speed: 1.5}

	snap := e.Snapshot()
	before := snap.Hash()

	e.round.Targets[0].Motion.Amplitude = 40
	e.round.Targets[0].Hit = true

	if snap.Targets[0].Motion == e.round.Targets[0].Motion {
		t.Fatal("snapshot shares Motion with the engine")
	}
	if snap.Targets[0].Motion.Amplitude != 20 || snap.Targets[0].Hit {
		t.Errorf("snapshot changed with the engine: %+v", snap.Targets[0])
	}
	if snap.Hash() != before {
		t.Error("snapshot hash changed after engine mutation")
	}
}

func TestSnapshotHashCoversMotion(t *testing.T) {
	e := newTestEngine(t)
	placeTargets(e, core.V(500, 200))
	e.round.Targets[0].Motion = &Motion{Axis: AxisX, Amplitude: 20, Speed: 1.5}
	a := e.Snapshot().Hash()

	e.round.Targets[0].Motion.Speed = 2
	if e.Snapshot().Hash() == a {
		t.Error("hash ignores motion speed")
	}
}
