package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
}

func TestInputFramePointerOrder(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerDown, 1, 2)
	f.AddPointer(PointerMove, 3, 4)
	f.AddPointer(PointerUp, 5, 6)

	kinds := []PointerKind{PointerDown, PointerMove, PointerUp}
	for i, ev := range f.Pointer {
		if ev.Kind != kinds[i] {
			t.Errorf("event %d kind = %v, expected %v", i, ev.Kind, kinds[i])
		}
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Pointer) != 0 {
		t.Error("Clear should drop pointer events")
	}
	if len(clone.Pointer) != 3 || clone.Pointer[2].X != 5 {
		t.Error("Clone should keep its own pointer events")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
