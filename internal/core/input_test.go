package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionSpool) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionSpool)
	f.Set(ActionLeft)
	if !f.Has(ActionSpool) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionSpool) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionRetract.String() != "Retract" {
		t.Errorf("ActionRetract.String() = %q", ActionRetract.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
