package core

import "testing"

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionDashCharge)

	if !f.Pressed(ActionDashCharge) || !f.Held(ActionDashCharge) {
		t.Error("Press should set both the edge and the held bit")
	}
	if f.Released(ActionDashCharge) {
		t.Error("Press should not set the release edge")
	}

	next := f.Next()
	if next.Pressed(ActionDashCharge) {
		t.Error("Next() should drop edges")
	}
	if !next.Held(ActionDashCharge) {
		t.Error("Next() should carry held state")
	}

	next.Release(ActionDashCharge)
	if !next.Released(ActionDashCharge) || next.Held(ActionDashCharge) {
		t.Error("Release should set the edge and clear held")
	}
	if !next.Next().Empty() {
		t.Error("frame after release should be empty")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionJump, "Jump"},
		{ActionSlowTime, "SlowTime"},
		{ActionPerkConfirm, "PerkConfirm"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
