package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cavyn/internal/core"
)

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
	}{
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, []core.Action{core.ActionLeft}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, []core.Action{core.ActionRight}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionUp, core.ActionPerkUp}},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, []core.Action{core.ActionDown, core.ActionPerkDown}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []core.Action{core.ActionJump, core.ActionPerkConfirm}},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, []core.Action{core.ActionDashCharge}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionPerkConfirm}},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, []core.Action{core.ActionRestart}},
		{"z", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Actions(tt.msg); !slices.Equal(got, tt.expected) {
				t.Errorf("Actions(%s) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestHoldTrackerTap(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 120*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	f := h.Frame(t0.Add(16 * time.Millisecond))
	if !f.Pressed(core.ActionLeft) || !f.Held(core.ActionLeft) {
		t.Fatal("first frame should carry the press edge and the held bit")
	}

	f = h.Frame(t0.Add(400 * time.Millisecond))
	if f.Pressed(core.ActionLeft) || !f.Held(core.ActionLeft) {
		t.Error("key should stay held without a new edge inside the first window")
	}

	f = h.Frame(t0.Add(500 * time.Millisecond))
	if !f.Released(core.ActionLeft) || f.Held(core.ActionLeft) {
		t.Error("key should be released once the first window expires")
	}
	if h.Held(core.ActionLeft) {
		t.Error("tracker still reports the key held")
	}

	if f = h.Frame(t0.Add(520 * time.Millisecond)); !f.Empty() {
		t.Error("frame after the release should be empty")
	}
}

func TestHoldTrackerRepeat(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 120*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionDashCharge, t0)
	h.Frame(t0.Add(10 * time.Millisecond))
	h.Press(core.ActionDashCharge, t0.Add(480*time.Millisecond))

	f := h.Frame(t0.Add(550 * time.Millisecond))
	if f.Pressed(core.ActionDashCharge) {
		t.Error("a repeat must not produce a second press edge")
	}
	if !f.Held(core.ActionDashCharge) {
		t.Error("key should stay held after a repeat")
	}

	f = h.Frame(t0.Add(600 * time.Millisecond))
	if !f.Released(core.ActionDashCharge) {
		t.Error("key should be released once repeats stop for the repeat window")
	}
}

func TestHoldTrackerTapInsideOneTick(t *testing.T) {
	h := NewHoldTracker(0, 0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionJump, t0)
	f := h.Frame(t0)
	if !f.Pressed(core.ActionJump) || !f.Released(core.ActionJump) {
		t.Error("a tap shorter than a tick should carry both edges")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second, time.Second)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionRight, t0)
	h.Reset()
	if f := h.Frame(t0); !f.Empty() {
		t.Error("Reset() should drop held keys and pending edges")
	}
}
