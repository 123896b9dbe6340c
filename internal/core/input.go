package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, Left arrow - run left
	ActionRight              // D, Right arrow - run right
	ActionUp                 // W, Up arrow - aim up
	ActionDown               // S, Down arrow - aim down
	ActionJump               // Space - jump
	ActionShoot              // J - fire a projectile
	ActionUseItem            // K - use the held item
	ActionDashCharge         // L - charge (hold) and release a focus dash
	ActionSlowTime           // Shift/; - slow time while held
	ActionPerkUp             // Up in the perk offer
	ActionPerkDown           // Down in the perk offer
	ActionPerkConfirm        // Enter in the perk offer
	ActionRestart            // R - start a new run after death
	ActionQuit               // Q, Ctrl+C - exit
	actionCount
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionJump:        "Jump",
	ActionShoot:       "Shoot",
	ActionUseItem:     "UseItem",
	ActionDashCharge:  "DashCharge",
	ActionSlowTime:    "SlowTime",
	ActionPerkUp:      "PerkUp",
	ActionPerkDown:    "PerkDown",
	ActionPerkConfirm: "PerkConfirm",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// actionSet is a fixed bitset over all actions.
type actionSet uint32

func (s actionSet) has(a Action) bool { return s&(1<<uint(a)) != 0 }
func (s *actionSet) add(a Action)     { *s |= 1 << uint(a) }
func (s *actionSet) del(a Action)     { *s &^= 1 << uint(a) }

// InputFrame is the input for one simulation tick: edge-triggered key-down and
// key-up events plus the polled held state.
type InputFrame struct {
	pressed  actionSet
	released actionSet
	held     actionSet
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records a key-down edge. The action also counts as held.
func (f *InputFrame) Press(a Action) {
	f.pressed.add(a)
	f.held.add(a)
}

// Release records a key-up edge and clears the held bit.
func (f *InputFrame) Release(a Action) {
	f.released.add(a)
	f.held.del(a)
}

// Hold marks an action as currently held without an edge.
func (f *InputFrame) Hold(a Action) {
	f.held.add(a)
}

// Pressed reports a key-down edge this tick.
func (f InputFrame) Pressed(a Action) bool { return f.pressed.has(a) }

// Released reports a key-up edge this tick.
func (f InputFrame) Released(a Action) bool { return f.released.has(a) }

// Held reports whether the action is held during this tick.
func (f InputFrame) Held(a Action) bool { return f.held.has(a) }

// Empty reports whether the frame carries no events and no held keys.
func (f InputFrame) Empty() bool {
	return f.pressed == 0 && f.released == 0 && f.held == 0
}

// Next returns the frame for the following tick: edges are dropped, held
// state carries over.
func (f InputFrame) Next() InputFrame {
	return InputFrame{held: f.held}
}
