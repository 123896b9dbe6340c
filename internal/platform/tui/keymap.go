package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cavyn/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Jump       key.Binding
	Shoot      key.Binding
	UseItem    key.Binding
	Dash       key.Binding
	SlowTime   key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Shoot, k.Dash, k.SlowTime, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Shoot, k.UseItem, k.Dash, k.SlowTime},
		{k.Confirm, k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "aim up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "aim down"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "shoot"),
		),
		UseItem: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "use item"),
		),
		Dash: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "hold to dash"),
		),
		SlowTime: key.NewBinding(
			key.WithKeys(";", "f"),
			key.WithHelp(";/f", "slow time"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "take perk"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key message to the game actions it drives.
// Up and Down double as perk cursor keys; the simulation only reads the
// perk actions while an offer is open.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionRight}
	case key.Matches(msg, k.Up):
		return []core.Action{core.ActionUp, core.ActionPerkUp}
	case key.Matches(msg, k.Down):
		return []core.Action{core.ActionDown, core.ActionPerkDown}
	case key.Matches(msg, k.Jump):
		return []core.Action{core.ActionJump, core.ActionPerkConfirm}
	case key.Matches(msg, k.Shoot):
		return []core.Action{core.ActionShoot}
	case key.Matches(msg, k.UseItem):
		return []core.Action{core.ActionUseItem}
	case key.Matches(msg, k.Dash):
		return []core.Action{core.ActionDashCharge}
	case key.Matches(msg, k.SlowTime):
		return []core.Action{core.ActionSlowTime}
	case key.Matches(msg, k.Confirm):
		return []core.Action{core.ActionPerkConfirm}
	case key.Matches(msg, k.Restart):
		return []core.Action{core.ActionRestart}
	}
	return nil
}

// Terminals report key-down and auto-repeat only. A key counts as held
// until no repeat arrives within the timeout; the first window covers the
// terminal's initial repeat delay.
const (
	firstHoldTimeout  = 500 * time.Millisecond
	repeatHoldTimeout = 120 * time.Millisecond
)

type holdState struct {
	since time.Time
	last  time.Time
}

// HoldTracker turns key-down messages into input frames, synthesising the
// key-up edge when a key stops repeating.
type HoldTracker struct {
	first  time.Duration
	repeat time.Duration
	keys   map[core.Action]holdState
	frame  core.InputFrame
}

// NewHoldTracker creates a tracker with the given hold timeouts.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		first:  first,
		repeat: repeat,
		keys:   make(map[core.Action]holdState),
	}
}

// Press records a key-down or key-repeat for an action.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	st, held := h.keys[a]
	if !held {
		h.frame.Press(a)
		h.keys[a] = holdState{since: now, last: now}
		return
	}
	st.last = now
	h.keys[a] = st
	h.frame.Hold(a)
}

// Held reports whether an action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.keys[a]
	return ok
}

// Frame releases expired keys and returns the frame for the next tick.
// Edges are consumed; held keys carry over.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	for a, st := range h.keys {
		timeout := h.repeat
		if st.last.Equal(st.since) {
			timeout = h.first
		}
		if now.Sub(st.last) >= timeout {
			h.frame.Release(a)
			delete(h.keys, a)
		}
	}
	out := h.frame
	h.frame = out.Next()
	return out
}

// Reset drops every held key without emitting releases.
func (h *HoldTracker) Reset() {
	clear(h.keys)
	h.frame = core.NewInputFrame()
}
