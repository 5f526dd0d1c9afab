package core

import "math/bits"

// Action is a logical input, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionRight          // D, Right arrow - start running
	ActionJump           // Space, W, Up - jump
	ActionDuck           // S, Down - slide
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions pressed during one simulation tick.
// The zero value is empty and ready to use; frames are plain values.
type InputFrame struct {
	pressed uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (a Action) bit() uint32 {
	if a <= ActionNone || a >= 32 {
		return 0
	}
	return 1 << uint(a)
}

// Set marks a as pressed. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	f.pressed |= a.bit()
}

// Has reports whether a was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.pressed&b != 0
}

// IsPressed reports whether the action is held for this tick.
// Terminal input has no key-up events, so a press within the tick counts as held.
func (f InputFrame) IsPressed(a Action) bool {
	return f.Has(a)
}

// Len returns how many distinct actions are pressed.
func (f InputFrame) Len() int {
	return bits.OnesCount32(f.pressed)
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = 0
}
