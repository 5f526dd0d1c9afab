package runner

import "fmt"

// StateKind identifies which behavior the dog is in.
type StateKind int

const (
	Idle StateKind = iota
	Running
	Jumping
	Sliding
	Falling
	KnockedOut
)

// String returns the state name.
func (k StateKind) String() string {
	switch k {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Jumping:
		return "Jumping"
	case Sliding:
		return "Sliding"
	case Falling:
		return "Falling"
	case KnockedOut:
		return "KnockedOut"
	default:
		return "Unknown"
	}
}

// animation is the sprite-sheet prefix for the state.
func (k StateKind) animation() string {
	switch k {
	case Idle:
		return "Idle"
	case Running:
		return "Run"
	case Jumping:
		return "Jump"
	case Sliding:
		return "Slide"
	default:
		return "Dead"
	}
}

// EventKind identifies an input to the state machine.
type EventKind int

const (
	Run EventKind = iota
	Jump
	Slide
	KnockOut
	Land
	Update
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case Run:
		return "Run"
	case Jump:
		return "Jump"
	case Slide:
		return "Slide"
	case KnockOut:
		return "KnockOut"
	case Land:
		return "Land"
	case Update:
		return "Update"
	default:
		return "Unknown"
	}
}

// Event is a state machine input. Y is only meaningful for Land.
type Event struct {
	Kind EventKind
	Y    int
}

// On returns an event of the given kind with no payload.
func On(k EventKind) Event {
	return Event{Kind: k}
}

// LandOn returns a Land event for a surface whose top is at y.
func LandOn(y int) Event {
	return Event{Kind: Land, Y: y}
}

// State is the dog's state machine: a state tag plus the context it owns.
// The zero value is not meaningful; use NewState.
type State struct {
	kind StateKind
	ctx  Context
}

// NewState returns an idle dog at the starting point on the floor.
func NewState() State {
	return State{kind: Idle, ctx: newContext()}
}

// Kind returns the current state tag.
func (s State) Kind() StateKind {
	return s.kind
}

// Context returns a copy of the dog's kinematic state.
func (s State) Context() Context {
	return s.ctx
}

// FrameName returns the sprite label for the current animation frame,
// e.g. "Run (3).png". Every three ticks share one sprite.
func (s State) FrameName() string {
	return fmt.Sprintf("%s (%d).png", s.kind.animation(), s.ctx.Frame/3+1)
}

// Transition applies e and returns the resulting state. Pairs that the
// state does not handle return s unchanged.
func (s State) Transition(e Event) State {
	switch s.kind {
	case Idle:
		return s.idle(e)
	case Running:
		return s.running(e)
	case Jumping:
		return s.jumping(e)
	case Sliding:
		return s.sliding(e)
	case Falling:
		return s.falling(e)
	case KnockedOut:
		return s.knockedOut(e)
	}
	return s
}

func (s State) idle(e Event) State {
	switch e.Kind {
	case Run:
		return State{kind: Running, ctx: s.ctx.resetFrame().runRight()}
	case Update:
		return State{kind: Idle, ctx: s.ctx.update(idleFrames)}
	}
	return s
}

func (s State) running(e Event) State {
	switch e.Kind {
	case Jump:
		return State{kind: Jumping, ctx: s.ctx.setVerticalVelocity(JumpSpeed).resetFrame()}
	case Slide:
		return State{kind: Sliding, ctx: s.ctx.resetFrame()}
	case KnockOut:
		return knockOut(s.ctx)
	case Land:
		return State{kind: Running, ctx: s.ctx.setOn(e.Y)}
	case Update:
		return State{kind: Running, ctx: s.ctx.update(runningFrames)}
	}
	return s
}

func (s State) jumping(e Event) State {
	switch e.Kind {
	case KnockOut:
		return knockOut(s.ctx)
	case Land:
		return landFromJump(s.ctx, e.Y)
	case Update:
		ctx := s.ctx.update(jumpingFrames)
		if ctx.Position.Y >= Floor {
			return landFromJump(ctx, Floor+PlayerHeight)
		}
		return State{kind: Jumping, ctx: ctx}
	}
	return s
}

func (s State) sliding(e Event) State {
	switch e.Kind {
	case KnockOut:
		return knockOut(s.ctx)
	case Land:
		return State{kind: Sliding, ctx: s.ctx.setOn(e.Y)}
	case Update:
		ctx := s.ctx.update(slidingFrames)
		if ctx.Frame == 0 {
			// The slide animation wrapped: stand back up.
			return State{kind: Running, ctx: ctx.resetFrame()}
		}
		return State{kind: Sliding, ctx: ctx}
	}
	return s
}

func (s State) falling(e Event) State {
	if e.Kind != Update {
		return s
	}
	ctx := s.ctx.update(fallingFrames)
	if ctx.Frame == 0 {
		// Hold the last dead frame.
		ctx.Frame = fallingFrames - 1
		return State{kind: KnockedOut, ctx: ctx}
	}
	return State{kind: Falling, ctx: ctx}
}

func (s State) knockedOut(e Event) State {
	if e.Kind == Land {
		return State{kind: KnockedOut, ctx: s.ctx.setOn(e.Y)}
	}
	return s
}

func knockOut(ctx Context) State {
	return State{kind: Falling, ctx: ctx.resetFrame().stop()}
}

func landFromJump(ctx Context, y int) State {
	return State{kind: Running, ctx: ctx.resetFrame().setOn(y)}
}
