// Package runner implements the gameplay core of Walk the Dog: a dog driven
// by a state machine, a gravity and collision simulation, and a segment
// generator that keeps an endless runway of obstacles ahead of it.
//
// Everything here is single-threaded and tick-driven. Rendering, input and
// audio are reached through the Renderer, KeyState and Audio interfaces.
package runner

import "github.com/vovakirdan/walk-the-dog/internal/core"

// Physics and placement constants, in world pixels and pixels per tick.
const (
	Floor            = 479 // Top of the dog's draw box when standing on the ground
	PlayerHeight     = 121 // Distance from the draw-box top to the ground it stands on
	StartingPoint    = -20 // Horizontal position of the dog
	Gravity          = 2
	TerminalVelocity = 36
	JumpSpeed        = -36
	RunningSpeed     = 4
)

// Animation frame counts per state.
const (
	idleFrames    = 30
	runningFrames = 24
	jumpingFrames = 35
	slidingFrames = 14
	fallingFrames = 29
)

// Context is the kinematic state the dog carries through every state.
// It is passed by value; transitions hand a new copy to the next state.
type Context struct {
	Frame    int
	Position core.Point
	Velocity core.Point
}

func newContext() Context {
	return Context{Position: core.Point{X: StartingPoint, Y: Floor}}
}

// update advances the context by one tick for a state with frameCount
// animation frames. Horizontal velocity is the world's scroll rate and is not
// applied to the dog, which stays put under a stationary camera.
func (c Context) update(frameCount int) Context {
	if c.Velocity.Y < TerminalVelocity {
		c.Velocity.Y += Gravity
	}

	if c.Frame < frameCount-1 {
		c.Frame++
	} else {
		c.Frame = 0
	}

	c.Position.Y += c.Velocity.Y
	if c.Position.Y > Floor {
		c.Position.Y = Floor
	}
	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) runRight() Context {
	c.Velocity.X += RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(y int) Context {
	c.Velocity.Y = y
	return c
}

func (c Context) stop() Context {
	c.Velocity = core.Point{}
	return c
}

// setOn places the dog so its feet rest on the line y.
func (c Context) setOn(y int) Context {
	c.Position.Y = y - PlayerHeight
	return c
}
