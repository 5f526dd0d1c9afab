package runner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Bounding-box inset from the sprite's draw box, so near misses stay misses.
const (
	boxOffsetX     = 18
	boxOffsetY     = 14
	boxWidthInset  = 28
	boxHeightInset = 14
)

// Renderer is the drawing sink. Implementations copy pixels and nothing more.
type Renderer interface {
	Clear(r core.Rect)
	DrawImage(img core.Image, frame, dst core.Rect)
}

// Audio plays the jump sound. Errors are logged by the caller and ignored.
type Audio interface {
	PlayJump() error
}

type silentAudio struct{}

func (silentAudio) PlayJump() error { return nil }

// Character is the dog: its state machine plus the sprite sheet used to size
// and draw it.
type Character struct {
	state  State
	sprite assets.SpriteSheet
	audio  Audio
	logger *log.Logger
}

// NewCharacter returns an idle dog. A nil audio plays nothing.
func NewCharacter(sprite assets.SpriteSheet, audio Audio, logger *log.Logger) *Character {
	if audio == nil {
		audio = silentAudio{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Character{
		state:  NewState(),
		sprite: sprite,
		audio:  audio,
		logger: logger,
	}
}

// State returns the state machine.
func (c *Character) State() State {
	return c.state
}

// Kind returns the current state tag.
func (c *Character) Kind() StateKind {
	return c.state.Kind()
}

// KnockedOut reports whether the dog has reached its terminal state.
func (c *Character) KnockedOut() bool {
	return c.state.Kind() == KnockedOut
}

// VelocityY is the vertical velocity; positive means descending.
func (c *Character) VelocityY() int {
	return c.state.Context().Velocity.Y
}

// PosY is the top of the dog's draw position before sprite offsets.
func (c *Character) PosY() int {
	return c.state.Context().Position.Y
}

// WalkingSpeed is how fast the world should scroll left.
func (c *Character) WalkingSpeed() int {
	return c.state.Context().Velocity.X
}

// Run starts running from idle.
func (c *Character) Run() {
	c.state = c.state.Transition(On(Run))
}

// Jump jumps if running, and plays the jump sound on entry.
func (c *Character) Jump() {
	before := c.state.Kind()
	c.state = c.state.Transition(On(Jump))
	if before != Jumping && c.state.Kind() == Jumping {
		if err := c.audio.PlayJump(); err != nil {
			c.logger.Warn("jump sound failed", "err", err)
		}
	}
}

// Slide slides if running.
func (c *Character) Slide() {
	c.state = c.state.Transition(On(Slide))
}

// KnockOut starts the fall.
func (c *Character) KnockOut() {
	c.state = c.state.Transition(On(KnockOut))
}

// LandOn snaps the dog onto a surface whose top is at y.
func (c *Character) LandOn(y int) {
	c.state = c.state.Transition(LandOn(y))
}

// Update advances physics and animation by one tick.
func (c *Character) Update() {
	c.state = c.state.Transition(On(Update))
}

// currentSprite looks up the cell for the current frame. A missing label
// means the sheet and the state machine disagree, which cannot be recovered.
func (c *Character) currentSprite() assets.Cell {
	name := c.state.FrameName()
	cell, ok := c.sprite.Sheet.Cell(name)
	if !ok {
		panic(fmt.Sprintf("runner: missing sprite frame %q", name))
	}
	return cell
}

// DestinationBox is where the current frame is drawn.
func (c *Character) DestinationBox() core.Rect {
	sprite := c.currentSprite()
	pos := c.state.Context().Position
	return core.NewRect(
		pos.X+sprite.SpriteSourceSize.X,
		pos.Y+sprite.SpriteSourceSize.Y,
		sprite.Frame.W,
		sprite.Frame.H,
	)
}

// BoundingBox is the collision box, inset from the destination box.
func (c *Character) BoundingBox() core.Rect {
	return c.DestinationBox().Inset(boxOffsetX, boxOffsetY, boxWidthInset, boxHeightInset)
}

// Draw renders the current frame.
func (c *Character) Draw(r Renderer) {
	sprite := c.currentSprite()
	r.DrawImage(c.sprite.Image, sprite.Frame.Rect(), c.DestinationBox())
}
