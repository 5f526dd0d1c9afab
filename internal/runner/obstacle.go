package runner

import (
	"fmt"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Obstacle is anything the dog can run into.
type Obstacle interface {
	// CheckIntersection resolves a collision with the dog, if any, by
	// sending it Land or KnockOut.
	CheckIntersection(c *Character)
	Draw(r Renderer)
	MoveHorizontally(dx int)
	Right() int
}

// Barrier knocks the dog out on any contact.
type Barrier struct {
	picture  assets.Picture
	position core.Point
}

// NewBarrier places a picture at position.
func NewBarrier(picture assets.Picture, position core.Point) *Barrier {
	return &Barrier{picture: picture, position: position}
}

// BoundingBox covers the whole picture.
func (b *Barrier) BoundingBox() core.Rect {
	return core.NewRect(b.position.X, b.position.Y, b.picture.Width, b.picture.Height)
}

// CheckIntersection implements Obstacle.
func (b *Barrier) CheckIntersection(c *Character) {
	if c.BoundingBox().Intersects(b.BoundingBox()) {
		c.KnockOut()
	}
}

// Draw implements Obstacle.
func (b *Barrier) Draw(r Renderer) {
	r.DrawImage(b.picture.Image, core.NewRect(0, 0, b.picture.Width, b.picture.Height), b.BoundingBox())
}

// MoveHorizontally implements Obstacle.
func (b *Barrier) MoveHorizontally(dx int) {
	b.position.X += dx
}

// Right implements Obstacle.
func (b *Barrier) Right() int {
	return b.BoundingBox().Right()
}

// Platform is a row of tile sprites with one or more bounding boxes. The dog
// can land on top of it; hitting it from the side or below knocks it out.
type Platform struct {
	sheet         assets.SpriteSheet
	position      core.Point
	sprites       []assets.Cell
	boundingBoxes []core.Rect
}

// PlatformBuilder assembles a Platform from sprite labels and a bounding-box
// template given relative to the platform's position.
type PlatformBuilder struct {
	sheet    assets.SpriteSheet
	position core.Point
	labels   []string
	boxes    []core.Rect
}

// NewPlatformBuilder starts a platform at position.
func NewPlatformBuilder(sheet assets.SpriteSheet, position core.Point) *PlatformBuilder {
	return &PlatformBuilder{sheet: sheet, position: position}
}

// WithSprites sets the tile labels, left to right.
func (b *PlatformBuilder) WithSprites(labels ...string) *PlatformBuilder {
	b.labels = labels
	return b
}

// WithBoundingBoxes sets the collision template.
func (b *PlatformBuilder) WithBoundingBoxes(boxes ...core.Rect) *PlatformBuilder {
	b.boxes = boxes
	return b
}

// Build resolves sprites and offsets the boxes. It panics on labels missing
// from the sheet or on an empty template, both of which are content errors.
func (b *PlatformBuilder) Build() *Platform {
	if len(b.labels) == 0 || len(b.boxes) == 0 {
		panic(fmt.Sprintf("runner: platform needs sprites and boxes, got %d sprites and %d boxes",
			len(b.labels), len(b.boxes)))
	}

	p := &Platform{
		sheet:    b.sheet,
		position: b.position,
	}
	for _, label := range b.labels {
		cell, ok := b.sheet.Sheet.Cell(label)
		if !ok {
			panic(fmt.Sprintf("runner: missing platform sprite %q", label))
		}
		p.sprites = append(p.sprites, cell)
	}
	for _, box := range b.boxes {
		p.boundingBoxes = append(p.boundingBoxes, box.Translate(b.position.X, b.position.Y))
	}
	return p
}

// Position returns the platform's top-left corner.
func (p *Platform) Position() core.Point {
	return p.position
}

// BoundingBoxes returns the collision boxes in world coordinates.
func (p *Platform) BoundingBoxes() []core.Rect {
	return p.boundingBoxes
}

// CheckIntersection implements Obstacle. A descending dog whose position is
// above the platform top lands on the box it hit; anything else is a crash.
func (p *Platform) CheckIntersection(c *Character) {
	for _, box := range p.boundingBoxes {
		if !c.BoundingBox().Intersects(box) {
			continue
		}
		if c.VelocityY() > 0 && c.PosY() < p.position.Y {
			c.LandOn(box.Y)
		} else {
			c.KnockOut()
		}
	}
}

// Draw implements Obstacle.
func (p *Platform) Draw(r Renderer) {
	x := 0
	for _, sprite := range p.sprites {
		r.DrawImage(
			p.sheet.Image,
			sprite.Frame.Rect(),
			core.NewRect(p.position.X+x, p.position.Y, sprite.Frame.W, sprite.Frame.H),
		)
		x += sprite.Frame.W
	}
}

// MoveHorizontally implements Obstacle.
func (p *Platform) MoveHorizontally(dx int) {
	p.position.X += dx
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].X += dx
	}
}

// Right implements Obstacle.
func (p *Platform) Right() int {
	right := p.position.X
	for _, box := range p.boundingBoxes {
		right = core.Max(right, box.Right())
	}
	return right
}
