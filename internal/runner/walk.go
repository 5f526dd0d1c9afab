package runner

import (
	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// World size in pixels. The terminal canvas scales this to whatever cells it
// has.
const (
	WorldWidth  = 600
	WorldHeight = 600
)

// Generator defaults.
const (
	DefaultTimelineMinimum = 1000
	DefaultObstacleBuffer  = 20
)

// KeyState answers whether a logical key is held during the current tick.
type KeyState interface {
	IsPressed(a core.Action) bool
}

// background is one tile of the looping backdrop.
type background struct {
	picture  assets.Picture
	position core.Point
}

func (b *background) right() int {
	return b.position.X + b.picture.Width
}

func (b *background) draw(r Renderer) {
	r.DrawImage(
		b.picture.Image,
		core.NewRect(0, 0, b.picture.Width, b.picture.Height),
		core.NewRect(b.position.X, b.position.Y, b.picture.Width, b.picture.Height),
	)
}

// Walk is one run of the game: the dog, the scrolling backdrop and the
// obstacles ahead of it.
type Walk struct {
	dog             *Character
	backgrounds     [2]background
	obstacles       []Obstacle
	generator       *SegmentGenerator
	timeline        int
	timelineMinimum int
	gap             int
	distance        int
}

// NewWalk builds a fresh run: an idle dog, the opening segment at offset 0,
// and enough further segments to reach the lookahead threshold.
func NewWalk(pack *assets.Pack, generator *SegmentGenerator, dog *Character, timelineMinimum, gap int) *Walk {
	if timelineMinimum <= 0 {
		timelineMinimum = DefaultTimelineMinimum
	}
	if gap <= 0 {
		gap = DefaultObstacleBuffer
	}

	w := &Walk{
		dog: dog,
		backgrounds: [2]background{
			{picture: pack.Background},
			{picture: pack.Background, position: core.Point{X: pack.Background.Width}},
		},
		obstacles:       generator.First(0),
		generator:       generator,
		timelineMinimum: timelineMinimum,
		gap:             gap,
	}
	w.timeline = rightmost(w.obstacles, 0)
	w.generateNextSegments()
	return w
}

// Dog returns the character.
func (w *Walk) Dog() *Character {
	return w.dog
}

// Obstacles returns the live obstacles in list order.
func (w *Walk) Obstacles() []Obstacle {
	return w.obstacles
}

// Timeline returns the rightmost edge reached by generated obstacles.
func (w *Walk) Timeline() int {
	return w.timeline
}

// Distance returns how far the world has scrolled, in pixels.
func (w *Walk) Distance() int {
	return w.distance
}

// KnockedOut reports whether the dog is done.
func (w *Walk) KnockedOut() bool {
	return w.dog.KnockedOut()
}

// SetGap changes the space left between generated segments. Non-positive
// gaps are ignored, as in NewWalk.
func (w *Walk) SetGap(gap int) {
	if gap > 0 {
		w.gap = gap
	}
}

// Update runs one walking tick: input, physics, scroll, collision and
// generation, in that order.
func (w *Walk) Update(keys KeyState) {
	if keys.IsPressed(core.ActionJump) {
		w.dog.Jump()
	}
	if keys.IsPressed(core.ActionDuck) {
		w.dog.Slide()
	}
	w.dog.Update()

	velocity := -w.dog.WalkingSpeed()
	w.scrollBackgrounds(velocity)

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.MoveHorizontally(velocity)
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(w.obstacles); i++ {
		w.obstacles[i] = nil
	}
	w.obstacles = kept

	for _, o := range w.obstacles {
		o.CheckIntersection(w.dog)
	}

	w.timeline += velocity
	w.generateNextSegments()
	w.distance -= velocity
}

func (w *Walk) scrollBackgrounds(velocity int) {
	for i := range w.backgrounds {
		w.backgrounds[i].position.X += velocity
	}
	for i := range w.backgrounds {
		if w.backgrounds[i].right() <= 0 {
			other := &w.backgrounds[1-i]
			w.backgrounds[i].position.X = other.right()
		}
	}
}

func (w *Walk) generateNextSegments() {
	for w.timeline < w.timelineMinimum {
		w.obstacles = append(w.obstacles, w.generator.Next(w.timeline+w.gap)...)
		w.timeline = rightmost(w.obstacles, w.timeline)
	}
}

// Draw clears the world and draws the backdrop, the dog and every obstacle.
func (w *Walk) Draw(r Renderer) {
	r.Clear(core.NewRect(0, 0, WorldWidth, WorldHeight))
	for i := range w.backgrounds {
		w.backgrounds[i].draw(r)
	}
	w.dog.Draw(r)
	for _, o := range w.obstacles {
		o.Draw(r)
	}
}
