package runner

import (
	"math/rand"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Platform heights and placement.
const (
	LowPlatform   = 420
	HighPlatform  = 375
	FirstPlatform = 370
	StoneOnGround = 546
)

// Floating platform geometry. Each platform is three tiles: two rounded end
// caps that are shorter than the flat span between them.
const (
	platformWidth      = 384
	platformHeight     = 93
	platformEdgeWidth  = 60
	platformEdgeHeight = 54
)

var floatingPlatformSprites = []string{"13.png", "14.png", "15.png"}

var floatingPlatformBoxes = []core.Rect{
	core.NewRect(0, 0, platformEdgeWidth, platformEdgeHeight),
	core.NewRect(platformEdgeWidth, 0, platformWidth-2*platformEdgeWidth, platformHeight),
	core.NewRect(platformWidth-platformEdgeWidth, 0, platformEdgeWidth, platformEdgeHeight),
}

func floatingPlatform(pack *assets.Pack, position core.Point) *Platform {
	return NewPlatformBuilder(pack.Tiles, position).
		WithSprites(floatingPlatformSprites...).
		WithBoundingBoxes(floatingPlatformBoxes...).
		Build()
}

// Segment builds a cluster of obstacles starting at offsetX.
type Segment func(pack *assets.Pack, offsetX int) []Obstacle

// StoneAndPlatform puts a stone on the ground and a low platform after it.
func StoneAndPlatform(pack *assets.Pack, offsetX int) []Obstacle {
	return []Obstacle{
		NewBarrier(pack.Stone, core.Point{X: offsetX + 150, Y: StoneOnGround}),
		floatingPlatform(pack, core.Point{X: offsetX + FirstPlatform, Y: LowPlatform}),
	}
}

// PlatformAndStone puts a high platform first and a stone under its far end.
func PlatformAndStone(pack *assets.Pack, offsetX int) []Obstacle {
	return []Obstacle{
		NewBarrier(pack.Stone, core.Point{X: offsetX + 400, Y: StoneOnGround}),
		floatingPlatform(pack, core.Point{X: offsetX + 200, Y: HighPlatform}),
	}
}

// DefaultSegments is the template set the generator picks from.
var DefaultSegments = []Segment{StoneAndPlatform, PlatformAndStone}

// SegmentGenerator picks segment templates uniformly at random.
type SegmentGenerator struct {
	pack     *assets.Pack
	segments []Segment
	rng      *rand.Rand
}

// NewSegmentGenerator creates a generator with its own seeded RNG.
func NewSegmentGenerator(pack *assets.Pack, seed int64, segments ...Segment) *SegmentGenerator {
	if len(segments) == 0 {
		segments = DefaultSegments
	}
	return &SegmentGenerator{
		pack:     pack,
		segments: segments,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// First returns the opening segment, always the same template.
func (g *SegmentGenerator) First(offsetX int) []Obstacle {
	return g.segments[0](g.pack, offsetX)
}

// Next returns a random segment starting at offsetX.
func (g *SegmentGenerator) Next(offsetX int) []Obstacle {
	return g.segments[g.rng.Intn(len(g.segments))](g.pack, offsetX)
}

// rightmost returns the largest right edge among obstacles, or floor if
// there are none further right.
func rightmost(obstacles []Obstacle, floor int) int {
	right := floor
	for _, o := range obstacles {
		right = core.Max(right, o.Right())
	}
	return right
}
