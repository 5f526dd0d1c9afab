package tui

import "time"

// FrameCounter measures rendered frames per second over one-second windows.
// It belongs to a single frame pump and is not safe for concurrent use.
type FrameCounter struct {
	now         func() time.Time
	windowStart time.Time
	frames      int
	fps         float64
	total       int
}

// NewFrameCounter creates a counter driven by the wall clock.
func NewFrameCounter() *FrameCounter {
	return newFrameCounter(time.Now)
}

func newFrameCounter(now func() time.Time) *FrameCounter {
	return &FrameCounter{now: now, windowStart: now()}
}

// Frame records one rendered frame.
func (c *FrameCounter) Frame() {
	c.frames++
	c.total++

	elapsed := c.now().Sub(c.windowStart)
	if elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.windowStart = c.now()
	}
}

// FPS returns the rate measured over the last complete window.
func (c *FrameCounter) FPS() float64 {
	return c.fps
}

// Total returns the number of frames recorded.
func (c *FrameCounter) Total() int {
	return c.total
}
