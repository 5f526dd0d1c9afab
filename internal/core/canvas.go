package core

// Image is a source of cells addressed in source-pixel coordinates.
// At returns the zero Cell for transparent pixels.
type Image interface {
	At(x, y int) Cell
}

// Canvas maps a fixed-size pixel world onto a Screen. A screen cell shows
// whatever covers the world pixel at the cell's center.
type Canvas struct {
	screen *Screen
	worldW int
	worldH int
}

// NewCanvas creates a canvas that scales a worldW x worldH pixel space to dst.
func NewCanvas(dst *Screen, worldW, worldH int) *Canvas {
	return &Canvas{screen: dst, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying screen buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// cellCenter returns the world pixel sampled by screen cell (cx, cy).
func (c *Canvas) cellCenter(cx, cy int) (int, int) {
	px := (2*cx + 1) * c.worldW / (2 * c.screen.Width())
	py := (2*cy + 1) * c.worldH / (2 * c.screen.Height())
	return px, py
}

// cellSpan returns the screen cells whose centers may fall inside r.
func (c *Canvas) cellSpan(r Rect) (x0, y0, x1, y1 int) {
	w, h := c.screen.Width(), c.screen.Height()
	x0 = Clamp(r.X*w/c.worldW-1, 0, w)
	y0 = Clamp(r.Y*h/c.worldH-1, 0, h)
	x1 = Clamp(r.Right()*w/c.worldW+1, 0, w)
	y1 = Clamp(r.Bottom()*h/c.worldH+1, 0, h)
	return x0, y0, x1, y1
}

// Clear blanks every cell whose center lies in the world rectangle r.
func (c *Canvas) Clear(r Rect) {
	if c.worldW <= 0 || c.worldH <= 0 {
		return
	}
	x0, y0, x1, y1 := c.cellSpan(r)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px, py := c.cellCenter(cx, cy)
			if r.Contains(px, py) {
				c.screen.SetCell(cx, cy, Cell{Rune: ' '})
			}
		}
	}
}

// DrawImage copies the frame region of img, stretched to dst, onto the screen.
func (c *Canvas) DrawImage(img Image, frame, dst Rect) {
	if c.worldW <= 0 || c.worldH <= 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}
	x0, y0, x1, y1 := c.cellSpan(dst)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px, py := c.cellCenter(cx, cy)
			if !dst.Contains(px, py) {
				continue
			}
			sx := frame.X + (px-dst.X)*frame.W/dst.W
			sy := frame.Y + (py-dst.Y)*frame.H/dst.H
			cell := img.At(sx, sy)
			if cell.Rune == 0 {
				continue
			}
			c.screen.SetCell(cx, cy, cell)
		}
	}
}
