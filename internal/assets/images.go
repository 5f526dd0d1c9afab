package assets

import (
	"strings"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Dimensions of the standalone pictures, in world pixels.
const (
	StoneWidth       = 90
	StoneHeight      = 54
	BackgroundWidth  = 800
	BackgroundHeight = 600
)

// painter returns the cell for pixel (x, y) of a w x h frame named label.
type painter func(label string, x, y, w, h int) core.Cell

type framedRegion struct {
	label string
	rect  core.Rect
}

// sheetImage draws every frame of a sheet with a painter.
type sheetImage struct {
	regions []framedRegion
	paint   painter
}

func newSheetImage(sheet *Sheet, paint painter) *sheetImage {
	img := &sheetImage{paint: paint}
	for _, label := range sheet.Labels() {
		img.regions = append(img.regions, framedRegion{
			label: label,
			rect:  sheet.Frames[label].Frame.Rect(),
		})
	}
	return img
}

// At implements core.Image.
func (s *sheetImage) At(x, y int) core.Cell {
	for _, r := range s.regions {
		if r.rect.Contains(x, y) {
			return s.paint(r.label, x-r.rect.X, y-r.rect.Y, r.rect.W, r.rect.H)
		}
	}
	return core.Cell{}
}

// animationIndex splits "Run (3).png" into "Run" and 3.
func animationIndex(label string) (string, int) {
	name, rest, ok := strings.Cut(label, " (")
	if !ok {
		return label, 0
	}
	n := 0
	for _, r := range rest {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return name, n
}

func paintDog(label string, x, y, w, h int) core.Cell {
	name, n := animationIndex(label)
	// Per-mille coordinates keep the silhouette independent of frame size.
	u := x * 1000 / w
	v := y * 1000 / h

	fur := core.Cell{Rune: '█', Color: core.ColorOrange}
	switch name {
	case "Dead":
		switch {
		case u > 780 && v < 350:
			return core.Cell{Rune: 'x', Color: core.ColorBrightRed}
		case v > 300:
			return core.Cell{Rune: '▄', Color: core.ColorGray}
		}
		return core.Cell{}

	case "Slide":
		switch {
		case u > 750 && v < 500:
			return core.Cell{Rune: '◆', Color: core.ColorYellow}
		case v >= 400:
			return core.Cell{Rune: '▄', Color: core.ColorOrange}
		}
		return core.Cell{}
	}

	switch {
	case u > 650 && v < 330:
		if u > 820 && v > 90 && v < 200 {
			return core.Cell{Rune: '•', Color: core.ColorBrightWhite}
		}
		return core.Cell{Rune: '▓', Color: core.ColorOrange}
	case u < 150 && v > 150 && v < 420:
		return core.Cell{Rune: '╱', Color: core.ColorOrange}
	case v >= 330 && v < 720 && u > 100:
		return fur
	case v >= 720:
		return paintLegs(name, n, u)
	}
	return core.Cell{}
}

// paintLegs alternates leg positions between animation frames.
func paintLegs(name string, n, u int) core.Cell {
	if name == "Jump" {
		if u > 200 && u < 400 {
			return core.Cell{Rune: '╲', Color: core.ColorOrange}
		}
		return core.Cell{}
	}
	stride := n%2 == 0 || name == "Idle"
	switch {
	case stride && (u > 150 && u < 300 || u > 700 && u < 850):
		return core.Cell{Rune: '▌', Color: core.ColorOrange}
	case !stride && (u > 300 && u < 450 || u > 550 && u < 700):
		return core.Cell{Rune: '▐', Color: core.ColorOrange}
	}
	return core.Cell{}
}

func paintTile(label string, x, y, w, h int) core.Cell {
	grass := core.Cell{Rune: '▀', Color: core.ColorBrightGreen}
	soil := core.Cell{Rune: '▓', Color: core.ColorYellow}

	// End caps are rounded below the grass line.
	depth := y * 1000 / h
	switch label {
	case "13.png":
		if depth > 580 || x < w*depth/2000 {
			return core.Cell{}
		}
	case "15.png":
		if depth > 580 || w-x < w*depth/2000 {
			return core.Cell{}
		}
	}
	if depth < 150 {
		return grass
	}
	return soil
}

type stoneImage struct {
	w, h int
}

// At implements core.Image with an elliptical rock.
func (s stoneImage) At(x, y int) core.Cell {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return core.Cell{}
	}
	dx := 2*x - s.w
	dy := y - s.h
	// Upper half-ellipse resting on the ground line.
	if dx*dx*s.h*s.h+dy*dy*s.w*s.w > s.w*s.w*s.h*s.h {
		return core.Cell{}
	}
	return core.Cell{Rune: '▓', Color: core.ColorGray}
}

type backgroundImage struct{}

// At implements core.Image with clouds, hills and a ground strip.
func (backgroundImage) At(x, y int) core.Cell {
	switch {
	case y >= BackgroundHeight-12:
		return core.Cell{Rune: '▔', Color: core.ColorGreen}
	case y >= 80 && y < 110 && x%400 >= 60 && x%400 < 200:
		return core.Cell{Rune: '░', Color: core.ColorWhite}
	case y >= 170 && y < 190 && x%400 >= 260 && x%400 < 340:
		return core.Cell{Rune: '░', Color: core.ColorWhite}
	case y >= 520 && hill(x, y):
		return core.Cell{Rune: '░', Color: core.ColorGreen}
	}
	return core.Cell{}
}

// hill reports whether (x, y) lies under a low triangular hill profile.
func hill(x, y int) bool {
	p := x % BackgroundWidth
	peak := BackgroundWidth / 2
	rise := peak - p
	if rise < 0 {
		rise = -rise
	}
	return y >= 520+rise/5
}
