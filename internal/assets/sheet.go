// Package assets provides the sprite metadata and terminal-cell artwork used
// by the runner. Sheets are YAML documents embedded in the binary; the images
// are procedural, so every frame rectangle in a sheet has something to show.
package assets

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

//go:embed data/dog.yaml
var dogSheetYAML []byte

//go:embed data/tiles.yaml
var tilesSheetYAML []byte

// SheetRect is a rectangle inside a sprite sheet.
type SheetRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Rect converts the sheet rectangle to a core.Rect.
func (r SheetRect) Rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

// Cell describes one frame: where it sits in the sheet and how far it is
// offset from the owner's position when drawn.
type Cell struct {
	Frame            SheetRect `yaml:"frame"`
	SpriteSourceSize SheetRect `yaml:"spriteSourceSize"`
}

// Sheet maps frame labels such as "Run (3).png" to cells.
type Sheet struct {
	Frames map[string]Cell `yaml:"frames"`
}

// ParseSheet decodes a YAML sprite sheet.
func ParseSheet(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sheet: %w", err)
	}
	if len(sheet.Frames) == 0 {
		return nil, fmt.Errorf("assets: sheet has no frames")
	}
	return &sheet, nil
}

// Cell looks up a frame by label.
func (s *Sheet) Cell(name string) (Cell, bool) {
	c, ok := s.Frames[name]
	return c, ok
}

// Labels returns all frame labels in sorted order.
func (s *Sheet) Labels() []string {
	labels := make([]string, 0, len(s.Frames))
	for name := range s.Frames {
		labels = append(labels, name)
	}
	sort.Strings(labels)
	return labels
}

// SpriteSheet pairs frame metadata with the image the frames are cut from.
type SpriteSheet struct {
	Sheet *Sheet
	Image core.Image
}

// Picture is a standalone image drawn whole.
type Picture struct {
	Image  core.Image
	Width  int
	Height int
}

// Pack holds everything the runner draws. It is loaded once and reused
// across restarts.
type Pack struct {
	Dog        SpriteSheet
	Tiles      SpriteSheet
	Stone      Picture
	Background Picture
}

// Load decodes the embedded sheets and builds the images.
func Load() (*Pack, error) {
	dog, err := ParseSheet(dogSheetYAML)
	if err != nil {
		return nil, fmt.Errorf("assets: dog: %w", err)
	}
	tiles, err := ParseSheet(tilesSheetYAML)
	if err != nil {
		return nil, fmt.Errorf("assets: tiles: %w", err)
	}

	return &Pack{
		Dog:        SpriteSheet{Sheet: dog, Image: newSheetImage(dog, paintDog)},
		Tiles:      SpriteSheet{Sheet: tiles, Image: newSheetImage(tiles, paintTile)},
		Stone:      Picture{Image: stoneImage{w: StoneWidth, h: StoneHeight}, Width: StoneWidth, Height: StoneHeight},
		Background: Picture{Image: backgroundImage{}, Width: BackgroundWidth, Height: BackgroundHeight},
	}, nil
}
