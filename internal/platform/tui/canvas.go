package tui

import (
	"math"

	"github.com/allanrg4/runner/internal/core"
	"github.com/allanrg4/runner/internal/games/dino"
)

// Glyph art sampled onto the cells a sprite covers. '#' cells are filled,
// 'o' marks the actor's eye and spaces are transparent.
var (
	actorArt = []string{
		"     ####",
		"     #o###",
		"     #####",
		"#    ###  ",
		"##  ######",
		" ######   ",
		"  #####   ",
		"  #   #   ",
	}
	// Leg rows keyed by the running frame's sheet offset.
	actorLegs = map[int]string{
		88:  "  #    #  ",
		132: "   #  #   ",
	}
	cactusArt = []string{
		"  #  ",
		"# # #",
		"#####",
		"  #  ",
		"  #  ",
	}
	cloudArt = []string{
		"  ###  ",
		"#######",
	}
)

// Sheet offsets of the actor frames that change the eye.
const (
	actorBlinkFrame   = 44
	actorCrashedFrame = 220
)

// Canvas implements dino.Renderer on a character grid. World coordinates
// are scaled to fit the top rows of the screen.
type Canvas struct {
	screen *core.Screen
	worldW int
	worldH int
	rows   int // Rows available to the world
}

// NewCanvas creates a canvas drawing a worldW x worldH world onto the
// first rows of screen.
func NewCanvas(screen *core.Screen, worldW, worldH, rows int) *Canvas {
	return &Canvas{screen: screen, worldW: worldW, worldH: worldH, rows: rows}
}

// SetRows changes the number of rows used for the world after a resize.
func (c *Canvas) SetRows(rows int) {
	c.rows = rows
}

// Begin clears the screen for a new frame.
func (c *Canvas) Begin() {
	c.screen.Clear()
}

func (c *Canvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / float64(c.worldW), float64(c.rows) / float64(c.worldH)
}

// cellRect maps a world rectangle to the cells it covers. Every visible
// sprite covers at least one cell.
func (c *Canvas) cellRect(x, y, w, h int) core.CollisionBox {
	sx, sy := c.scale()
	x0 := int(math.Floor(float64(x) * sx))
	y0 := int(math.Floor(float64(y) * sy))
	x1 := int(math.Ceil(float64(x+w) * sx))
	y1 := int(math.Ceil(float64(y+h) * sy))
	return core.NewCollisionBox(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws one sprite frame.
func (c *Canvas) Render(f dino.Frame, x, y int) {
	switch f.Sprite {
	case dino.SpriteActor:
		c.drawActor(f, x, y)
	case dino.SpriteObstacle:
		c.drawArt(cactusArt, core.Max(1, f.Scale), c.cellRect(x, y, f.Width, f.Height), core.ColorGreen, nil)
	case dino.SpriteCloud:
		c.drawArt(cloudArt, 1, c.cellRect(x, y, f.Width, f.Height), core.ColorGray, nil)
	case dino.SpriteHorizon:
		c.drawGround(f, x, y)
	case dino.SpriteDigit:
		c.drawDigit(f, x, y)
	case dino.SpriteGameOver:
		c.drawGameOver(f, x, y)
	}
}

func (c *Canvas) drawActor(f dino.Frame, x, y int) {
	art := actorArt
	if legs, ok := actorLegs[f.SourceX]; ok {
		art = append(append([]string(nil), actorArt[:len(actorArt)-1]...), legs)
	}

	eye := 'o'
	color := core.ColorBrightWhite
	switch f.SourceX {
	case actorBlinkFrame:
		eye = '-'
	case actorCrashedFrame:
		eye = 'x'
		color = core.ColorRed
	}
	c.drawArt(art, 1, c.cellRect(x, y, f.Width, f.Height), color, func(r rune) rune {
		if r == 'o' {
			return eye
		}
		return '█'
	})
}

// drawArt samples art (tiled repeat times horizontally) into rect.
// A nil glyph function fills every set cell with a full block.
func (c *Canvas) drawArt(art []string, repeat int, rect core.CollisionBox, color core.Color, glyph func(rune) rune) {
	if len(art) == 0 {
		return
	}
	artW := 0
	for _, row := range art {
		artW = core.Max(artW, len(row))
	}
	totalW := artW * repeat

	for cy := range rect.H {
		py := rect.Y + cy
		if py < 0 || py >= c.rows {
			continue
		}
		row := art[cy*len(art)/rect.H]
		for cx := range rect.W {
			bx := (cx * totalW / rect.W) % artW
			if bx >= len(row) || row[bx] == ' ' {
				continue
			}
			r := '█'
			if glyph != nil {
				r = glyph(rune(row[bx]))
			}
			c.screen.SetColored(rect.X+cx, py, r, color)
		}
	}
}

func (c *Canvas) drawGround(f dino.Frame, x, y int) {
	rect := c.cellRect(x, y, f.Width, f.Height)
	if rect.Y >= c.rows {
		return
	}
	bumpy := f.SourceX != 0
	for cx := range rect.W {
		r := '─'
		if bumpy && (rect.X+cx)%7 == 3 {
			r = '^'
		}
		c.screen.SetColored(rect.X+cx, rect.Y, r, core.ColorWhite)
	}
}

func (c *Canvas) drawDigit(f dino.Frame, x, y int) {
	rect := c.cellRect(x, y, 1, 1)
	if f.Width <= 0 {
		return
	}
	var r rune
	switch v := f.SourceX / f.Width; {
	case v < 10:
		r = rune('0' + v)
	case v == 10:
		r = 'H'
	default:
		r = 'I'
	}
	c.screen.SetColored(rect.X, rect.Y, r, core.ColorYellow)
}

func (c *Canvas) drawGameOver(f dino.Frame, x, y int) {
	rect := c.cellRect(x, y, f.Width, f.Height)
	text := "G A M E   O V E R"
	if f.Variant == "restart" {
		text = "[ press space ]"
	}
	// Center the text on the sprite's cells
	tx := rect.X + (rect.W-len(text))/2
	c.screen.DrawTextColored(core.Max(0, tx), core.Min(rect.Y, c.rows-1), text, core.ColorRed)
}
