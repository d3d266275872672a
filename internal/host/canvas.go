package host

import (
	"math"
	"slices"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

type entityKind uint8

const (
	kindSprite entityKind = iota
	kindLabel
)

// entity backs both Sprite and Label handles of a Canvas.
type entity struct {
	canvas  *Canvas
	kind    entityKind
	x, y    float64
	visible bool
	pattern Pattern
	palette Palette
	text    string
	removed bool
}

func (e *entity) MoveTo(x, y float64) {
	e.x, e.y = x, y
}

func (e *entity) SetVisible(visible bool) {
	e.visible = visible
}

func (e *entity) SetPattern(p Pattern) {
	e.pattern = p
}

func (e *entity) SetPalette(p Palette) {
	e.palette = p
}

func (e *entity) SetText(text string) {
	e.text = text
}

func (e *entity) Remove() {
	if e.removed {
		return
	}
	e.removed = true
	e.canvas.remove(e)
}

// Canvas is a retained-mode Display. Entities are drawn in creation order,
// so later entities cover earlier ones. Hosts read it back through Pixels
// or RasterizeCells once per frame.
type Canvas struct {
	view       ViewBox
	background core.Color
	font       *Font
	entities   []*entity
	scratch    []core.Color
}

// NewCanvas creates an empty canvas showing the given view.
func NewCanvas(view ViewBox) *Canvas {
	font, err := DefaultFont()
	if err != nil {
		// Labels still reach terminal hosts as runes
		font = &Font{Advance: 6}
	}
	return &Canvas{
		view:       view,
		background: core.ColorBlack,
		font:       font,
	}
}

// SetViewBox implements Display.
func (c *Canvas) SetViewBox(v ViewBox) {
	c.view = v
}

// ViewBox returns the current view.
func (c *Canvas) ViewBox() ViewBox {
	return c.view
}

// SetBackground sets the colour of pixels no entity covers.
func (c *Canvas) SetBackground(col core.Color) {
	c.background = col
}

// AddSprite implements Display.
func (c *Canvas) AddSprite(p Pattern, pal Palette, x, y float64) Sprite {
	e := &entity{canvas: c, kind: kindSprite, x: x, y: y, visible: true, pattern: p, palette: pal}
	c.entities = append(c.entities, e)
	return e
}

// AddText implements Display.
func (c *Canvas) AddText(text string, pal Palette, x, y float64) Label {
	e := &entity{canvas: c, kind: kindLabel, x: x, y: y, visible: true, text: text, palette: pal}
	c.entities = append(c.entities, e)
	return e
}

func (c *Canvas) remove(e *entity) {
	if i := slices.Index(c.entities, e); i >= 0 {
		c.entities = slices.Delete(c.entities, i, i+1)
	}
}

// Live returns the number of entities that have not been removed.
func (c *Canvas) Live() int {
	return len(c.entities)
}

// Texts returns the text of every visible label in drawing order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, e := range c.entities {
		if e.kind == kindLabel && e.visible {
			out = append(out, e.text)
		}
	}
	return out
}

// Size returns the view size in whole pixels.
func (c *Canvas) Size() (w, h int) {
	return int(c.view.W), int(c.view.H)
}

// Pixels renders sprites and labels into dst, row-major, sized by Size.
func (c *Canvas) Pixels(dst []core.Color) {
	w, h := c.Size()
	c.draw(dst, w, h, true)
}

// RasterizeCells renders the view into a terminal screen. Every cell shows
// two vertically stacked pixels as a half block; labels are written as runes.
func (c *Canvas) RasterizeCells(dst *core.Screen) {
	w, h := c.Size()
	dw, dh := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 || dw <= 0 || dh <= 0 {
		return
	}
	if len(c.scratch) != w*h {
		c.scratch = make([]core.Color, w*h)
	}
	c.draw(c.scratch, w, h, false)

	for cy := 0; cy < dh; cy++ {
		top := core.Clamp(2*cy*h/(2*dh), 0, h-1)
		bottom := core.Clamp((2*cy+1)*h/(2*dh), 0, h-1)
		for cx := 0; cx < dw; cx++ {
			px := core.Clamp(cx*w/dw, 0, w-1)
			dst.SetCell(cx, cy, core.Cell{
				Rune: '▀',
				Fg:   c.scratch[top*w+px],
				Bg:   c.scratch[bottom*w+px],
			})
		}
	}

	for _, e := range c.entities {
		if e.kind != kindLabel || !e.visible {
			continue
		}
		// Anchor on the glyph's vertical middle
		cx := int((e.x - c.view.X) * float64(dw) / float64(w))
		cy := int((e.y + 3 - c.view.Y) * float64(dh) / float64(h))
		fg := e.palette.Color(1)
		for i, r := range []rune(e.text) {
			under := dst.GetCell(cx+i, cy)
			dst.SetCell(cx+i, cy, core.Cell{Rune: r, Fg: fg, Bg: under.Bg})
		}
	}
}

func (c *Canvas) draw(dst []core.Color, w, h int, withText bool) {
	for i := range dst {
		dst[i] = c.background
	}
	for _, e := range c.entities {
		if !e.visible {
			continue
		}
		ox := int(math.Floor(e.x - c.view.X))
		oy := int(math.Floor(e.y - c.view.Y))
		switch e.kind {
		case kindSprite:
			blit(dst, w, h, e.pattern, e.palette, ox, oy)
		case kindLabel:
			if !withText {
				continue
			}
			for i, r := range []rune(e.text) {
				if g, ok := c.font.Glyph(r); ok {
					blit(dst, w, h, g, e.palette, ox+i*c.font.Advance, oy)
				}
			}
		}
	}
}

func blit(dst []core.Color, w, h int, p Pattern, pal Palette, ox, oy int) {
	for py, row := range p {
		y := oy + py
		if y < 0 || y >= h {
			continue
		}
		for px, slot := range row {
			x := ox + px
			if x < 0 || x >= w {
				continue
			}
			col := pal.Color(slot)
			if col == core.ColorTransparent {
				continue
			}
			dst[y*w+x] = col
		}
	}
}
