// Package host defines the capability surface a cartridge consumes from its
// fantasy-console host: a gamepad, a sprite/text display and a monophonic
// speaker. It also provides Canvas, an in-memory Display that terminal and
// pixel hosts rasterize from.
package host

import "github.com/vovakirdan/bear-adventure/internal/core"

// Pad is the host gamepad. Frame returns the snapshot for the current tick.
type Pad interface {
	Frame() core.InputFrame
}

// ViewBox is the world rectangle mapped onto the host screen.
type ViewBox struct {
	X, Y float64
	W, H float64
}

// Entity is a visual placed on a Display.
type Entity interface {
	MoveTo(x, y float64)
	SetVisible(visible bool)
	// Remove releases the entity. Further calls on it are no-ops.
	Remove()
}

// Sprite is a bitmap entity.
type Sprite interface {
	Entity
	SetPattern(p Pattern)
	SetPalette(p Palette)
}

// Label is a text entity.
type Label interface {
	Entity
	SetText(text string)
	SetPalette(p Palette)
}

// Display is the host screen.
type Display interface {
	SetViewBox(v ViewBox)
	AddSprite(p Pattern, pal Palette, x, y float64) Sprite
	AddText(text string, pal Palette, x, y float64) Label
}

// Note is one step of a cue: a pitch offset in semitones and a duration in frames.
type Note struct {
	Pitch    int `yaml:"pitch"`
	Duration int `yaml:"duration"`
}

// Speaker is the host's single audio voice.
type Speaker interface {
	// Play starts a note sequence. The host may assume Stop was called first.
	Play(notes []Note)
	Stop()
}
