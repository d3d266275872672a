package console

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

func TestHeldButtons(t *testing.T) {
	tests := []struct {
		name string
		down []ebiten.Key
		want core.ButtonSet
	}{
		{"none", nil, 0},
		{"arrow right", []ebiten.Key{ebiten.KeyArrowRight}, core.NewButtonSet(core.ButtonRight)},
		{"wasd left", []ebiten.Key{ebiten.KeyA}, core.NewButtonSet(core.ButtonLeft)},
		{"jump while walking", []ebiten.Key{ebiten.KeyZ, ebiten.KeyD}, core.NewButtonSet(core.ButtonConfirm, core.ButtonRight)},
		{"space and z", []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}, core.NewButtonSet(core.ButtonConfirm)},
		{"secondary", []ebiten.Key{ebiten.KeyX}, core.NewButtonSet(core.ButtonSecondary)},
		{"unbound", []ebiten.Key{ebiten.KeyF1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tt.down {
				down[k] = true
			}
			got := heldButtons(func(k ebiten.Key) bool { return down[k] })
			if got != tt.want {
				t.Errorf("heldButtons = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestToRGBA(t *testing.T) {
	src := []core.Color{core.ColorWhite, core.ColorTransparent, core.ColorRed}
	dst := make([]byte, len(src)*4)
	toRGBA(dst, src)

	want := []byte{
		0xf8, 0xf8, 0xf8, 0xff,
		0x00, 0x00, 0x00, 0xff,
		0xd8, 0x30, 0x28, 0xff,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %x, expected %x", dst, want)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	s, err := OpenSettings("bear_adventure_test")
	if err != nil {
		t.Fatalf("OpenSettings: %v", err)
	}
	if s.Get() != DefaultSettings() {
		t.Errorf("fresh settings = %+v, expected defaults", s.Get())
	}

	s.Set(Settings{Scale: 2, Muted: true})
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := OpenSettings("bear_adventure_test")
	if err != nil {
		t.Fatalf("OpenSettings: %v", err)
	}
	if got := again.Get(); got.Scale != 2 || !got.Muted {
		t.Errorf("reloaded settings = %+v", got)
	}
}

func TestSettingsWithoutManager(t *testing.T) {
	s := NewSettingsStore(nil)
	s.Set(Settings{Scale: 0, Muted: true})
	if err := s.Save(); err != nil {
		t.Errorf("Save without manager: %v", err)
	}
	if got := s.Get(); got.Scale != 1 || !got.Muted {
		t.Errorf("Get() = %+v", got)
	}
	if err := s.Load(); err != nil {
		t.Errorf("Load without manager: %v", err)
	}
	if s.Get() != DefaultSettings() {
		t.Errorf("Load should restore defaults, got %+v", s.Get())
	}
}
