package core

import "testing"

func TestRuntimeConfigWithDefaults(t *testing.T) {
	got := RuntimeConfig{ScreenW: 80, ScreenH: 24}.WithDefaults()
	if got.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", got.TickRate, DefaultTickRate)
	}
	if got.Seed == 0 {
		t.Error("Seed should be filled")
	}
	if got.ScreenW != 80 || got.ScreenH != 24 {
		t.Errorf("screen size changed: %dx%d", got.ScreenW, got.ScreenH)
	}

	fixed := RuntimeConfig{TickRate: 30, Seed: 7}.WithDefaults()
	if fixed.TickRate != 30 || fixed.Seed != 7 {
		t.Errorf("WithDefaults overwrote set fields: %+v", fixed)
	}
}
