package host

import (
	"math"
	"testing"
)

func TestFrequency(t *testing.T) {
	if f := Frequency(0); f != BaseFrequency {
		t.Errorf("Frequency(0) = %f, expected %f", f, BaseFrequency)
	}
	if f := Frequency(12); math.Abs(f-2*BaseFrequency) > 1e-9 {
		t.Errorf("Frequency(12) = %f, expected one octave up", f)
	}
	if f := Frequency(-12); math.Abs(f-BaseFrequency/2) > 1e-9 {
		t.Errorf("Frequency(-12) = %f, expected one octave down", f)
	}
}

func TestSynthesizeLength(t *testing.T) {
	notes := []Note{{Pitch: 14, Duration: 2}, {Pitch: 18, Duration: 2}}
	buf := Synthesize(notes, 48000, 60)

	// 4 frames at 800 samples per frame, 4 bytes per stereo sample
	if len(buf) != 4*800*4 {
		t.Errorf("len = %d, expected %d", len(buf), 4*800*4)
	}
}

func TestSynthesizeEmpty(t *testing.T) {
	if buf := Synthesize(nil, 48000, 60); len(buf) != 0 {
		t.Errorf("expected empty buffer, got %d bytes", len(buf))
	}
	if buf := Synthesize([]Note{{Duration: 4}}, 0, 60); buf != nil {
		t.Error("expected nil for invalid sample rate")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if r.Last() != nil {
		t.Error("empty recorder should have no last cue")
	}
	r.Stop()
	r.Play([]Note{{Pitch: 5, Duration: 4}})
	r.Stop()
	r.Play([]Note{{Pitch: 0, Duration: 4}})

	if r.Plays() != 2 || r.Stops() != 2 {
		t.Errorf("plays/stops = %d/%d, expected 2/2", r.Plays(), r.Stops())
	}
	if r.Last()[0].Pitch != 0 {
		t.Errorf("Last() = %v", r.Last())
	}
	if len(r.History()) != 2 {
		t.Errorf("History() has %d entries", len(r.History()))
	}
}
