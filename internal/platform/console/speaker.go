package console

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/bear-adventure/internal/host"
)

// SampleRate is the audio context rate.
const SampleRate = 48000

// Speaker plays cues on a single ebiten audio player. Starting a cue
// replaces the one still sounding.
type Speaker struct {
	ctx       *audio.Context
	frameRate int
	current   *audio.Player
	muted     bool
}

// NewSpeaker creates a speaker on ctx. Note durations are in frames of
// frameRate per second.
func NewSpeaker(ctx *audio.Context, frameRate int) *Speaker {
	return &Speaker{ctx: ctx, frameRate: frameRate}
}

// SetMuted silences the speaker. Muting stops the current cue.
func (s *Speaker) SetMuted(muted bool) {
	s.muted = muted
	if muted {
		s.Stop()
	}
}

// Play implements host.Speaker.
func (s *Speaker) Play(notes []host.Note) {
	s.Stop()
	if s.muted || len(notes) == 0 {
		return
	}
	pcm := host.Synthesize(notes, SampleRate, s.frameRate)
	if len(pcm) == 0 {
		return
	}
	s.current = s.ctx.NewPlayerFromBytes(pcm)
	s.current.Play()
}

// Stop implements host.Speaker.
func (s *Speaker) Stop() {
	if s.current == nil {
		return
	}
	s.current.Pause()
	_ = s.current.Close()
	s.current = nil
}
