package host

import (
	"encoding/binary"
	"math"
)

// BaseFrequency is the pitch of note offset 0 (C5).
const BaseFrequency = 523.25

// Frequency returns the frequency in Hz of a pitch offset in semitones.
func Frequency(pitch int) float64 {
	return BaseFrequency * math.Pow(2, float64(pitch)/12)
}

// Synthesize renders a cue as a square wave in 16-bit signed little-endian
// stereo PCM. Note durations are in frames of frameRate per second.
func Synthesize(notes []Note, sampleRate, frameRate int) []byte {
	if sampleRate <= 0 || frameRate <= 0 {
		return nil
	}
	const amplitude = math.MaxInt16 / 8

	total := 0
	for _, n := range notes {
		total += max(n.Duration, 0) * sampleRate / frameRate
	}
	buf := make([]byte, 0, total*4)

	var sample [4]byte
	for _, n := range notes {
		samples := max(n.Duration, 0) * sampleRate / frameRate
		period := float64(sampleRate) / Frequency(n.Pitch)
		for i := 0; i < samples; i++ {
			v := int16(amplitude)
			if math.Mod(float64(i), period) >= period/2 {
				v = -v
			}
			binary.LittleEndian.PutUint16(sample[0:], uint16(v))
			binary.LittleEndian.PutUint16(sample[2:], uint16(v))
			buf = append(buf, sample[:]...)
		}
	}
	return buf
}
