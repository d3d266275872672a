package host

// Recorder is a Speaker that keeps the cues it is asked to play instead of
// making sound. Terminal hosts use it, and tests inspect it.
type Recorder struct {
	history [][]Note
	stops   int
	playing bool
}

// Play implements Speaker.
func (r *Recorder) Play(notes []Note) {
	r.history = append(r.history, notes)
	r.playing = true
}

// Stop implements Speaker.
func (r *Recorder) Stop() {
	r.stops++
	r.playing = false
}

// Plays returns how many cues were started.
func (r *Recorder) Plays() int {
	return len(r.history)
}

// Stops returns how many times the voice was stopped.
func (r *Recorder) Stops() int {
	return r.stops
}

// Last returns the most recent cue, or nil.
func (r *Recorder) Last() []Note {
	if len(r.history) == 0 {
		return nil
	}
	return r.history[len(r.history)-1]
}

// History returns every cue in play order.
func (r *Recorder) History() [][]Note {
	return r.history
}
