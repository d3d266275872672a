package bear

// State selects which branch of the frame logic runs.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
	StateClear
	StateAllClear
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateClear:
		return "clear"
	case StateAllClear:
		return "allclear"
	default:
		return "unknown"
	}
}

// Cue is a sound effect request. A tick carries at most one; a later cue in
// the same tick replaces an earlier one.
type Cue int

const (
	CueNone Cue = iota
	CueJump
	CueStomp
	CueTransform
	CueDefeat
	CueDamage
	CueGameOver
	CueClear
)

// String returns the cue's asset name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueStomp:
		return "stomp"
	case CueTransform:
		return "transform"
	case CueDefeat:
		return "defeat"
	case CueDamage:
		return "damage"
	case CueGameOver:
		return "gameover"
	case CueClear:
		return "clear"
	default:
		return ""
	}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	State State
	// Entered is set when State was entered during this tick. Entering
	// StatePlaying means the stage was rebuilt.
	Entered bool
	Cue     Cue
	// HPChanged is set when the player took damage.
	HPChanged bool
}
