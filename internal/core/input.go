package core

import "strings"

// Button is one logical button of the fantasy-console gamepad.
// Buttons are bit flags so a whole pad fits in a ButtonSet.
type Button uint8

const (
	ButtonConfirm   Button = 1 << iota // Z - start, jump
	ButtonSecondary                    // X - back to title, next stage
	ButtonLeft
	ButtonRight
	ButtonUp
	ButtonDown
)

// allButtons lists buttons in display order.
var allButtons = []Button{ButtonConfirm, ButtonSecondary, ButtonLeft, ButtonRight, ButtonUp, ButtonDown}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonConfirm:
		return "Confirm"
	case ButtonSecondary:
		return "Secondary"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// ButtonSet is a set of buttons.
type ButtonSet uint8

// NewButtonSet builds a set from the given buttons.
func NewButtonSet(buttons ...Button) ButtonSet {
	var s ButtonSet
	for _, b := range buttons {
		s = s.With(b)
	}
	return s
}

// Has reports whether b is in the set.
func (s ButtonSet) Has(b Button) bool {
	return s&ButtonSet(b) != 0
}

// With returns the set with b added.
func (s ButtonSet) With(b Button) ButtonSet {
	return s | ButtonSet(b)
}

// Without returns the set with b removed.
func (s ButtonSet) Without(b Button) ButtonSet {
	return s &^ ButtonSet(b)
}

// String lists the buttons in the set, e.g. "Confirm+Right".
func (s ButtonSet) String() string {
	var names []string
	for _, b := range allButtons {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "+")
}

// InputFrame is the gamepad snapshot for a single simulation tick.
// Held is the set of buttons currently down; Pressed is the subset that
// went down since the previous tick.
type InputFrame struct {
	Held    ButtonSet
	Pressed ButtonSet
}

// NextInputFrame derives a frame from the previous and current held sets.
func NextInputFrame(prevHeld, held ButtonSet) InputFrame {
	return InputFrame{
		Held:    held,
		Pressed: held &^ prevHeld,
	}
}

// IsHeld returns true if the button is down this frame.
func (f InputFrame) IsHeld(b Button) bool {
	return f.Held.Has(b)
}

// JustPressed returns true if the button went down this frame.
func (f InputFrame) JustPressed(b Button) bool {
	return f.Pressed.Has(b)
}
