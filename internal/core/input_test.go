package core

import "testing"

func TestNextInputFrameEdges(t *testing.T) {
	tests := []struct {
		name        string
		prev, held  ButtonSet
		wantPressed ButtonSet
	}{
		{"nothing held", 0, 0, 0},
		{"fresh press", 0, NewButtonSet(ButtonConfirm), NewButtonSet(ButtonConfirm)},
		{"still held", NewButtonSet(ButtonConfirm), NewButtonSet(ButtonConfirm), 0},
		{"released", NewButtonSet(ButtonConfirm), 0, 0},
		{
			"one new among held",
			NewButtonSet(ButtonRight),
			NewButtonSet(ButtonRight, ButtonConfirm),
			NewButtonSet(ButtonConfirm),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NextInputFrame(tc.prev, tc.held)
			if f.Held != tc.held {
				t.Errorf("Held = %v, expected %v", f.Held, tc.held)
			}
			if f.Pressed != tc.wantPressed {
				t.Errorf("Pressed = %v, expected %v", f.Pressed, tc.wantPressed)
			}
		})
	}
}

func TestInputFrameQueries(t *testing.T) {
	f := NextInputFrame(NewButtonSet(ButtonLeft), NewButtonSet(ButtonLeft, ButtonSecondary))

	if !f.IsHeld(ButtonLeft) || !f.IsHeld(ButtonSecondary) {
		t.Error("Left and Secondary should be held")
	}
	if f.JustPressed(ButtonLeft) {
		t.Error("Left was already held and should not be just pressed")
	}
	if !f.JustPressed(ButtonSecondary) {
		t.Error("Secondary should be just pressed")
	}
	if f.IsHeld(ButtonConfirm) {
		t.Error("Confirm should not be held")
	}
}

func TestButtonSetString(t *testing.T) {
	if s := ButtonSet(0).String(); s != "None" {
		t.Errorf("String() = %q, expected None", s)
	}
	s := NewButtonSet(ButtonRight, ButtonConfirm).Without(ButtonRight)
	if s.String() != "Confirm" {
		t.Errorf("String() = %q, expected Confirm", s.String())
	}
}
