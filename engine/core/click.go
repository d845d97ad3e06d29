package core

// ClickEvent is a single dispatched click, in window coordinates.
type ClickEvent struct {
	X, Y  float64
	State ButtonState
}

// ClickDebouncer turns per-frame button samples into one click per
// press-release cycle. The zero value is armed.
type ClickDebouncer struct {
	held bool // disarmed until a release is observed
}

// Sample feeds one frame's button state. It returns an event only for a
// press seen while armed. Re-arming needs an observed release; an unsampled
// frame changes nothing.
func (d *ClickDebouncer) Sample(state ButtonState, x, y float64) (ClickEvent, bool) {
	switch state {
	case ButtonPressed:
		if d.held {
			return ClickEvent{}, false
		}
		d.held = true
		return ClickEvent{X: x, Y: y, State: state}, true
	case ButtonReleased:
		d.held = false
	}
	return ClickEvent{}, false
}

// Armed reports whether the next press will produce an event.
func (d *ClickDebouncer) Armed() bool { return !d.held }
