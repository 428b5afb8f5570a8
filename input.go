package etchasketch

import (
	"fmt"
	"image"
	"time"

	"github.com/jonboulle/clockwork"
)

// Button is a logical button of the device.
type Button uint8

// Logical buttons.
const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonDraw
	ButtonClear
	ButtonColor
	ButtonThickness
	ButtonUser // Auxiliary button, acts as ButtonDraw

	NumButtons = int(ButtonUser) + 1
)

var buttonNames = [NumButtons]string{
	"Up", "Down", "Left", "Right", "Draw", "Clear", "Color", "Thickness", "User",
}

func (b Button) String() string {
	if int(b) >= NumButtons {
		return fmt.Sprintf("Button(%d)", b)
	}
	return buttonNames[b]
}

// InputSource reports whether a logical button is held down. Implementations
// hide the electrical polarity of each button.
type InputSource interface {
	Pressed(b Button) bool
}

// Input is what one Sample call observed.
type Input struct {
	// Moved is set when movement was accepted this sample and at least one
	// direction button was held. Move is the net direction, one unit per
	// held button, so opposite buttons cancel out.
	Moved bool
	Move  image.Point

	// Set on the sample where the button went from released to pressed.
	ToggleDraw      bool
	Clear           bool
	CycleColor      bool
	ToggleThickness bool
}

// toggles are the edge detected buttons.
var toggles = [...]Button{ButtonDraw, ButtonUser, ButtonClear, ButtonColor, ButtonThickness}

// Sampler polls an InputSource. Movement is rate limited to one accepted
// sample per delay window; function buttons are edge detected.
type Sampler struct {
	src       InputSource
	clock     clockwork.Clock
	moveDelay time.Duration
	lastMove  time.Time
	last      map[Button]bool
}

// NewSampler returns a Sampler with every function button considered
// released.
func NewSampler(src InputSource, clock clockwork.Clock, moveDelay time.Duration) *Sampler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	s := &Sampler{
		src:       src,
		clock:     clock,
		moveDelay: moveDelay,
		last:      make(map[Button]bool, len(toggles)),
	}
	for _, b := range toggles {
		s.last[b] = false
	}
	return s
}

// Sample reads every button once.
//
// Direction buttons are only looked at once more than the move delay has
// elapsed since the last accepted move. A held button is read again on the
// next window; nothing is queued.
func (s *Sampler) Sample() Input {
	var in Input

	now := s.clock.Now()
	if now.Sub(s.lastMove) > s.moveDelay {
		if s.src.Pressed(ButtonUp) {
			in.Move.Y--
			in.Moved = true
		}
		if s.src.Pressed(ButtonDown) {
			in.Move.Y++
			in.Moved = true
		}
		if s.src.Pressed(ButtonLeft) {
			in.Move.X--
			in.Moved = true
		}
		if s.src.Pressed(ButtonRight) {
			in.Move.X++
			in.Moved = true
		}
		if in.Moved {
			s.lastMove = now
		}
	}

	// Draw and User are read separately so each keeps its own history.
	draw := s.rose(ButtonDraw)
	user := s.rose(ButtonUser)
	in.ToggleDraw = draw || user
	in.Clear = s.rose(ButtonClear)
	in.CycleColor = s.rose(ButtonColor)
	in.ToggleThickness = s.rose(ButtonThickness)
	return in
}

// rose records the current level of b and reports a released to pressed
// transition.
func (s *Sampler) rose(b Button) bool {
	cur := s.src.Pressed(b)
	prev := s.last[b]
	s.last[b] = cur
	return cur && !prev
}
