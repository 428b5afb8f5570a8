// Package keypad reads the etch-a-sketch buttons from GPIO pins.
//
// Each button is a momentary switch between a GPIO and a supply rail. The
// pad enables the internal pull resistor that keeps the line idle, so a
// button wired to ground reads Low while pressed and one wired to 3.3V reads
// High.
package keypad

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/etchasketch"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Key describes how one button is wired.
type Key struct {
	Pin gpio.PinIn
	// PullDown is set for a button wired to the supply rail. Otherwise the
	// button is wired to ground and the pin is pulled up.
	PullDown bool
}

// Pad implements etchasketch.InputSource over GPIO pins.
type Pad struct {
	keys [etchasketch.NumButtons]*Key
}

// New configures every pin as an input and returns a Pad reading them.
// Buttons missing from keys are never pressed.
func New(keys map[etchasketch.Button]Key) (*Pad, error) {
	p := &Pad{}
	for b, k := range keys {
		if int(b) >= etchasketch.NumButtons {
			return nil, fmt.Errorf("keypad: unknown button %s", b)
		}
		if k.Pin == nil {
			return nil, fmt.Errorf("keypad: %s has no pin", b)
		}
		pull := gpio.PullUp
		if k.PullDown {
			pull = gpio.PullDown
		}
		if err := k.Pin.In(pull, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("keypad: %s on %s: %w", b, k.Pin, err)
		}
		p.keys[b] = &k
	}
	return p, nil
}

// Pressed implements etchasketch.InputSource.
func (p *Pad) Pressed(b etchasketch.Button) bool {
	if int(b) >= etchasketch.NumButtons {
		return false
	}
	k := p.keys[b]
	if k == nil {
		return false
	}
	return k.Pin.Read() == gpio.Level(k.PullDown)
}

func (p *Pad) String() string {
	n := 0
	for _, k := range p.keys {
		if k != nil {
			n++
		}
	}
	return fmt.Sprintf("keypad.Pad{%d buttons}", n)
}

// Opts names the GPIO of each button, as known to gpioreg. An empty name
// leaves the button unconnected.
type Opts struct {
	Up, Down, Left, Right string
	Draw, Clear           string
	Color, Thickness      string
	User                  string // Wired to 3.3V
}

// DefaultOpts is a Raspberry Pi wiring that keeps the SPI0 pins free.
var DefaultOpts = Opts{
	Up:        "GPIO5",
	Down:      "GPIO6",
	Left:      "GPIO13",
	Right:     "GPIO19",
	Draw:      "GPIO26",
	Clear:     "GPIO16",
	Color:     "GPIO20",
	Thickness: "GPIO21",
	User:      "GPIO12",
}

// Open looks the pins up by name and returns a configured Pad. opts can be
// nil to use DefaultOpts.
func Open(opts *Opts) (*Pad, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	names := map[etchasketch.Button]string{
		etchasketch.ButtonUp:        opts.Up,
		etchasketch.ButtonDown:      opts.Down,
		etchasketch.ButtonLeft:      opts.Left,
		etchasketch.ButtonRight:     opts.Right,
		etchasketch.ButtonDraw:      opts.Draw,
		etchasketch.ButtonClear:     opts.Clear,
		etchasketch.ButtonColor:     opts.Color,
		etchasketch.ButtonThickness: opts.Thickness,
		etchasketch.ButtonUser:      opts.User,
	}
	keys := make(map[etchasketch.Button]Key, len(names))
	for b, name := range names {
		if name == "" {
			continue
		}
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("keypad: GPIO pin %s for %s not found", name, b)
		}
		keys[b] = Key{Pin: pin, PullDown: b == etchasketch.ButtonUser}
	}
	if len(keys) == 0 {
		return nil, errors.New("keypad: no button configured")
	}
	return New(keys)
}

var _ etchasketch.InputSource = (*Pad)(nil)
