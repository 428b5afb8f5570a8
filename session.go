package etchasketch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/flavioheleno/etchasketch/raster"
	"github.com/flavioheleno/etchasketch/rgb565"
	"github.com/jonboulle/clockwork"
)

// Config is the configuration of a Session. Zero fields take the value from
// DefaultConfig.
type Config struct {
	// Cursor limits, both inclusive. They must lie inside the display
	// border.
	CursorMin image.Point
	CursorMax image.Point

	Start image.Point // Initial cursor position
	Step  int         // Pixels moved per accepted direction button

	MoveDelay      time.Duration // Minimum time between accepted moves
	PollDelay      time.Duration // Pause between loop iterations
	SplashDuration time.Duration // Startup screen time, negative to skip it

	Background   rgb565.Color
	Border       rgb565.Color
	SplashBorder rgb565.Color
	SplashText   rgb565.Color

	Clock  clockwork.Clock // Real clock when nil
	Logger *slog.Logger    // Discarded when nil
}

// DefaultConfig suits a 160x128 landscape panel.
var DefaultConfig = Config{
	CursorMin:      image.Pt(2, 2),
	CursorMax:      image.Pt(158, 126),
	Start:          image.Pt(80, 64),
	Step:           2,
	MoveDelay:      50 * time.Millisecond,
	PollDelay:      10 * time.Millisecond,
	SplashDuration: 2 * time.Second,
	Background:     rgb565.Black,
	Border:         rgb565.Blue,
	SplashBorder:   rgb565.Cyan,
	SplashText:     rgb565.Green,
}

// withDefaults returns a copy of c with zero fields filled in. Black is the
// zero color, so a zero Background stays black.
func (c Config) withDefaults() Config {
	d := DefaultConfig
	if c.CursorMin == (image.Point{}) && c.CursorMax == (image.Point{}) {
		c.CursorMin, c.CursorMax = d.CursorMin, d.CursorMax
	}
	if c.Start == (image.Point{}) {
		c.Start = d.Start
	}
	if c.Step == 0 {
		c.Step = d.Step
	}
	if c.MoveDelay == 0 {
		c.MoveDelay = d.MoveDelay
	}
	if c.PollDelay == 0 {
		c.PollDelay = d.PollDelay
	}
	if c.SplashDuration == 0 {
		c.SplashDuration = d.SplashDuration
	}
	if c.Border == 0 {
		c.Border = d.Border
	}
	if c.SplashBorder == 0 {
		c.SplashBorder = d.SplashBorder
	}
	if c.SplashText == 0 {
		c.SplashText = d.SplashText
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Session owns the drawing state and runs the input loop.
//
// A Session is not safe for concurrent use; Run is expected to be the only
// caller once started.
type Session struct {
	cfg       Config
	display   Display
	indicator Indicator
	input     *Sampler
	log       *slog.Logger

	fb      *FrameBuffer
	overlay Overlay

	pos, prev image.Point
	drawing   bool
	color     int
	thick     bool
}

// New creates a Session drawing on d and reading buttons from in. ind may be
// nil. cfg can be nil to use DefaultConfig.
//
// The session starts in drawing mode with the first palette color and a thin
// pen. Nothing is sent to the display until Start.
func New(d Display, in InputSource, ind Indicator, cfg *Config) (*Session, error) {
	if d == nil || in == nil {
		return nil, errors.New("etchasketch: display and input are required")
	}
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c = c.withDefaults()

	bounds := d.Bounds()
	if bounds.Dx() < 3 || bounds.Dy() < 3 {
		return nil, fmt.Errorf("etchasketch: display %v is too small", bounds)
	}
	interior := bounds.Inset(1)
	area := image.Rectangle{Min: c.CursorMin, Max: c.CursorMax.Add(image.Pt(1, 1))}
	if area.Empty() || !area.In(interior) {
		return nil, fmt.Errorf("etchasketch: cursor area %v-%v must lie inside %v", c.CursorMin, c.CursorMax, interior)
	}
	if !c.Start.In(area) {
		return nil, fmt.Errorf("etchasketch: start %v outside the cursor area", c.Start)
	}
	if c.Step < 0 {
		return nil, errors.New("etchasketch: step must be positive")
	}

	return &Session{
		cfg:       c,
		display:   d,
		indicator: ind,
		input:     NewSampler(in, c.Clock, c.MoveDelay),
		log:       c.Logger,
		fb:        NewFrameBuffer(bounds, c.Border, c.Background),
		pos:       c.Start,
		prev:      c.Start,
		drawing:   true,
	}, nil
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() image.Point { return s.pos }

// Drawing reports whether the session is in drawing mode.
func (s *Session) Drawing() bool { return s.drawing }

// ColorIndex returns the index of the pen color in Palette.
func (s *Session) ColorIndex() int { return s.color }

// Thick reports whether the 2x2 pen is selected.
func (s *Session) Thick() bool { return s.thick }

// FrameBuffer returns the drawing. It must not be modified.
func (s *Session) FrameBuffer() *FrameBuffer { return s.fb }

// Overlay returns the cursor marker.
func (s *Session) Overlay() *Overlay { return &s.overlay }

// Start shows the instructions screen, then the empty drawing, and sets
// the indicator. It returns early with the context error if ctx is done
// while the instructions are shown.
func (s *Session) Start(ctx context.Context) error {
	if s.cfg.SplashDuration > 0 {
		if err := drawSplash(s.display, Instructions, s.cfg.Background, s.cfg.SplashBorder, s.cfg.SplashText); err != nil {
			return fmt.Errorf("etchasketch: splash: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.cfg.Clock.After(s.cfg.SplashDuration):
		}
	}

	if err := s.clear(); err != nil {
		return err
	}
	if err := s.showMode(); err != nil {
		return err
	}
	s.log.Info("ready to draw", "cursor", s.pos, "drawing", s.drawing)
	return nil
}

// Run calls Step then pauses for the poll delay, until ctx is done or a
// step fails.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.Step(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.cfg.Clock.After(s.cfg.PollDelay):
		}
	}
}

// Step samples the buttons once and applies what was pressed: movement
// first, then draw toggle, clear, color and thickness.
func (s *Session) Step() error {
	in := s.input.Sample()
	if in.Moved {
		if err := s.move(in.Move); err != nil {
			return fmt.Errorf("etchasketch: move: %w", err)
		}
	}
	if in.ToggleDraw {
		if err := s.toggleDrawing(); err != nil {
			return fmt.Errorf("etchasketch: toggle drawing: %w", err)
		}
	}
	if in.Clear {
		if err := s.clear(); err != nil {
			return err
		}
		s.log.Info("screen cleared")
	}
	if in.CycleColor {
		s.color = (s.color + 1) % len(Palette)
		s.log.Info("color", "name", PaletteNames[s.color])
	}
	if in.ToggleThickness {
		if err := s.toggleThickness(); err != nil {
			return fmt.Errorf("etchasketch: toggle thickness: %w", err)
		}
	}
	return nil
}

// move advances the cursor by dir steps, clamps it and renders the result.
func (s *Session) move(dir image.Point) error {
	next := s.pos.Add(dir.Mul(s.cfg.Step))
	next.X = min(max(next.X, s.cfg.CursorMin.X), s.cfg.CursorMax.X)
	next.Y = min(max(next.Y, s.cfg.CursorMin.Y), s.cfg.CursorMax.Y)
	s.pos = next

	if s.drawing {
		if err := s.stroke(s.prev, s.pos); err != nil {
			return err
		}
	} else if err := s.overlay.Draw(s.display, s.fb, s.pos, s.penColor(), s.thick); err != nil {
		return err
	}
	s.prev = s.pos
	return nil
}

// stroke draws the segment into the frame buffer and onto the display, once
// per pen offset.
func (s *Session) stroke(from, to image.Point) error {
	c := s.penColor()
	for _, off := range raster.Pen(s.thick) {
		a, b := from.Add(off), to.Add(off)
		s.fb.DrawLine(a.X, a.Y, b.X, b.Y, c)
		if err := s.display.DrawLine(a.X, a.Y, b.X, b.Y, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) toggleDrawing() error {
	s.drawing = !s.drawing
	if err := s.showMode(); err != nil {
		return err
	}
	if s.drawing {
		s.log.Info("drawing on")
		return s.overlay.Erase(s.display, s.fb)
	}
	s.log.Info("drawing off")
	return s.overlay.Draw(s.display, s.fb, s.pos, s.penColor(), s.thick)
}

func (s *Session) toggleThickness() error {
	s.thick = !s.thick
	s.log.Info("thickness", "thick", s.thick)
	if s.drawing {
		return nil
	}
	return s.overlay.Draw(s.display, s.fb, s.pos, s.penColor(), s.thick)
}

// clear resets the frame buffer, presents it and puts the cursor marker
// back when not drawing.
func (s *Session) clear() error {
	s.fb.Clear()
	if err := Present(s.display, s.fb); err != nil {
		return fmt.Errorf("etchasketch: present: %w", err)
	}
	s.overlay.Forget()
	if s.drawing {
		return nil
	}
	if err := s.overlay.Draw(s.display, s.fb, s.pos, s.penColor(), s.thick); err != nil {
		return fmt.Errorf("etchasketch: cursor: %w", err)
	}
	return nil
}

func (s *Session) showMode() error {
	if s.indicator == nil {
		return nil
	}
	if err := s.indicator.ShowDrawing(s.drawing); err != nil {
		return fmt.Errorf("etchasketch: indicator: %w", err)
	}
	return nil
}

func (s *Session) penColor() rgb565.Color {
	return Palette[s.color]
}
