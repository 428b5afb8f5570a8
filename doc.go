// Package etchasketch is a button driven drawing engine for small color
// TFT displays.
//
// A cursor is moved with four direction buttons. In drawing mode every move
// rasterizes a line from the previous to the new position into an in-memory
// frame buffer and mirrors it on the display. In cursor mode the cursor is a
// marker painted on the display only; erasing it restores the cells below
// from the frame buffer, so moving around never damages the drawing.
//
// # Controls
//
//	Button     Action
//	Up/Down    Move the cursor two pixels vertically
//	Left/Right Move the cursor two pixels horizontally
//	Draw       Toggle drawing mode (the auxiliary user button does the same)
//	Clear      Clear the drawing and repaint the border
//	Color      Cycle through the eight pen colors
//	Thickness  Toggle between a thin and a 2x2 pen
//
// Movement is rate limited to one step per Config.MoveDelay. The four
// function buttons act once per press, on the transition from released to
// pressed.
//
// # Collaborators
//
// The engine talks to hardware through three small interfaces:
//
// - Display: pixels, lines and windowed bulk writes
// (implemented by st7735.Dev)
// - InputSource: the level of each logical button (implemented by keypad.Pad)
// - Indicator: drawing mode feedback (implemented by indicator.Dev)
//
// The etchasketchtest package provides in-memory fakes of all three.
//
// # Basic Usage
//
//	dev, _ := st7735.NewSPI(spiBus, dcPin, nil)
//	pad, _ := keypad.Open(&keypad.DefaultOpts)
//	s, _ := etchasketch.New(dev, pad, nil, nil)
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := s.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
//		log.Fatal(err)
//	}
//
// # Rendering Discipline
//
// The frame buffer is the source of truth. It is changed only by Clear and
// by line rasterization, and every change is written to the display at the
// same time. The whole buffer is sent to the display in one transfer only
// when it is cleared; strokes and cursor moves update just the cells they
// touch.
package etchasketch
