package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/roman-mazur/p5/sketch"
)

// tickEvent asks the event loop to run one frame.
type tickEvent struct{}

// Visualizer is the shiny window backend. It has no GL context: frames are
// copied into a screen.Buffer, uploaded to a texture and scaled onto the
// window.
type Visualizer struct {
	Title         string
	Width, Height int

	clock *Clock

	// Shiny specific fields
	s  screen.Screen
	pw screen.Window  // The window handle
	bf screen.Buffer  // Staging buffer for frames
	tx screen.Texture // Texture the window is painted from
	sz size.Event     // Current window size

	frame   *image.RGBA
	onFocus func(bool)
	ticked  chan struct{}
}

// NewVisualizer prepares a window; it is created when Run starts.
func NewVisualizer(cfg sketch.Config) *Visualizer {
	return &Visualizer{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		clock:  NewClock(cfg.FrameRate),
		ticked: make(chan struct{}, 1),
	}
}

// GLVersion is always empty: shiny windows present software frames.
func (v *Visualizer) GLVersion() (string, error) {
	return "", nil
}

// Show is a no-op, the window appears when Run creates it.
func (v *Visualizer) Show() error {
	return nil
}

// SetSize sets the size the window is created with. Shiny cannot resize a
// live window.
func (v *Visualizer) SetSize(width, height int) {
	v.Width, v.Height = width, height
	if v.pw != nil {
		log.Printf("Visualizer.SetSize: window already open, %dx%d applies to the frame only", width, height)
	}
}

// SetTitle sets the caption the window is created with.
func (v *Visualizer) SetTitle(caption string) {
	v.Title = caption
	if v.pw != nil {
		log.Printf("Visualizer.SetTitle: window already open, caption %q not applied", caption)
	}
}

func (v *Visualizer) OnFocus(f func(bool)) {
	v.onFocus = f
}

// Update receives a finished frame from the renderer.
// Implements painter.Receiver.
func (v *Visualizer) Update(frame *image.RGBA) {
	v.frame = frame
}

// Run starts the shiny driver and runs the event loop until the window is
// closed. Ticks are posted into the window's own event queue, so tick always
// runs on the event loop goroutine.
func (v *Visualizer) Run(tick func(dt time.Duration) error) error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Title:  v.Title,
			Width:  v.Width,
			Height: v.Height,
		})
		if err != nil {
			runErr = fmt.Errorf("failed to create window: %w", err)
			return
		}
		v.s, v.pw = s, w
		defer v.release()

		done := make(chan struct{})
		defer close(done)
		go v.schedule(done)

		for {
			switch e := w.NextEvent().(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					log.Println("Lifecycle: StageDead - Exiting UI loop")
					return
				}
				switch e.Crosses(lifecycle.StageFocused) {
				case lifecycle.CrossOn:
					v.focus(true)
				case lifecycle.CrossOff:
					v.focus(false)
				}

			case size.Event:
				v.sz = e

			case paint.Event:
				v.publish()

			case tickEvent:
				if err := tick(v.clock.Tick()); err != nil {
					runErr = err
					return
				}
				v.publish()
				select {
				case v.ticked <- struct{}{}:
				default:
				}

			case error:
				log.Printf("Visualizer: %v", e)
			}
		}
	})
	return runErr
}

// schedule posts one tick at a time and waits for the event loop to finish
// it before pacing the next.
func (v *Visualizer) schedule(done <-chan struct{}) {
	for {
		v.pw.Send(tickEvent{})
		select {
		case <-done:
			return
		case <-v.ticked:
		}
		if d := v.clock.Wait(); d > 0 {
			select {
			case <-done:
				return
			case <-time.After(d):
			}
		}
	}
}

func (v *Visualizer) focus(focused bool) {
	if v.onFocus != nil {
		v.onFocus(focused)
	}
}

func (v *Visualizer) publish() {
	if v.frame == nil {
		v.pw.Fill(v.sz.Bounds(), color.Black, screen.Src)
		v.pw.Publish()
		return
	}
	tx, err := v.stage(v.frame)
	if err != nil {
		log.Printf("Visualizer: %v", err)
		return
	}
	dst := v.sz.Bounds()
	if dst.Empty() {
		dst = tx.Bounds()
	}
	v.pw.Scale(dst, tx, tx.Bounds(), screen.Src, nil)
	v.pw.Publish()
}

// stage copies frame into the staging buffer and uploads it, reallocating
// the buffer and texture when the frame size changes.
func (v *Visualizer) stage(frame *image.RGBA) (screen.Texture, error) {
	sz := frame.Bounds().Size()
	if v.bf == nil || v.bf.Size() != sz {
		v.release()
		bf, err := v.s.NewBuffer(sz)
		if err != nil {
			return nil, fmt.Errorf("allocate buffer: %w", err)
		}
		tx, err := v.s.NewTexture(sz)
		if err != nil {
			bf.Release()
			return nil, fmt.Errorf("allocate texture: %w", err)
		}
		v.bf, v.tx = bf, tx
	}
	draw.Draw(v.bf.RGBA(), v.bf.Bounds(), frame, frame.Bounds().Min, draw.Src)
	v.tx.Upload(image.Point{}, v.bf, v.bf.Bounds())
	return v.tx, nil
}

func (v *Visualizer) release() {
	if v.tx != nil {
		v.tx.Release()
		v.tx = nil
	}
	if v.bf != nil {
		v.bf.Release()
		v.bf = nil
	}
}
