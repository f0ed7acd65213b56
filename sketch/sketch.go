// Package sketch runs a Processing-style sketch: it owns the window, the
// sketch settings and the setup/draw loop, and leaves all drawing to a
// Renderer.
package sketch

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/roman-mazur/p5/painter"
)

// ErrNoGLContext is returned by windows that cannot report a GL version.
var ErrNoGLContext = errors.New("no GL context")

// Window is the single OS window a sketch draws into.
type Window interface {
	// GLVersion reports the "major.minor" version of the window's GL
	// context, or "" when the window presents frames without GL.
	GLVersion() (string, error)
	Show() error
	SetSize(width, height int)
	SetTitle(caption string)
	OnFocus(func(focused bool))
	// Run calls tick once per frame on the calling goroutine until the
	// window closes or tick fails.
	Run(tick func(dt time.Duration) error) error
}

// Renderer does the actual drawing of a frame.
type Renderer interface {
	Initialize(glVersion string) error
	Clear()
	PreRender()
	PostRender() error
	Render(s painter.Shape)
	TestRender()
}

// Resizer is implemented by renderers whose frame follows the window size.
type Resizer interface {
	Resize(width, height int) error
}

// Sketch is the runtime around one window and one renderer.
type Sketch struct {
	cfg      Config
	window   Window
	renderer Renderer

	focused    bool
	frameCount int
	frameRate  float64
}

// New creates a sketch. The window is used for the whole life of the sketch.
func New(cfg Config, w Window, r Renderer) *Sketch {
	sk := &Sketch{cfg: cfg, window: w, renderer: r}
	w.OnFocus(func(focused bool) { sk.focused = focused })
	return sk
}

func (sk *Sketch) Width() int         { return sk.cfg.Width }
func (sk *Sketch) Height() int        { return sk.cfg.Height }
func (sk *Sketch) Title() string      { return sk.cfg.Title }
func (sk *Sketch) Focused() bool      { return sk.focused }
func (sk *Sketch) FrameCount() int    { return sk.frameCount }
func (sk *Sketch) FrameRate() float64 { return sk.frameRate }

// Initialize passes the window's GL version to the renderer and shows the
// window.
func (sk *Sketch) Initialize() error {
	version, err := sk.window.GLVersion()
	if err != nil {
		return err
	}
	if err := sk.renderer.Initialize(version); err != nil {
		return err
	}
	return sk.window.Show()
}

// Size resizes the window. The minimum size is left to the window.
func (sk *Sketch) Size(width, height int) error {
	sk.cfg.Width = width
	sk.cfg.Height = height
	sk.window.SetSize(width, height)
	if rz, ok := sk.renderer.(Resizer); ok {
		if err := rz.Resize(width, height); err != nil {
			return fmt.Errorf("size %dx%d: %w", width, height, err)
		}
	}
	return nil
}

// SetTitle sets the window caption to "<title> - p5".
func (sk *Sketch) SetTitle(title string) {
	sk.cfg.Title = title
	sk.window.SetTitle(title + " - p5")
}

// Clear fills the frame with the background colour.
func (sk *Sketch) Clear() {
	sk.renderer.Clear()
}

// Run initializes the window, calls setup once and then draw every frame
// until the window is closed. A nil setup does nothing; a nil draw clears
// the screen.
func (sk *Sketch) Run(setup, draw func()) error {
	if setup == nil {
		setup = func() {}
	}
	if draw == nil {
		draw = sk.renderer.Clear
	}

	if err := sk.Initialize(); err != nil {
		return err
	}
	setup()

	log.Printf("Sketch.Run: %q %dx%d running", sk.cfg.Title, sk.cfg.Width, sk.cfg.Height)
	return sk.window.Run(func(dt time.Duration) error {
		return sk.update(dt, draw)
	})
}

// TestRun shows the renderer's diagnostic pattern instead of a sketch.
func (sk *Sketch) TestRun() error {
	if err := sk.Initialize(); err != nil {
		return err
	}
	return sk.window.Run(func(dt time.Duration) error {
		return sk.update(dt, sk.renderer.TestRender)
	})
}

func (sk *Sketch) update(dt time.Duration, draw func()) error {
	sk.tick(dt)
	sk.renderer.PreRender()
	draw()
	if err := sk.renderer.PostRender(); err != nil {
		return fmt.Errorf("frame %d: %w", sk.frameCount, err)
	}
	return nil
}

// tick advances the frame counter and the smoothed frame rate.
func (sk *Sketch) tick(dt time.Duration) {
	sk.frameCount++
	if dt <= 0 {
		return
	}
	instant := float64(time.Second) / float64(dt)
	if sk.frameRate == 0 {
		sk.frameRate = instant
		return
	}
	sk.frameRate = 0.9*sk.frameRate + 0.1*instant
}
