// painter/renderer.go

package painter

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/gogpu/gg"
)

// Receiver defines an interface for components that can display finished frames.
type Receiver interface {
	Update(frame *image.RGBA)
}

// Renderer rasterizes shapes into a frame and hands every finished frame
// to its Receiver. All methods must be called from the sketch's loop.
type Renderer struct {
	Receiver Receiver // Component to send finished frames to (e.g. ui.GLWindow)

	dc        *gg.Context
	style     Style
	glVersion string
	err       error // first draw error of the current frame
}

// NewRenderer creates a renderer with a width x height frame.
func NewRenderer(r Receiver, width, height int) *Renderer {
	return &Renderer{
		Receiver: r,
		dc:       gg.NewContext(width, height),
		style:    DefaultStyle(),
	}
}

// Initialize records the GL version of the window the frames are shown in
// and prepares the first frame. An empty version means the window has no GL
// context and presents software frames directly.
func (r *Renderer) Initialize(glVersion string) error {
	if glVersion != "" {
		var major, minor int
		if _, err := fmt.Sscanf(glVersion, "%d.%d", &major, &minor); err != nil {
			return fmt.Errorf("unrecognised GL version %q: %w", glVersion, err)
		}
		if major < 3 {
			return fmt.Errorf("GL %s is not supported, need 3.0 or newer", glVersion)
		}
		log.Printf("Renderer.Initialize: GL %s, frame %dx%d", glVersion, r.dc.Width(), r.dc.Height())
	} else {
		log.Printf("Renderer.Initialize: no GL context, software frames %dx%d", r.dc.Width(), r.dc.Height())
	}
	r.glVersion = glVersion
	r.Clear()
	return nil
}

// GLVersion returns the version passed to Initialize.
func (r *Renderer) GLVersion() string {
	return r.glVersion
}

// Style returns the attributes the next shape will be drawn with.
func (r *Renderer) Style() Style {
	return r.style
}

// Resize reallocates the frame. The new frame starts cleared.
func (r *Renderer) Resize(width, height int) error {
	if err := r.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resize frame: %w", err)
	}
	r.Clear()
	return nil
}

// Clear fills the frame with the background colour.
func (r *Renderer) Clear() {
	r.dc.ClearWithColor(gg.FromColor(r.style.Background))
}

// PreRender starts a frame. The style carries over from the previous
// frame; the transform and any unfinished path do not.
func (r *Renderer) PreRender() {
	r.err = nil
	r.dc.Identity()
	r.dc.ClearPath()
}

// Render draws s into the current frame.
func (r *Renderer) Render(s Shape) {
	if s == nil {
		return
	}
	if err := s.Draw(&r.style, r.dc); err != nil && r.err == nil {
		r.err = fmt.Errorf("render %T: %w", s, err)
	}
}

// PostRender sends the finished frame to the receiver and reports the
// first error any shape hit while drawing it.
func (r *Renderer) PostRender() error {
	if r.Receiver != nil {
		r.Receiver.Update(r.Frame())
	}
	return r.err
}

// Frame returns a copy of the current frame.
func (r *Renderer) Frame() *image.RGBA {
	img := r.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

var testBars = []color.Color{
	color.White,
	color.NRGBA{R: 0xff, G: 0xff, A: 0xff},
	color.NRGBA{G: 0xff, B: 0xff, A: 0xff},
	color.NRGBA{G: 0xff, A: 0xff},
	color.NRGBA{R: 0xff, B: 0xff, A: 0xff},
	color.NRGBA{R: 0xff, A: 0xff},
	color.NRGBA{B: 0xff, A: 0xff},
}

// TestRender draws a fixed diagnostic pattern: colour bars, both diagonals
// and a circle in the middle. It leaves the sketch style untouched.
func (r *Renderer) TestRender() {
	w, h := float64(r.dc.Width()), float64(r.dc.Height())
	st := DefaultStyle()

	bars := make(ShapeList, 0, 2*len(testBars)+5)
	bars = append(bars, Background{C: color.Black}, NoStroke{})
	bw := w / float64(len(testBars))
	for i, c := range testBars {
		bars = append(bars, Fill{C: c}, Rect{X: float64(i) * bw, Y: 0, W: bw, H: h})
	}
	bars = append(bars,
		Stroke{C: color.Black},
		StrokeWeight{W: 2},
		Line{X1: 0, Y1: 0, X2: w, Y2: h},
		Line{X1: w, Y1: 0, X2: 0, Y2: h},
		Fill{C: color.Black},
		Ellipse{X: w / 2, Y: h / 2, W: math.Min(w, h) / 3, H: math.Min(w, h) / 3},
	)

	if err := bars.Draw(&st, r.dc); err != nil && r.err == nil {
		r.err = fmt.Errorf("test pattern: %w", err)
	}
}
