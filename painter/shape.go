package painter

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Shape is anything the renderer can draw into a frame.
// Style shapes (Background, Fill, Stroke...) only change st.
type Shape interface {
	Draw(st *Style, dc *gg.Context) error
}

// Style holds the drawing attributes shapes are painted with.
// A nil FillColor or StrokeColor disables that part of the painting.
type Style struct {
	Background  color.Color
	FillColor   color.Color
	StrokeColor color.Color
	Weight      float64
}

// DefaultStyle returns the attributes a sketch starts with.
func DefaultStyle() Style {
	return Style{
		Background:  color.NRGBA{R: 204, G: 204, B: 204, A: 0xff},
		FillColor:   color.White,
		StrokeColor: color.Black,
		Weight:      1,
	}
}

// ShapeList groups multiple shapes. Drawing stops at the first error.
type ShapeList []Shape

func (sl ShapeList) Draw(st *Style, dc *gg.Context) error {
	for _, s := range sl {
		if err := s.Draw(st, dc); err != nil {
			return err
		}
	}
	return nil
}

// paint fills and then strokes the current path.
func paint(st *Style, dc *gg.Context) error {
	if st.FillColor == nil && st.StrokeColor == nil {
		dc.ClearPath()
		return nil
	}
	if st.FillColor != nil {
		dc.SetColor(st.FillColor)
		if st.StrokeColor == nil {
			return dc.Fill()
		}
		if err := dc.FillPreserve(); err != nil {
			dc.ClearPath()
			return err
		}
	}
	dc.SetColor(st.StrokeColor)
	dc.SetLineWidth(st.Weight)
	return dc.Stroke()
}

// stroke paints only the outline of the current path. Used for open shapes.
func stroke(st *Style, dc *gg.Context) error {
	if st.StrokeColor == nil {
		dc.ClearPath()
		return nil
	}
	dc.SetColor(st.StrokeColor)
	dc.SetLineWidth(st.Weight)
	return dc.Stroke()
}

// Background fills the whole frame and makes C the colour Clear uses.
type Background struct {
	C color.Color
}

func (op Background) Draw(st *Style, dc *gg.Context) error {
	st.Background = op.C
	dc.ClearWithColor(gg.FromColor(op.C))
	return nil
}

// Fill sets the fill colour for the following shapes.
type Fill struct {
	C color.Color
}

func (op Fill) Draw(st *Style, _ *gg.Context) error {
	st.FillColor = op.C
	return nil
}

// NoFill disables filling.
type NoFill struct{}

func (NoFill) Draw(st *Style, _ *gg.Context) error {
	st.FillColor = nil
	return nil
}

// Stroke sets the outline colour for the following shapes.
type Stroke struct {
	C color.Color
}

func (op Stroke) Draw(st *Style, _ *gg.Context) error {
	st.StrokeColor = op.C
	return nil
}

// NoStroke disables outlines.
type NoStroke struct{}

func (NoStroke) Draw(st *Style, _ *gg.Context) error {
	st.StrokeColor = nil
	return nil
}

// StrokeWeight sets the outline width in pixels.
type StrokeWeight struct {
	W float64
}

func (op StrokeWeight) Draw(st *Style, _ *gg.Context) error {
	st.Weight = op.W
	return nil
}

// Rect is an axis-aligned rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

func (op Rect) Draw(st *Style, dc *gg.Context) error {
	dc.DrawRectangle(op.X, op.Y, op.W, op.H)
	return paint(st, dc)
}

// Ellipse is centred at X, Y with diameters W and H.
type Ellipse struct {
	X, Y, W, H float64
}

func (op Ellipse) Draw(st *Style, dc *gg.Context) error {
	dc.DrawEllipse(op.X, op.Y, op.W/2, op.H/2)
	return paint(st, dc)
}

// Line is a segment between two points. It is never filled.
type Line struct {
	X1, Y1, X2, Y2 float64
}

func (op Line) Draw(st *Style, dc *gg.Context) error {
	dc.DrawLine(op.X1, op.Y1, op.X2, op.Y2)
	return stroke(st, dc)
}

// Point is a dot in the stroke colour, as wide as the stroke weight.
type Point struct {
	X, Y float64
}

func (op Point) Draw(st *Style, dc *gg.Context) error {
	if st.StrokeColor == nil {
		return nil
	}
	r := st.Weight / 2
	if r < 0.5 {
		r = 0.5
	}
	dc.SetColor(st.StrokeColor)
	dc.DrawPoint(op.X, op.Y, r)
	return dc.Fill()
}

// Triangle is a closed polygon through three points.
type Triangle struct {
	X1, Y1, X2, Y2, X3, Y3 float64
}

func (op Triangle) Draw(st *Style, dc *gg.Context) error {
	dc.MoveTo(op.X1, op.Y1)
	dc.LineTo(op.X2, op.Y2)
	dc.LineTo(op.X3, op.Y3)
	dc.ClosePath()
	return paint(st, dc)
}

// Quad is a closed polygon through four points.
type Quad struct {
	X1, Y1, X2, Y2, X3, Y3, X4, Y4 float64
}

func (op Quad) Draw(st *Style, dc *gg.Context) error {
	dc.MoveTo(op.X1, op.Y1)
	dc.LineTo(op.X2, op.Y2)
	dc.LineTo(op.X3, op.Y3)
	dc.LineTo(op.X4, op.Y4)
	dc.ClosePath()
	return paint(st, dc)
}

// Arc is a section of the ellipse centred at X, Y with diameters W and H,
// from Start to Stop radians.
type Arc struct {
	X, Y, W, H  float64
	Start, Stop float64
}

func (op Arc) Draw(st *Style, dc *gg.Context) error {
	dc.DrawEllipticalArc(op.X, op.Y, op.W/2, op.H/2, op.Start, op.Stop)
	return paint(st, dc)
}

// Text is a single line of bitmap text in the fill colour with its
// baseline starting at X, Y.
type Text struct {
	X, Y float64
	S    string
}

var textFace = basicfont.Face7x13

func (op Text) Draw(st *Style, dc *gg.Context) error {
	if st.FillColor == nil || op.S == "" {
		return nil
	}
	m := textFace.Metrics()
	w := font.MeasureString(textFace, op.S).Ceil()
	h := m.Height.Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(st.FillColor),
		Face: textFace,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(op.S)

	dc.DrawImage(gg.ImageBufFromImage(img), op.X, op.Y-float64(m.Ascent.Ceil()))
	return nil
}
