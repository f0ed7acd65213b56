package sketch

import (
	"image/color"

	"github.com/roman-mazur/p5/painter"
)

// Submit hands s to the renderer and returns it unchanged.
func (sk *Sketch) Submit(s painter.Shape) painter.Shape {
	return submit(sk, s)
}

func submit[S painter.Shape](sk *Sketch, s S) S {
	sk.renderer.Render(s)
	return s
}

// Artist wraps a shape constructor so that every shape it builds is drawn
// as soon as it is built. The wrapped function returns the very value f
// returned.
func Artist[A any, S painter.Shape](sk *Sketch, f func(A) S) func(A) S {
	return func(a A) S {
		return submit(sk, f(a))
	}
}

// Artist0 is Artist for constructors without arguments.
func Artist0[S painter.Shape](sk *Sketch, f func() S) func() S {
	return func() S {
		return submit(sk, f())
	}
}

func (sk *Sketch) Background(c color.Color) painter.Background {
	return submit(sk, painter.Background{C: c})
}

func (sk *Sketch) Fill(c color.Color) painter.Fill {
	return submit(sk, painter.Fill{C: c})
}

func (sk *Sketch) NoFill() painter.NoFill {
	return submit(sk, painter.NoFill{})
}

func (sk *Sketch) Stroke(c color.Color) painter.Stroke {
	return submit(sk, painter.Stroke{C: c})
}

func (sk *Sketch) NoStroke() painter.NoStroke {
	return submit(sk, painter.NoStroke{})
}

func (sk *Sketch) StrokeWeight(w float64) painter.StrokeWeight {
	return submit(sk, painter.StrokeWeight{W: w})
}

func (sk *Sketch) Rect(x, y, w, h float64) painter.Rect {
	return submit(sk, painter.Rect{X: x, Y: y, W: w, H: h})
}

func (sk *Sketch) Ellipse(x, y, w, h float64) painter.Ellipse {
	return submit(sk, painter.Ellipse{X: x, Y: y, W: w, H: h})
}

// Circle draws an ellipse with equal diameters.
func (sk *Sketch) Circle(x, y, d float64) painter.Ellipse {
	return submit(sk, painter.Ellipse{X: x, Y: y, W: d, H: d})
}

func (sk *Sketch) Line(x1, y1, x2, y2 float64) painter.Line {
	return submit(sk, painter.Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (sk *Sketch) Point(x, y float64) painter.Point {
	return submit(sk, painter.Point{X: x, Y: y})
}

func (sk *Sketch) Triangle(x1, y1, x2, y2, x3, y3 float64) painter.Triangle {
	return submit(sk, painter.Triangle{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3})
}

func (sk *Sketch) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64) painter.Quad {
	return submit(sk, painter.Quad{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3, X4: x4, Y4: y4})
}

func (sk *Sketch) Arc(x, y, w, h, start, stop float64) painter.Arc {
	return submit(sk, painter.Arc{X: x, Y: y, W: w, H: h, Start: start, Stop: stop})
}

func (sk *Sketch) Text(s string, x, y float64) painter.Text {
	return submit(sk, painter.Text{X: x, Y: y, S: s})
}
