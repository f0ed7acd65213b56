// cmd/bounce/main.go

package main

import (
	"fmt"
	"image/color"
	"log"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/roman-mazur/p5/painter"
	"github.com/roman-mazur/p5/sketch"
	"github.com/roman-mazur/p5/ui"
)

func init() {
	runtime.LockOSThread()
}

var balls = flag.IntP("balls", "n", 12, "number of balls")

type ball struct {
	x, y, vx, vy, d float64
	c               color.Color
}

func (b *ball) move(w, h float64) {
	b.x += b.vx
	b.y += b.vy
	if b.x < b.d/2 || b.x > w-b.d/2 {
		b.vx = -b.vx
	}
	if b.y < b.d/2 || b.y > h-b.d/2 {
		b.vy = -b.vy
	}
}

func main() {
	flag.Parse()

	cfg := sketch.DefaultConfig()
	win, err := ui.NewGLWindow(cfg)
	if err != nil {
		log.Fatalf("Window: %v", err)
	}
	defer win.Close()

	sk := sketch.New(cfg, win, painter.NewRenderer(win, cfg.Width, cfg.Height))

	// Every ball built through this constructor is drawn right away.
	drawBall := sketch.Artist(sk, func(b *ball) painter.Ellipse {
		return painter.Ellipse{X: b.x, Y: b.y, W: b.d, H: b.d}
	})

	var bs []*ball
	setup := func() {
		sk.SetTitle("Bounce")
		if err := sk.Size(640, 480); err != nil {
			log.Fatalf("Size: %v", err)
		}
		for i := 0; i < *balls; i++ {
			bs = append(bs, &ball{
				x: float64(40 + i*45%560), y: float64(40 + i*70%400),
				vx: float64(1 + i%4), vy: float64(2 + i%3),
				d: float64(20 + i%5*6),
				c: color.NRGBA{R: uint8(40 * i), G: 160, B: uint8(255 - 20*i), A: 0xff},
			})
		}
	}
	draw := func() {
		sk.Background(color.NRGBA{R: 20, G: 20, B: 28, A: 0xff})
		sk.NoStroke()
		for _, b := range bs {
			b.move(float64(sk.Width()), float64(sk.Height()))
			sk.Fill(b.c)
			drawBall(b)
		}
		sk.Fill(color.White)
		sk.Text(fmt.Sprintf("frame %d  %.0f fps", sk.FrameCount(), sk.FrameRate()), 10, 20)
	}

	if err := sk.Run(setup, draw); err != nil {
		log.Fatalf("Sketch: %v", err)
	}
}
