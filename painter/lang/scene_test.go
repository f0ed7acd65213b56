package lang_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roman-mazur/p5/painter"
	"github.com/roman-mazur/p5/painter/lang"
)

func TestScene_DrawInOrder(t *testing.T) {
	scene := &lang.Scene{}
	in := []painter.Shape{painter.NoFill{}, painter.Point{X: 1, Y: 1}, painter.NoStroke{}}
	scene.Replace(in)

	var got []painter.Shape
	n := scene.Draw(func(s painter.Shape) { got = append(got, s) })

	assert.Equal(t, 3, n)
	assert.Equal(t, in, got)
}

func TestScene_ReplaceCopies(t *testing.T) {
	scene := &lang.Scene{}
	in := []painter.Shape{painter.NoFill{}, painter.NoStroke{}}
	scene.Replace(in)
	in[0] = painter.Point{}

	assert.Equal(t, painter.Shape(painter.NoFill{}), scene.Shapes()[0])
}

func TestScene_ConcurrentReplaceAndDraw(t *testing.T) {
	scene := &lang.Scene{}
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			scene.Replace([]painter.Shape{painter.Point{X: float64(i)}})
		}
	}()

	for i := 0; i < 100; i++ {
		n := scene.Draw(func(painter.Shape) {})
		assert.LessOrEqual(t, n, 1)
	}
	wg.Wait()
	assert.Equal(t, 100, scene.Version())
}
