package lang

import (
	"sync"

	"github.com/roman-mazur/p5/painter"
)

// Scene is a display list shared between the goroutine that receives new
// scripts and the sketch loop that draws them every frame.
type Scene struct {
	mu      sync.Mutex
	shapes  []painter.Shape
	version int
}

// Replace swaps the whole display list.
func (sc *Scene) Replace(shapes []painter.Shape) {
	sc.mu.Lock()
	// Keep our own slice so later appends by the caller cannot leak in.
	sc.shapes = append([]painter.Shape(nil), shapes...)
	sc.version++
	sc.mu.Unlock()
}

// Shapes returns a copy of the current display list.
func (sc *Scene) Shapes() []painter.Shape {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return append([]painter.Shape(nil), sc.shapes...)
}

// Version counts how many times the scene was replaced.
func (sc *Scene) Version() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.version
}

// Draw passes every shape of the current display list to submit, in order,
// and returns how many there were. The lock is not held while submitting.
func (sc *Scene) Draw(submit func(painter.Shape)) int {
	shapes := sc.Shapes()
	for _, s := range shapes {
		submit(s)
	}
	return len(shapes)
}
