package ui

import (
	"fmt"
	"image"
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/roman-mazur/p5/sketch"
)

// GLWindow is a GLFW window with an OpenGL 4.1 core context. Frames are
// uploaded into a texture and blitted onto the default framebuffer.
//
// GLFW requires every call to come from the main thread; the program must
// lock it (runtime.LockOSThread in an init function) before NewGLWindow.
type GLWindow struct {
	win   *glfw.Window
	clock *Clock

	tex, fbo uint32
	texSize  image.Point
	frame    *image.RGBA

	onFocus func(bool)
}

// NewGLWindow creates the window hidden; Show makes it visible.
func NewGLWindow(cfg sketch.Config) (*GLWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("GLFW init failed: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window creation failed: %w", err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	win.SetSizeLimits(sketch.MinWidth, sketch.MinHeight, glfw.DontCare, glfw.DontCare)
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &GLWindow{win: win, clock: NewClock(cfg.FrameRate)}

	gl.GenTextures(1, &w.tex)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.GenFramebuffers(1, &w.fbo)

	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if w.onFocus != nil {
			w.onFocus(focused)
		}
	})

	log.Printf("GLWindow: created %dx%d, %s", cfg.Width, cfg.Height, gl.GoStr(gl.GetString(gl.VERSION)))
	return w, nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// GLVersion reports the version of the context current on this thread.
func (w *GLWindow) GLVersion() (string, error) {
	if glfw.GetCurrentContext() == nil {
		return "", sketch.ErrNoGLContext
	}
	major := w.win.GetAttrib(glfw.ContextVersionMajor)
	minor := w.win.GetAttrib(glfw.ContextVersionMinor)
	return fmt.Sprintf("%d.%d", major, minor), nil
}

func (w *GLWindow) Show() error {
	w.win.Show()
	return nil
}

func (w *GLWindow) SetSize(width, height int) {
	w.win.SetSize(width, height)
}

func (w *GLWindow) SetTitle(caption string) {
	w.win.SetTitle(caption)
}

func (w *GLWindow) OnFocus(f func(bool)) {
	w.onFocus = f
}

// Update receives a finished frame; it is shown after the current tick.
// Implements painter.Receiver.
func (w *GLWindow) Update(frame *image.RGBA) {
	w.frame = frame
}

// Run polls events and calls tick once per frame until the window is
// asked to close.
func (w *GLWindow) Run(tick func(dt time.Duration) error) error {
	for !w.win.ShouldClose() {
		glfw.PollEvents()
		if err := tick(w.clock.Tick()); err != nil {
			return err
		}
		w.present()
		w.win.SwapBuffers()
		if d := w.clock.Wait(); d > 0 {
			time.Sleep(d)
		}
	}
	log.Println("GLWindow: close requested")
	return nil
}

func (w *GLWindow) present() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	if w.frame == nil {
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		return
	}

	size := w.frame.Bounds().Size()
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(w.frame.Stride/4))
	if size != w.texSize {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.frame.Pix))
		w.texSize = size
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(size.X), int32(size.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(w.frame.Pix))
	}

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.tex, 0)

	// Frames are stored top row first, GL framebuffers bottom row first.
	fbw, fbh := w.win.GetFramebufferSize()
	gl.BlitFramebuffer(
		0, 0, int32(size.X), int32(size.Y),
		0, int32(fbh), int32(fbw), 0,
		gl.COLOR_BUFFER_BIT, gl.LINEAR,
	)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

// Close releases the GL objects and the window and terminates GLFW.
func (w *GLWindow) Close() {
	gl.DeleteFramebuffers(1, &w.fbo)
	gl.DeleteTextures(1, &w.tex)
	w.win.Destroy()
	glfw.Terminate()
}
