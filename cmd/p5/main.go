// cmd/p5/main.go

package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/roman-mazur/p5/painter"
	"github.com/roman-mazur/p5/painter/lang"
	"github.com/roman-mazur/p5/sketch"
	"github.com/roman-mazur/p5/ui"
)

func init() {
	// GLFW and the shiny driver both need the main thread.
	runtime.LockOSThread()
}

var (
	configPath = flag.StringP("config", "c", "", "YAML file with sketch settings")
	backend    = flag.String("backend", "", "window backend: glfw or shiny")
	width      = flag.IntP("width", "W", 0, "window width")
	height     = flag.IntP("height", "H", 0, "window height")
	title      = flag.StringP("title", "t", "", "window title")
	frameRate  = flag.Float64("frame-rate", 0, "target frames per second, 0 for unpaced")
	script     = flag.StringP("script", "s", "", "file with drawing commands to start from")
	addr       = flag.String("addr", ":17000", "address of the scene HTTP endpoint, empty to disable")
	testRun    = flag.Bool("test", false, "show the renderer test pattern instead of a sketch")
)

// window is what a backend has to offer: a sketch window that also shows
// the renderer's frames.
type window interface {
	sketch.Window
	painter.Receiver
}

func loadConfig() (sketch.Config, error) {
	cfg := sketch.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sketch.LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}
	if flag.CommandLine.Changed("backend") {
		cfg.Backend = *backend
	}
	if flag.CommandLine.Changed("width") {
		cfg.Width = *width
	}
	if flag.CommandLine.Changed("height") {
		cfg.Height = *height
	}
	if flag.CommandLine.Changed("title") {
		cfg.Title = *title
	}
	if flag.CommandLine.Changed("frame-rate") {
		cfg.FrameRate = *frameRate
	}
	return cfg, cfg.Validate()
}

func openWindow(cfg sketch.Config) (window, func(), error) {
	switch cfg.Backend {
	case sketch.BackendShiny:
		return ui.NewVisualizer(cfg), func() {}, nil
	case sketch.BackendGLFW:
		w, err := ui.NewGLWindow(cfg)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func loadScene(scene *lang.Scene, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	shapes, err := lang.ParseScript(f)
	if err != nil {
		log.Printf("Script %s: %v", path, err)
	}
	scene.Replace(shapes)
	log.Printf("Script %s: loaded %d shapes", path, len(shapes))
	return nil
}

func main() {
	flag.Parse()
	log.Println("Starting p5...")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	win, closeWindow, err := openWindow(cfg)
	if err != nil {
		log.Fatalf("Window: %v", err)
	}
	defer closeWindow()

	renderer := painter.NewRenderer(win, cfg.Width, cfg.Height)
	sk := sketch.New(cfg, win, renderer)

	if *testRun {
		if err := sk.TestRun(); err != nil {
			log.Fatalf("Test run: %v", err)
		}
		return
	}

	scene := &lang.Scene{}
	if *script != "" {
		if err := loadScene(scene, *script); err != nil {
			log.Fatalf("Script: %v", err)
		}
	}

	if *addr != "" {
		go func() {
			log.Printf("Starting HTTP server on %s", *addr)
			if err := http.ListenAndServe(*addr, lang.HttpHandler(scene)); err != nil {
				log.Fatalf("HTTP server failed: %v", err)
			}
		}()
	}

	setup := func() {
		sk.SetTitle(cfg.Title)
	}
	draw := func() {
		if scene.Draw(func(s painter.Shape) { sk.Submit(s) }) == 0 {
			sk.Clear()
		}
	}
	if err := sk.Run(setup, draw); err != nil {
		log.Fatalf("Sketch: %v", err)
	}

	log.Printf("p5 closed after %d frames.", sk.FrameCount())
}
