package lang

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/roman-mazur/p5/painter"
)

// Parse parses a single command line into a painter.Shape.
func Parse(commandLine string) (painter.Shape, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, errors.New("empty command")
	}

	command := fields[0]
	args := fields[1:]

	switch command {
	case "background":
		c, err := parseColor(command, args, false)
		if err != nil {
			return nil, err
		}
		return painter.Background{C: c}, nil
	case "fill":
		c, err := parseColor(command, args, true)
		if err != nil {
			return nil, err
		}
		return painter.Fill{C: c}, nil
	case "stroke":
		c, err := parseColor(command, args, true)
		if err != nil {
			return nil, err
		}
		return painter.Stroke{C: c}, nil
	case "nofill":
		if len(args) != 0 {
			return nil, errors.New("nofill command takes no arguments")
		}
		return painter.NoFill{}, nil
	case "nostroke":
		if len(args) != 0 {
			return nil, errors.New("nostroke command takes no arguments")
		}
		return painter.NoStroke{}, nil
	case "weight":
		v, err := parseNumbers(command, args, 1)
		if err != nil {
			return nil, err
		}
		if v[0] < 0 {
			return nil, fmt.Errorf("weight must not be negative: %s", args[0])
		}
		return painter.StrokeWeight{W: v[0]}, nil
	case "rect":
		v, err := parseNumbers(command, args, 4)
		if err != nil {
			return nil, err
		}
		return painter.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	case "ellipse":
		v, err := parseNumbers(command, args, 4)
		if err != nil {
			return nil, err
		}
		return painter.Ellipse{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	case "circle":
		v, err := parseNumbers(command, args, 3)
		if err != nil {
			return nil, err
		}
		return painter.Ellipse{X: v[0], Y: v[1], W: v[2], H: v[2]}, nil
	case "line":
		v, err := parseNumbers(command, args, 4)
		if err != nil {
			return nil, err
		}
		return painter.Line{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
	case "point":
		v, err := parseNumbers(command, args, 2)
		if err != nil {
			return nil, err
		}
		return painter.Point{X: v[0], Y: v[1]}, nil
	case "triangle":
		v, err := parseNumbers(command, args, 6)
		if err != nil {
			return nil, err
		}
		return painter.Triangle{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], X3: v[4], Y3: v[5]}, nil
	case "quad":
		v, err := parseNumbers(command, args, 8)
		if err != nil {
			return nil, err
		}
		return painter.Quad{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], X3: v[4], Y3: v[5], X4: v[6], Y4: v[7]}, nil
	case "arc":
		v, err := parseNumbers(command, args, 6)
		if err != nil {
			return nil, err
		}
		return painter.Arc{X: v[0], Y: v[1], W: v[2], H: v[3], Start: v[4], Stop: v[5]}, nil
	case "text":
		if len(args) < 3 {
			return nil, errors.New("text command requires a position and some text (x y words...)")
		}
		v, err := parseNumbers(command, args[:2], 2)
		if err != nil {
			return nil, err
		}
		return painter.Text{X: v[0], Y: v[1], S: strings.Join(args[2:], " ")}, nil
	default:
		return nil, errors.New("unknown command: " + command)
	}
}

// ParseScript parses every command in r. Blank lines and lines starting
// with '#' are skipped. Bad lines do not stop parsing: the shapes of the
// good lines are returned together with an error listing every bad one.
func ParseScript(r io.Reader) ([]painter.Shape, error) {
	scanner := bufio.NewScanner(r)
	var (
		shapes []painter.Shape
		errs   []error
		n      int
	)
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := Parse(line)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d %q: %w", n, line, err))
			continue
		}
		shapes = append(shapes, s)
	}
	if err := scanner.Err(); err != nil {
		return shapes, fmt.Errorf("error reading commands: %w", err)
	}
	return shapes, errors.Join(errs...)
}

func parseNumbers(command string, args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s command requires %d arguments, got %d", command, want, len(args))
	}
	v := make([]float64, want)
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("invalid number for " + command + ": " + arg)
		}
		v[i] = f
	}
	return v, nil
}

// parseColor accepts "gray", "r g b" and, when withAlpha is set, "r g b a",
// every component in 0..255.
func parseColor(command string, args []string, withAlpha bool) (color.Color, error) {
	switch {
	case len(args) == 1, len(args) == 3, len(args) == 4 && withAlpha:
	default:
		if withAlpha {
			return nil, fmt.Errorf("%s command requires 1, 3 or 4 colour components", command)
		}
		return nil, fmt.Errorf("%s command requires 1 or 3 colour components", command)
	}
	c := [4]uint8{0, 0, 0, 0xff}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.New("invalid colour component for " + command + ": " + arg)
		}
		if v < 0 || v > 255 {
			return nil, errors.New("colour component out of range (0-255) for " + command + ": " + arg)
		}
		c[i] = uint8(v)
	}
	if len(args) == 1 {
		c[1], c[2] = c[0], c[0]
	}
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}
