package lang_test

import (
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-mazur/p5/painter"
	"github.com/roman-mazur/p5/painter/lang"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		commandLine string
		expected    painter.Shape
		expectError bool
	}{
		// --- Valid Cases ---
		{
			name:        "parse background grey",
			commandLine: "background 51",
			expected:    painter.Background{C: color.NRGBA{R: 51, G: 51, B: 51, A: 255}},
		},
		{
			name:        "parse background rgb",
			commandLine: "background 10 20 30",
			expected:    painter.Background{C: color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		},
		{
			name:        "parse fill with alpha",
			commandLine: "fill 255 0 0 128",
			expected:    painter.Fill{C: color.NRGBA{R: 255, A: 128}},
		},
		{
			name:        "parse stroke",
			commandLine: "stroke 0 0 255",
			expected:    painter.Stroke{C: color.NRGBA{B: 255, A: 255}},
		},
		{
			name:        "parse nofill",
			commandLine: "nofill",
			expected:    painter.NoFill{},
		},
		{
			name:        "parse nostroke",
			commandLine: "nostroke",
			expected:    painter.NoStroke{},
		},
		{
			name:        "parse weight",
			commandLine: "weight 2.5",
			expected:    painter.StrokeWeight{W: 2.5},
		},
		{
			name:        "parse rect",
			commandLine: "rect 10 20 30 40",
			expected:    painter.Rect{X: 10, Y: 20, W: 30, H: 40},
		},
		{
			name:        "parse ellipse",
			commandLine: "ellipse 50 50 20 10",
			expected:    painter.Ellipse{X: 50, Y: 50, W: 20, H: 10},
		},
		{
			name:        "parse circle",
			commandLine: "circle 50 50 20",
			expected:    painter.Ellipse{X: 50, Y: 50, W: 20, H: 20},
		},
		{
			name:        "parse line with negative coords",
			commandLine: "line -5 0 100 100.5",
			expected:    painter.Line{X1: -5, Y1: 0, X2: 100, Y2: 100.5},
		},
		{
			name:        "parse point",
			commandLine: "point 1 2",
			expected:    painter.Point{X: 1, Y: 2},
		},
		{
			name:        "parse triangle",
			commandLine: "triangle 0 0 10 0 5 8",
			expected:    painter.Triangle{X2: 10, X3: 5, Y3: 8},
		},
		{
			name:        "parse quad",
			commandLine: "quad 0 0 10 0 10 10 0 10",
			expected:    painter.Quad{X2: 10, X3: 10, Y3: 10, Y4: 10},
		},
		{
			name:        "parse arc",
			commandLine: "arc 50 50 40 40 0 3.14",
			expected:    painter.Arc{X: 50, Y: 50, W: 40, H: 40, Start: 0, Stop: 3.14},
		},
		{
			name:        "parse text keeps words",
			commandLine: "text 10 20 hello   sketch world",
			expected:    painter.Text{X: 10, Y: 20, S: "hello sketch world"},
		},
		{
			name:        "parse command with extra spaces",
			commandLine: "  point   3   7  ",
			expected:    painter.Point{X: 3, Y: 7},
		},

		// --- Error Cases ---
		{name: "parse empty command line", commandLine: "", expectError: true},
		{name: "parse whitespace command line", commandLine: "   ", expectError: true},
		{name: "parse unknown command", commandLine: "unknowncmd 1 2 3", expectError: true},
		{name: "parse nofill with arguments", commandLine: "nofill 1", expectError: true},
		{name: "parse nostroke with arguments", commandLine: "nostroke x", expectError: true},
		{name: "parse background with alpha", commandLine: "background 1 2 3 4", expectError: true},
		{name: "parse fill with two components", commandLine: "fill 1 2", expectError: true},
		{name: "parse fill out of range", commandLine: "fill 256 0 0", expectError: true},
		{name: "parse fill negative", commandLine: "fill -1", expectError: true},
		{name: "parse fill fractional", commandLine: "fill 0.5", expectError: true},
		{name: "parse negative weight", commandLine: "weight -1", expectError: true},
		{name: "parse rect too few args", commandLine: "rect 1 2 3", expectError: true},
		{name: "parse rect too many args", commandLine: "rect 1 2 3 4 5", expectError: true},
		{name: "parse rect invalid number", commandLine: "rect 1 two 3 4", expectError: true},
		{name: "parse rect NaN", commandLine: "rect NaN 2 3 4", expectError: true},
		{name: "parse circle too few args", commandLine: "circle 1 2", expectError: true},
		{name: "parse triangle too few args", commandLine: "triangle 0 0 1 1 2", expectError: true},
		{name: "parse quad too few args", commandLine: "quad 0 0 1 1 2 2 3", expectError: true},
		{name: "parse text without words", commandLine: "text 1 2", expectError: true},
		{name: "parse text invalid position", commandLine: "text a 2 hi", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := lang.Parse(tt.commandLine)

			if tt.expectError {
				if err == nil {
					t.Errorf("Parse(%q) expected an error, but got nil", tt.commandLine)
				}
			} else if err != nil {
				t.Errorf("Parse(%q) expected no error, but got: %v", tt.commandLine, err)
			}

			if !reflect.DeepEqual(s, tt.expected) {
				t.Errorf("Parse(%q) expected shape %+v, but got %+v", tt.commandLine, tt.expected, s)
			}
		})
	}
}

func TestParseScript(t *testing.T) {
	script := `# a comment
background 0

fill 255 0 0
rect 10 10 20 20
bogus 1
circle 5 5
`
	shapes, err := lang.ParseScript(strings.NewReader(script))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 6")
	assert.Contains(t, err.Error(), "line 7")
	assert.Equal(t, []painter.Shape{
		painter.Background{C: color.NRGBA{A: 255}},
		painter.Fill{C: color.NRGBA{R: 255, A: 255}},
		painter.Rect{X: 10, Y: 10, W: 20, H: 20},
	}, shapes)
}

func TestParseScript_Clean(t *testing.T) {
	shapes, err := lang.ParseScript(strings.NewReader("nostroke\npoint 1 1\n"))
	require.NoError(t, err)
	assert.Len(t, shapes, 2)
}
