package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/wavefront/internal/plot"
)

var red = colorful.Color{R: 1}

func lit(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for p := int(r - blank); p != 0; p &= p - 1 {
				n++
			}
		}
	}
	return n
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0, red)
	c.Set(3, 3, red)
	if c.Grid[0][0] != blank|0x1 {
		t.Errorf("cell 0 = %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != blank|0x80 {
		t.Errorf("cell 1 = %U", c.Grid[0][1])
	}
	if c.Colors[0][1] != red {
		t.Error("cell colour not recorded")
	}

	c.Set(-1, 0, red)
	c.Set(4, 0, red)
	c.Set(0, 4, red)
	if lit(c) != 2 {
		t.Errorf("out-of-range sets changed the grid: %d dots", lit(c))
	}

	c.Clear()
	if lit(c) != 0 || c.Colors[0][1] != (colorful.Color{}) {
		t.Error("clear left lit dots")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"horizontal", 0, 0, 9, 0, 10},
		{"vertical", 2, 0, 2, 7, 8},
		{"diagonal", 0, 0, 7, 7, 8},
		{"reversed", 9, 0, 0, 0, 10},
		{"point", 4, 4, 4, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 4)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, red)
			if got := lit(c); got != tt.want {
				t.Errorf("expected %d dots, got %d", tt.want, got)
			}
		})
	}
}

func TestCanvasDrawSegment(t *testing.T) {
	tests := []struct {
		name string
		seg  plot.Segment
		want int
	}{
		{"inside", plot.Segment{X1: 0, Y1: 0, X2: 9, Y2: 0}, 10},
		{"clipped", plot.Segment{X1: -100, Y1: 2, X2: 1e12, Y2: 2}, 20},
		{"outside", plot.Segment{X1: -5, Y1: -5, X2: -1, Y2: -9}, 0},
		{"nan", plot.Segment{X1: math.NaN(), Y1: 0, X2: 3, Y2: 3}, 0},
		{"inf", plot.Segment{X1: 1, Y1: 1, X2: math.Inf(1), Y2: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 4)
			tt.seg.Color = red
			c.DrawSegment(tt.seg)
			if got := lit(c); got != tt.want {
				t.Errorf("expected %d dots, got %d", tt.want, got)
			}
		})
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7, red)
	c.Clear()
	if lit(c) != 0 {
		t.Error("clear left dots behind")
	}
	if c.Colors[1][1] != (colorful.Color{}) {
		t.Error("clear left colours behind")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, red)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if []rune(lines[0])[0] != '⠁' {
		t.Errorf("unexpected first cell %q", lines[0])
	}
	if !strings.Contains(c.Render(), "⠁") {
		t.Error("render lost the lit cell")
	}
}

func TestClip(t *testing.T) {
	x0, y0, x1, y1, ok := clip(-10, 5, 30, 5, 19, 15)
	if !ok {
		t.Fatal("expected visible segment")
	}
	if x0 != 0 || x1 != 19 || y0 != 5 || y1 != 5 {
		t.Errorf("clip = (%v,%v)-(%v,%v)", x0, y0, x1, y1)
	}
}
