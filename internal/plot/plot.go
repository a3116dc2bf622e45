package plot

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/wavefront/internal/camera"
	"github.com/san-kum/wavefront/internal/dynamo"
)

// Style selects which segment each point contributes to a frame.
type Style int

const (
	// Point draws each point from its previous to its current position.
	Point Style = iota
	// Line joins each point to its predecessor in the same frame.
	Line
	// Radial joins each point to the world origin.
	Radial
)

var styleNames = [...]string{"point", "line", "radial"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// Next cycles Point -> Line -> Radial -> Point.
func (s Style) Next() Style { return (s + 1) % Style(len(styleNames)) }

func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(name, n) {
			return Style(i), nil
		}
	}
	return Point, fmt.Errorf("%w: %q", dynamo.ErrUnknownStyle, name)
}

const (
	saturation = 0.8
	value      = 1.0
)

// Color returns the colour of a point at fraction frac of the wavefront;
// one full hue cycle spans the wavefront.
func Color(frac float64) colorful.Color {
	return colorful.Hsv(frac*360, saturation, value)
}

// Segment is one line for the renderer, in viewport coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Color          colorful.Color
	Width          float64
}

// Build projects current (and previous, for Point style) and returns the
// segments of one frame. current and previous must have equal length.
func Build(cam *camera.Camera, vp camera.Viewport, style Style, width float64, current, previous []dynamo.Vec3) []Segment {
	n := len(current)
	segs := make([]Segment, 0, n)
	for i, p := range current {
		var q dynamo.Vec3
		switch style {
		case Point:
			q = previous[i]
		case Line:
			if i == 0 {
				continue
			}
			q = current[i-1]
		case Radial:
			q = dynamo.Origin
		}
		x1, y1 := cam.ToScreen(p, vp)
		x2, y2 := cam.ToScreen(q, vp)
		segs = append(segs, Segment{
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			Color: Color(float64(i) / float64(n)),
			Width: width,
		})
	}
	return segs
}
