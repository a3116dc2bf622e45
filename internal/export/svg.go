package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/wavefront/internal/plot"
	"github.com/san-kum/wavefront/internal/session"
	"github.com/san-kum/wavefront/internal/viz"
)

const background = "#0a0a0a"

// FrameToSVG renders every finite segment of f as one coloured <line>.
func FrameToSVG(f session.Frame, width, height int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke-linecap="round">
`, width, height, width, height, background)

	for _, s := range f.Segments {
		if !finite(s) {
			continue
		}
		fmt.Fprintf(&sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g"/>
`, s.X1, s.Y1, s.X2, s.Y2, s.Color.Hex(), strokeWidth(s))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteFrameSVG writes FrameToSVG to w.
func WriteFrameSVG(w io.Writer, f session.Frame, width, height int) error {
	_, err := io.WriteString(w, FrameToSVG(f, width, height))
	return err
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot
// in its cell colour.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width, height := canvas.Bounds()
	w, h := float64(width)*scale, float64(height)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, background)

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := int(canvas.Grid[row][col] - 0x2800)
			if pattern <= 0 {
				continue
			}
			fill := canvas.Colors[row][col].Hex()
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill)
					}
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func finite(s plot.Segment) bool {
	for _, v := range [4]float64{s.X1, s.Y1, s.X2, s.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func strokeWidth(s plot.Segment) float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}
