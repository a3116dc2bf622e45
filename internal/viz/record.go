package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"os"
)

const (
	dotSize     = 3
	maxRecorded = 900
)

// Recorder accumulates canvas snapshots and writes them as an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	delay  int
}

// NewRecorder returns a recorder whose frames are shown for 1/fps seconds.
func NewRecorder(fps int) *Recorder {
	delay := 2
	if fps > 0 {
		delay = max(100/fps, 1)
	}
	return &Recorder{delay: delay}
}

func (r *Recorder) Len() int { return len(r.frames) }

// Capture rasterizes every lit braille dot of c as a dotSize square in its
// cell colour. Captures beyond maxRecorded are dropped.
func (r *Recorder) Capture(c *Canvas) {
	if len(r.frames) >= maxRecorded {
		return
	}
	w, h := c.Bounds()
	img := image.NewPaletted(image.Rect(0, 0, w*dotSize, h*dotSize), palette.Plan9)
	black := uint8(img.Palette.Index(color.Black))
	for i := range img.Pix {
		img.Pix[i] = black
	}
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - blank)
			if pattern == 0 {
				continue
			}
			idx := uint8(img.Palette.Index(c.Colors[row][col]))
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					x0, y0 := (col*2+dx)*dotSize, (row*4+dy)*dotSize
					for py := 0; py < dotSize; py++ {
						for px := 0; px < dotSize; px++ {
							img.SetColorIndex(x0+px, y0+py, idx)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Save writes the captured frames to path and clears the recorder.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	r.frames = r.frames[:0]
	return nil
}
