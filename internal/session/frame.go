package session

import "github.com/san-kum/wavefront/internal/plot"

// Frame is everything a renderer needs for one draw.
type Frame struct {
	Segments []plot.Segment
	Status   Status
}

// Status holds the presentation strings of a frame.
type Status struct {
	FPS      string
	Params   string
	Speed    string
	Camera   string
	Style    string
	History  string
	Controls string
	Paused   bool
	Metrics  map[string]float64
}

// Lines returns the status strings in display order.
func (s Status) Lines() []string {
	return []string{s.FPS, s.Params, s.Camera, s.Speed, s.Style, s.History}
}
