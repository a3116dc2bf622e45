package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/wavefront/internal/sim"
)

type ExportData struct {
	Params     string               `json:"params"`
	Integrator string               `json:"integrator"`
	FrameDt    float64              `json:"frame_dt"`
	Steps      int                  `json:"steps"`
	Times      []float64            `json:"times"`
	Series     map[string][]float64 `json:"series"`
	Metrics    map[string]float64   `json:"metrics"`
	Final      []*[3]float64        `json:"final"`
}

// ResultToJSON writes r as indented JSON. Non-finite final positions are
// written as null since JSON has no NaN.
func ResultToJSON(w io.Writer, params, integrator string, frameDt float64, r *sim.Result) error {
	data := ExportData{
		Params:     params,
		Integrator: integrator,
		FrameDt:    frameDt,
		Steps:      r.Steps,
		Times:      r.Times,
		Series:     r.Series,
		Metrics:    r.Metrics,
		Final:      make([]*[3]float64, len(r.Final)),
	}
	for i, p := range r.Final {
		if p.IsFinite() {
			data.Final[i] = &[3]float64{p.X, p.Y, p.Z}
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
