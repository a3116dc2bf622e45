package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/wavefront/internal/sim"
)

// SeriesToCSV writes one row per recorded tick: the elapsed tick count
// followed by each metric in name order.
func SeriesToCSV(w io.Writer, r *sim.Result) error {
	cw := csv.NewWriter(w)
	names := r.Names()

	header := append([]string{"time"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, t := range r.Times {
		row := []string{strconv.FormatFloat(t, 'f', 0, 64)}
		for _, name := range names {
			row = append(row, strconv.FormatFloat(r.Series[name][i], 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
