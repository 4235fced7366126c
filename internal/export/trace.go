package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/san-kum/scenecore/internal/sim"
)

// RunSummary is the JSON form of a headless run.
type RunSummary struct {
	Frames  int                `json:"frames"`
	Dt      float64            `json:"dt"`
	Seed    int64              `json:"seed"`
	Metrics map[string]float64 `json:"metrics"`
	Errors  []string           `json:"errors"`
}

func Summarize(result *sim.Result, dt float64, seed int64) RunSummary {
	s := RunSummary{
		Frames:  result.FramesRun,
		Dt:      dt,
		Seed:    seed,
		Metrics: result.Metrics,
		Errors:  make([]string, len(result.Errors)),
	}
	for i, err := range result.Errors {
		s.Errors[i] = err.Error()
	}
	return s
}

// WriteTraceCSV writes one row per frame: time, camera position, group
// rotation, selection and every metric series in name order.
func WriteTraceCSV(w io.Writer, result *sim.Result) error {
	names := make([]string, 0, len(result.Series))
	for name := range result.Series {
		names = append(names, name)
	}
	sort.Strings(names)

	cw := csv.NewWriter(w)
	header := append([]string{"frame", "time", "cam_x", "cam_y", "cam_z", "group_rotation", "selected"}, names...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i := 0; i < result.FramesRun; i++ {
		p := result.CameraPath[i]
		row[0] = strconv.Itoa(i)
		row[1] = formatFloat(result.Times[i])
		row[2] = formatFloat(p.X)
		row[3] = formatFloat(p.Y)
		row[4] = formatFloat(p.Z)
		row[5] = formatFloat(result.GroupRotations[i])
		row[6] = strconv.Itoa(result.Selections[i])
		for j, name := range names {
			v := 0.0
			if s := result.Series[name]; i < len(s) {
				v = s[i]
			}
			row[7+j] = formatFloat(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
