// Package export writes a scene frame or a run trace to files.
package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/scenecore/internal/camera"
	"github.com/san-kum/scenecore/internal/capability"
	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/layout"
	"github.com/san-kum/scenecore/internal/quality"
	"github.com/san-kum/scenecore/internal/sim"
)

// Snapshot is a self-contained copy of one frame and the layouts it was
// rendered from.
type Snapshot struct {
	Report    capability.Report      `json:"report"`
	Settings  quality.Settings       `json:"settings"`
	Graph     layout.Graph           `json:"graph"`
	Cards     []layout.CardPlacement `json:"cards"`
	Selected  int                    `json:"selected"`
	Frame     int                    `json:"frame"`
	Time      float64                `json:"time"`
	Pose      camera.Pose            `json:"pose"`
	Particles []dynamo.Vec3          `json:"particles"`
}

// NewSnapshot copies the session state as of frame f.
func NewSnapshot(s *sim.Session, f sim.Frame) Snapshot {
	snap := Snapshot{
		Report:    s.Report(),
		Settings:  s.Settings(),
		Graph:     s.Graph(),
		Cards:     append([]layout.CardPlacement(nil), s.Cards()...),
		Selected:  s.Selected(),
		Frame:     f.Index,
		Time:      f.Time,
		Pose:      f.Pose,
		Particles: []dynamo.Vec3{},
	}
	if f.Particles != nil {
		snap.Particles = make([]dynamo.Vec3, f.Particles.Len())
		for i := range snap.Particles {
			snap.Particles[i] = f.Particles.Position(i)
		}
	}
	if snap.Cards == nil {
		snap.Cards = []layout.CardPlacement{}
	}
	return snap
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
