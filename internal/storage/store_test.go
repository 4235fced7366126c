package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/scenecore/internal/sim"
)

func testRun(t *testing.T, frames int) *sim.Result {
	t.Helper()
	result, err := sim.NewRunner(sim.NewSession(nil, nil)).Run(context.Background(), frames, 1.0/60)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := testRun(t, 12)
	result.Metrics["settled"] = 0.5

	runID, err := st.Save(RunMetadata{Profile: "desktop-rtx", Tier: "high", Seed: 42, Dt: 1.0 / 60}, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID || meta.Profile != "desktop-rtx" || meta.Seed != 42 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Frames != 12 {
		t.Errorf("expected 12 frames, got %d", meta.Frames)
	}
	if meta.Metrics["settled"] != 0.5 {
		t.Errorf("expected settled 0.5, got %f", meta.Metrics["settled"])
	}

	header, cols, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(header) < 7 || header[0] != "frame" {
		t.Fatalf("unexpected header: %v", header)
	}
	if len(cols["time"]) != 12 {
		t.Errorf("expected 12 samples, got %d", len(cols["time"]))
	}
	if cols["frame"][11] != 11 {
		t.Errorf("expected last frame 11, got %v", cols["frame"][11])
	}
}

func TestStoreUniqueIDs(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	result := testRun(t, 2)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, err := st.Save(RunMetadata{Profile: "p"}, result)
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate run id %s", id)
		}
		seen[id] = true
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("expected empty list, got %v, %v", runs, err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "junk", metadataFile), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunMetadata{Profile: "p"}, testRun(t, 1)); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("expected corrupt run to be skipped, got %d runs", len(runs))
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrNoRun) {
		t.Errorf("expected ErrNoRun, got %v", err)
	}
	if _, _, err := st.LoadTrace("nope"); !errors.Is(err, ErrNoRun) {
		t.Errorf("expected ErrNoRun, got %v", err)
	}
}
