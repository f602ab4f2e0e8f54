package storage

import (
	"math/rand"
	"testing"

	"github.com/ecisneros/cosmofig/internal/valley"
)

func sampleField(t *testing.T) *valley.Field {
	t.Helper()

	a := valley.NewAttractor()
	tau := []float64{0.5, 1.0, 1.5, 2.0}
	omega := []float64{1.0, 2.0, 3.0}

	f, err := valley.Evaluate(a, tau, omega, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	return f
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	f := sampleField(t)
	runID, err := st.Save(f, 42)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.GridRows != 3 || meta.GridCols != 4 {
		t.Errorf("expected 3x4 grid, got %dx%d", meta.GridRows, meta.GridCols)
	}
	if meta.TauMin != 0.5 || meta.TauMax != 2.0 {
		t.Errorf("unexpected tau range [%g, %g]", meta.TauMin, meta.TauMax)
	}

	wantTau, wantOmega, wantVar := f.Min()
	if meta.MinTau != wantTau || meta.MinOmega != wantOmega || meta.MinVariance != wantVar {
		t.Errorf("metadata minimum does not match field minimum")
	}
}

func TestLoadField(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	f := sampleField(t)
	runID, err := st.Save(f, 42)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("load field failed: %v", err)
	}

	cols, rows := loaded.Dims()
	if cols != 4 || rows != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", cols, rows)
	}

	// CSV carries 6 decimal places; values round-trip within that precision
	for i := range f.Data {
		for j := range f.Data[i] {
			diff := f.Data[i][j] - loaded.Data[i][j]
			if diff < -5e-7 || diff > 5e-7 {
				t.Fatalf("cell [%d][%d] lost precision: %g vs %g", i, j, f.Data[i][j], loaded.Data[i][j])
			}
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(sampleField(t), 1); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/nope")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("grid_0"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := st.LoadField("grid_0"); err == nil {
		t.Error("expected error for unknown run field")
	}
}
