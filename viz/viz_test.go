package viz

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vinecop/bicop"
	"vinecop/internal/dissmann"
	"vinecop/internal/qmc"
	"vinecop/vinecop"
)

func TestContourPlotWritesFile(t *testing.T) {
	bc, err := bicop.NewBicop(bicop.Clayton, bicop.Rotate0, []float64{2.0})
	if err != nil {
		t.Fatalf("NewBicop: %v", err)
	}
	path := filepath.Join(t.TempDir(), "contour.png")
	if err := ContourPlot(bc, path, 20); err != nil {
		t.Fatalf("ContourPlot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestTreeSequencePlotWritesFile(t *testing.T) {
	src := qmc.NewSource([2]uint64{101, 103})
	data := src.UniformMatrix(300, 4)
	vc, err := vinecop.Select(context.Background(), data, dissmann.DefaultControls())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	path := filepath.Join(t.TempDir(), "trees.png")
	if err := TreeSequencePlot(vc, path); err != nil {
		t.Fatalf("TreeSequencePlot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}
