// Package viz renders the two diagnostic plots a vine-copula fit is
// usually eyeballed against: a pair copula's density contour, and a
// fitted vine's tree sequence. Plotting is gonum/plot end to end, the
// same library and save-to-PNG convention the source repo uses for its
// own line plots.
package viz

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"vinecop/bicop"
	"vinecop/vinecop"
)

const (
	plotH = 4 * vg.Inch
	plotW = 4 * vg.Inch
)

var (
	lineColor   = color.RGBA{R: 37, G: 150, B: 190, A: 255}
	markerShape = draw.CircleGlyph{}
)

// densityGrid implements plotter.GridXYZ over a resolution x resolution
// sampling of a pair copula's density on (0,1)^2, clamped away from the
// boundary where several families diverge.
type densityGrid struct {
	res  int
	xs   []float64
	vals [][]float64
}

func newDensityGrid(bc *bicop.Bicop, res int) *densityGrid {
	if res < 2 {
		res = 2
	}
	xs := make([]float64, res)
	for i := range xs {
		xs[i] = (float64(i) + 0.5) / float64(res)
	}
	vals := make([][]float64, res)
	for i := range vals {
		vals[i] = make([]float64, res)
		for j := range vals[i] {
			vals[i][j] = bc.PDF([2]float64{xs[i], xs[j]})
		}
	}
	return &densityGrid{res: res, xs: xs, vals: vals}
}

func (g *densityGrid) Dims() (c, r int)   { return g.res, g.res }
func (g *densityGrid) X(c int) float64    { return g.xs[c] }
func (g *densityGrid) Y(r int) float64    { return g.xs[r] }
func (g *densityGrid) Z(c, r int) float64 { return g.vals[c][r] }

// ContourPlot renders a pair copula's density as a filled contour plot
// over the unit square and saves it as a PNG at path. res controls the
// sampling grid resolution (vinecopulib's own contour plots default to
// a comparable 30x30 grid).
func ContourPlot(bc *bicop.Bicop, path string, res int) error {
	grid := newDensityGrid(bc, res)

	maxZ := 0.0
	for _, row := range grid.vals {
		for _, z := range row {
			if z > maxZ && !math.IsInf(z, 1) {
				maxZ = z
			}
		}
	}
	levels := make([]float64, 10)
	for i := range levels {
		levels[i] = maxZ * float64(i+1) / float64(len(levels)+1)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s density", bc.Family())
	p.X.Label.Text = "u1"
	p.Y.Label.Text = "u2"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pal := moreland.SmoothBlueRed()
	contour := plotter.NewContour(grid, levels, pal)
	p.Add(contour)

	return p.Save(plotW, plotH, path)
}

// TreeSequencePlot draws a fitted vine's tree sequence: one row per
// tree, a node per edge placed at its owning column, connected to its
// column neighbor. It mirrors VineCopula's plot.vinecop tree view in
// spirit, laid out level by level rather than as a force-directed
// graph, since the vine structure already fixes a natural row ordering.
func TreeSequencePlot(vc *vinecop.Vinecop, path string) error {
	mat := vc.Matrix()
	d := mat.Dim()

	p := plot.New()
	p.Title.Text = "vine tree sequence"
	p.X.Label.Text = "column"
	p.Y.Label.Text = "tree"
	p.Y.Min, p.Y.Max = -0.5, float64(d-1)-0.5
	p.X.Min, p.X.Max = -0.5, float64(d-1)-0.5

	for t := 0; t < d-1; t++ {
		rowPts := make(plotter.XYs, 0, d-1-t)
		rowLabels := make([]string, 0, d-1-t)
		for j := 0; j < d-1-t; j++ {
			e := mat.Column(j)[t]
			rowPts = append(rowPts, plotter.XY{X: float64(j), Y: float64(t)})
			rowLabels = append(rowLabels, fmt.Sprintf("%d,%d", e.Var1, e.Var2))
		}
		for j := 1; j < len(rowPts); j++ {
			line, err := plotter.NewLine(plotter.XYs{rowPts[j-1], rowPts[j]})
			if err != nil {
				return err
			}
			line.Color = lineColor
			p.Add(line)
		}
		scatter, err := plotter.NewScatter(rowPts)
		if err != nil {
			return err
		}
		scatter.Shape = markerShape
		scatter.Color = lineColor
		p.Add(scatter)

		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: rowPts, Labels: rowLabels})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	return p.Save(plotW*1.5, plotH, path)
}
