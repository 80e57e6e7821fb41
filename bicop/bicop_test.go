package bicop

import (
	"testing"

	"vinecop/depmeasures"
	"vinecop/internal/qmc"
)

func TestSimulateRecoversTau(t *testing.T) {
	theta := defaultTheta(t, Clayton, 0.5)
	b, err := NewBicop(Clayton, Rotate0, theta)
	if err != nil {
		t.Fatal(err)
	}
	src := qmc.NewSource([2]uint64{1, 2})
	data := b.Simulate(4000, src)
	u, v := make([]float64, len(data)), make([]float64, len(data))
	for i, d := range data {
		u[i], v[i] = d[0], d[1]
	}
	tau := depmeasures.Tau(u, v)
	if diff := abs(tau - 0.5); diff > 0.05 {
		t.Fatalf("simulated tau %v too far from target 0.5", tau)
	}
}

func TestFitRecoversApproximateParameter(t *testing.T) {
	truth, err := NewBicop(Gaussian, Rotate0, []float64{0.6})
	if err != nil {
		t.Fatal(err)
	}
	src := qmc.NewSource([2]uint64{7, 11})
	data := truth.Simulate(3000, src)

	fitted, err := Fit(data, Gaussian, Rotate0, DefaultControls())
	if err != nil {
		t.Fatal(err)
	}
	if diff := abs(fitted.Parameters()[0] - 0.6); diff > 0.05 {
		t.Fatalf("fitted rho %v too far from truth 0.6", fitted.Parameters()[0])
	}
}

func TestSelectPrefersDependenceOverIndependence(t *testing.T) {
	truth, err := NewBicop(Clayton, Rotate0, []float64{3.0})
	if err != nil {
		t.Fatal(err)
	}
	src := qmc.NewSource([2]uint64{3, 5})
	data := truth.Simulate(2000, src)

	controls := DefaultControls()
	controls.FamilySet = []Family{Indep, Gaussian, Clayton, Gumbel}
	best, err := Select(data, controls)
	if err != nil {
		t.Fatal(err)
	}
	if best.Family() == Indep {
		t.Fatal("selection should reject independence for strongly dependent data")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	b, err := NewBicop(Frank, Rotate0, []float64{3.0})
	if err != nil {
		t.Fatal(err)
	}
	node := b.ToNamedNode()
	back, err := FromNamedNode(node)
	if err != nil {
		t.Fatal(err)
	}
	if back.Family() != b.Family() || back.Parameters()[0] != b.Parameters()[0] {
		t.Fatalf("serialize round trip mismatch: %v vs %v", back, b)
	}
}
