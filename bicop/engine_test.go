package bicop

import "testing"

func testFamilies() []Family {
	return []Family{Gaussian, Student, Clayton, Gumbel, Frank, Joe, BB1, BB6, BB7, BB8}
}

func defaultTheta(t *testing.T, f Family, tau float64) []float64 {
	t.Helper()
	eng := newEngine(f)
	te, ok := eng.(tauEngine)
	if !ok {
		t.Fatalf("%s has no tauEngine", f)
	}
	theta, err := te.tauToParameters(tau)
	if err != nil {
		t.Fatalf("%s.tauToParameters(%v): %v", f, tau, err)
	}
	return theta
}

func TestHFunc1InverseRoundTrip(t *testing.T) {
	grid := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	for _, f := range testFamilies() {
		theta := defaultTheta(t, f, 0.4)
		b, err := NewBicop(f, Rotate0, theta)
		if err != nil {
			t.Fatalf("%s: NewBicop: %v", f, err)
		}
		for _, u1 := range grid {
			for _, v := range grid {
				q := b.HFunc1([2]float64{u1, v})
				vBack := b.HInv1(u1, q)
				if diff := abs(vBack - v); diff > 1e-3 {
					t.Errorf("%s: HInv1(HFunc1(%v,%v))=%v, want ~%v (diff %v)", f, u1, v, vBack, v, diff)
				}
			}
		}
	}
}

func TestHFunc2InverseRoundTrip(t *testing.T) {
	grid := []float64{0.2, 0.5, 0.8}
	for _, f := range testFamilies() {
		theta := defaultTheta(t, f, -0.3)
		b, err := NewBicop(f, Rotate0, theta)
		if err != nil {
			t.Fatalf("%s: NewBicop: %v", f, err)
		}
		for _, u := range grid {
			for _, v2 := range grid {
				q := b.HFunc2([2]float64{u, v2})
				uBack := b.HInv2(v2, q)
				if diff := abs(uBack - u); diff > 1e-3 {
					t.Errorf("%s: HInv2 round trip off by %v at (%v,%v)", f, diff, u, v2)
				}
			}
		}
	}
}

func TestTauRoundTrip(t *testing.T) {
	for _, f := range testFamilies() {
		eng := newEngine(f)
		te := eng.(tauEngine)
		for _, tau := range []float64{0.2, 0.4, 0.6} {
			theta, err := te.tauToParameters(tau)
			if err != nil {
				t.Fatalf("%s: tauToParameters: %v", f, err)
			}
			got, err := te.parametersToTau(theta)
			if err != nil {
				t.Fatalf("%s: parametersToTau: %v", f, err)
			}
			if diff := abs(got - tau); diff > 0.05 {
				t.Errorf("%s: tau round trip %v -> theta -> %v (diff %v)", f, tau, got, diff)
			}
		}
	}
}

func TestRotatedHFuncInverseRoundTrip(t *testing.T) {
	grid := []float64{0.2, 0.5, 0.8}
	for _, f := range []Family{Clayton, Gumbel, Joe, BB1} {
		theta := defaultTheta(t, f, 0.4)
		for _, r := range []Rotation{Rotate0, Rotate90, Rotate180, Rotate270} {
			b, err := NewBicop(f, r, theta)
			if err != nil {
				t.Fatalf("%s rot %d: NewBicop: %v", f, r, err)
			}
			for _, u1 := range grid {
				for _, v := range grid {
					q1 := b.HFunc1([2]float64{u1, v})
					vBack := b.HInv1(u1, q1)
					if diff := abs(vBack - v); diff > 1e-3 {
						t.Errorf("%s rot %d: HInv1(HFunc1(%v,%v))=%v, want ~%v (diff %v)", f, r, u1, v, vBack, v, diff)
					}
					q2 := b.HFunc2([2]float64{u1, v})
					uBack := b.HInv2(v, q2)
					if diff := abs(uBack - u1); diff > 1e-3 {
						t.Errorf("%s rot %d: HInv2 round trip off by %v at (%v,%v)", f, r, diff, u1, v)
					}
				}
			}
		}
	}
}

func TestRotationPDFPositive(t *testing.T) {
	for _, f := range []Family{Clayton, Gumbel, Joe, BB1} {
		theta := defaultTheta(t, f, 0.4)
		for _, r := range []Rotation{Rotate0, Rotate90, Rotate180, Rotate270} {
			b, err := NewBicop(f, r, theta)
			if err != nil {
				t.Fatalf("%s rot %d: %v", f, r, err)
			}
			d := b.PDF([2]float64{0.3, 0.7})
			if d < 0 {
				t.Errorf("%s rot %d: negative density %v", f, r, d)
			}
		}
	}
}

func TestIndependencePDFIsOne(t *testing.T) {
	b := New()
	if d := b.PDF([2]float64{0.2, 0.8}); d != 1 {
		t.Fatalf("independence density should be 1, got %v", d)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
