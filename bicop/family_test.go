package bicop

import "testing"

func TestParseFamilyRoundTrip(t *testing.T) {
	for _, f := range AllFamilies() {
		parsed, err := ParseFamily(f.String())
		if err != nil {
			t.Fatalf("ParseFamily(%s): %v", f.String(), err)
		}
		if parsed != f {
			t.Fatalf("round trip mismatch: %s -> %s", f, parsed)
		}
	}
}

func TestParseFamilyUnknown(t *testing.T) {
	if _, err := ParseFamily("not-a-family"); err == nil {
		t.Fatal("expected error for unknown family")
	}
}

func TestParametricFamiliesExcludesKernel(t *testing.T) {
	for _, f := range ParametricFamilies() {
		if f == Kernel {
			t.Fatal("ParametricFamilies must not include Kernel")
		}
	}
}

func TestRotationlessFamilies(t *testing.T) {
	for _, f := range []Family{Indep, Gaussian, Student, Frank, Kernel} {
		if !f.IsRotationless() {
			t.Fatalf("%s should be rotationless", f)
		}
	}
	for _, f := range []Family{Clayton, Gumbel, Joe, BB1, BB6, BB7, BB8} {
		if f.IsRotationless() {
			t.Fatalf("%s should take rotations", f)
		}
	}
}
