package bicop

import (
	"context"
	"sync"

	"vinecop/internal/pool"
	"vinecop/internal/vineerr"
)

// candidateRotations returns the rotations worth trying for a family:
// just 0 for rotationless families, all four otherwise (unless the
// caller disabled rotation search).
func candidateRotations(f Family, allowRotations bool) []Rotation {
	if f.IsRotationless() || !allowRotations {
		return []Rotation{Rotate0}
	}
	return []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}
}

// Select fits every (family, rotation) combination in controls.FamilySet
// and returns the one minimizing the configured information criterion,
// fanning candidates out across controls.Nprocs workers.
func Select(data [][2]float64, controls ControlsBicop) (*Bicop, error) {
	if len(data) == 0 {
		return nil, vineerr.Domain("Select", "no observations")
	}
	type candidate struct {
		family   Family
		rotation Rotation
	}
	var candidates []candidate
	for _, f := range controls.FamilySet {
		for _, r := range candidateRotations(f, controls.AllowRotations) {
			candidates = append(candidates, candidate{f, r})
		}
	}

	var mu sync.Mutex
	var best *Bicop
	bestScore := 0.0

	ctx := context.Background()
	n := pool.Clamp(controls.Nprocs, len(candidates))
	err := pool.Map(ctx, n, candidates, func(_ int, c candidate) error {
		fitted, err := Fit(data, c.family, c.rotation, controls)
		if err != nil {
			return nil
		}
		score := criterionScore(fitted, data, controls)
		mu.Lock()
		defer mu.Unlock()
		if best == nil || score < bestScore {
			best, bestScore = fitted, score
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, vineerr.State("Select", "no candidate family could be fit")
	}
	return best, nil
}

func criterionScore(b *Bicop, data [][2]float64, controls ControlsBicop) float64 {
	switch controls.SelectionCriterion {
	case CriterionBIC:
		return b.BIC(data)
	case CriterionMBIC:
		return b.MBIC(data, controls.PriorProbability)
	default:
		return b.AIC(data)
	}
}
