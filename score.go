package colocation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// epsilonSmall guards divide-by-zero in ratio computations; epsilonDelta
// gates the RI Gaussian kernel when the dataset's dispersion is
// degenerate. Both values match original_source/include/constants.h's
// EPSILON_SMALL / EPSILON_DELTA.
const (
	epsilonSmall = 1e-9
	epsilonDelta = 1e-9
)

// participation counts, for a given feature f in colocation C, the number
// of distinct object ids appearing in f's column of T(C).
func participation(dataset *Dataset, c Colocation, table *Table, f string) int {
	idx := -1
	for i, ft := range c {
		if ft == f {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0
	}

	seen := make(map[string]struct{})
	for _, row := range table.Rows(c) {
		if idx < len(row) {
			seen[dataset.Objects[row[idx]].ID] = struct{}{}
		}
	}
	return len(seen)
}

// PR computes the participation ratio of feature f in colocation C:
// (# distinct instances of f in column f of T(C)) / count(f).
// Returns 0 if f is not in C or count(f) is 0.
func PR(dataset *Dataset, catalog *FeatureCatalog, c Colocation, table *Table, f string) float64 {
	total := catalog.Count(f)
	if total == 0 {
		return 0
	}
	return float64(participation(dataset, c, table, f)) / float64(total)
}

// PI computes the unweighted participation index of C: min_f PR(f, C).
// Used only inside the Lemma-3 upper bound (spec.md §4.5.3), never as the
// pass/fail gate (that is WPI, see selectPrevalent).
func PI(dataset *Dataset, catalog *FeatureCatalog, c Colocation, table *Table) float64 {
	if len(c) == 0 {
		return 0
	}
	minPR := math.Inf(1)
	for _, f := range c {
		pr := PR(dataset, catalog, c, table, f)
		if pr < minPR {
			minPR = pr
		}
	}
	return minPR
}

// v computes v(f, C) = count(f) / min_{g in C} count(g), always >= 1 for
// f in C with count(f) >= min count.
func v(catalog *FeatureCatalog, c Colocation, f string) float64 {
	minCount := minCountOf(catalog, c)
	if minCount <= 0 {
		return 0
	}
	return float64(catalog.Count(f)) / float64(minCount)
}

// minCountOf returns min_{g in C} count(g), or 0 if C is empty or any
// member has count 0.
func minCountOf(catalog *FeatureCatalog, c Colocation) int {
	minCount := -1
	for _, f := range c {
		cnt := catalog.Count(f)
		if cnt == 0 {
			return 0
		}
		if minCount == -1 || cnt < minCount {
			minCount = cnt
		}
	}
	if minCount == -1 {
		return 0
	}
	return minCount
}

// Delta computes δ, the dataset-wide dispersion constant: the average
// ratio of instance counts between all pairs of features sorted ascending
// by count, per spec.md §3:
//
//	δ = (2 / (m(m-1))) * Σ_{i<j} count(f_j) / count(f_i)
//
// δ is a constant, computed once per mining run (spec.md §3 invariant iv).
func Delta(catalog *FeatureCatalog) float64 {
	types := catalog.TypesSorted() // already ascending by count, then lexicographic
	m := len(types)
	if m < 2 {
		return 0
	}

	counts := make([]float64, m)
	for i, t := range types {
		counts[i] = float64(catalog.Count(t))
	}

	ratios := make([]float64, 0, m*(m-1)/2)
	for i := 0; i < m; i++ {
		denom := counts[i]
		if denom == 0 {
			denom = epsilonSmall
		}
		for j := i + 1; j < m; j++ {
			ratios = append(ratios, counts[j]/denom)
		}
	}

	factor := 2.0 / (float64(m) * float64(m-1))
	return factor * floats.Sum(ratios)
}

// RI computes the rare intensity of feature f in colocation C:
//
//	RI(f, C) = exp( -(v(f, C) - 1)^2 / (2 * δ^2) )
//
// Returns 0 if δ <= ε, f is not in C, or the minimum count in C is 0.
func RI(catalog *FeatureCatalog, c Colocation, f string, delta float64) float64 {
	if delta <= epsilonDelta {
		return 0
	}

	inC := false
	for _, ft := range c {
		if ft == f {
			inC = true
			break
		}
	}
	if !inC {
		return 0
	}

	if minCountOf(catalog, c) <= 0 {
		return 0
	}

	vVal := v(catalog, c, f)
	numerator := (vVal - 1.0) * (vVal - 1.0)
	denominator := 2.0 * delta * delta
	return math.Exp(-numerator / denominator)
}

// Weight computes w(f, C) = 1/RI(f, C) when RI > ε, else 0 — treating a
// near-zero RI as an infinite weight would let numerically-unstable
// candidates pass; instead the candidate cannot pass any minPrev > 0
// (spec.md §9 open question on numerical stability).
func Weight(catalog *FeatureCatalog, c Colocation, f string, delta float64) float64 {
	ri := RI(catalog, c, f, delta)
	if ri <= epsilonSmall {
		return 0
	}
	return 1.0 / ri
}

// WPR computes the weighted participation ratio WPR(f, C) = PR(f,C)*w(f,C).
func WPR(dataset *Dataset, catalog *FeatureCatalog, c Colocation, table *Table, f string, delta float64) float64 {
	return PR(dataset, catalog, c, table, f) * Weight(catalog, c, f, delta)
}

// WPI computes the weighted participation index WPI(C) = min_f WPR(f, C),
// treating a feature with no rows (missing participation) as contributing
// WPR=0. This is the sole pass/fail gate for selectPrevalent (spec.md
// §4.5.5).
func WPI(dataset *Dataset, catalog *FeatureCatalog, c Colocation, table *Table, delta float64) float64 {
	if len(c) == 0 {
		return 0
	}
	minWPR := math.Inf(1)
	for _, f := range c {
		wpr := WPR(dataset, catalog, c, table, f, delta)
		if wpr < minWPR {
			minWPR = wpr
		}
	}
	return minWPR
}
