package colocation

import "sort"

// generateCandidates produces every size-(k) candidate from size-(k-1)
// prevalent colocations (spec.md §4.5.2). For each pair (A, B) with i<j in
// prevPrevalent: if A's and B's (k-2)-prefixes are equal, the candidate is
// that prefix plus both last features, so its last feature is whichever of
// A's and B's last features has the higher count — the feature ranked later
// in ≺. Results are deduplicated and remain ≺-sorted.
func generateCandidates(catalog *FeatureCatalog, prevPrevalent []Colocation) []Colocation {
	seen := make(map[string]Colocation)

	for i := 0; i < len(prevPrevalent); i++ {
		for j := i + 1; j < len(prevPrevalent); j++ {
			a, b := prevPrevalent[i], prevPrevalent[j]
			if len(a) == 0 || len(a) != len(b) {
				continue
			}

			if !prefixEqual(a, b) {
				continue
			}

			lastA, lastB := a[len(a)-1], b[len(b)-1]
			if lastA == lastB {
				// Identical size-(k-1) colocations; no new candidate.
				continue
			}

			// The new candidate is the shared prefix plus both last
			// features; after sorting, its last feature is whichever of
			// lastA/lastB is ranked later in ≺ (spec.md §4.5.2).
			candidate := make(Colocation, 0, len(a)+1)
			candidate = append(candidate, a[:len(a)-1]...)
			candidate = append(candidate, lastA, lastB)
			catalog.SortFeatures(candidate)

			if hasDuplicateFeature(candidate) {
				continue
			}

			seen[candidate.key()] = candidate
		}
	}

	out := make([]Colocation, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })
	return out
}

// prefixEqual reports whether a and b share the same (len-1)-prefix.
func prefixEqual(a, b Colocation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hasDuplicateFeature reports whether c contains a repeated feature type.
func hasDuplicateFeature(c Colocation) bool {
	seen := make(map[string]struct{}, len(c))
	for _, f := range c {
		if _, ok := seen[f]; ok {
			return true
		}
		seen[f] = struct{}{}
	}
	return false
}

// filterCandidates applies the Lemma-2 / Lemma-3 pruning of spec.md
// §4.5.3 to every candidate of size k. Only called for k > 2 (at k=2 this
// stage is skipped because Lemma 3 needs a non-empty size-1 table, which
// is trivially PI=1).
//
// For each candidate C and each subset S formed by deleting position i:
//   - i != 0 (Lemma 2): S still contains f_min = C[0]. Reject C if S is
//     not in prevPrevalent.
//   - i == 0 (Lemma 3): S = C without f_min. Reject C if
//     PI(S) * w(f_max, C) < minPrev, where f_max = C[len(C)-1] and PI(S)
//     is computed from the already-materialized prevTables[S].
func filterCandidates(dataset *Dataset, catalog *FeatureCatalog, candidates []Colocation, prevPrevalent []Colocation, prevTables *Table, minPrev, delta float64) []Colocation {
	prevSet := make(map[string]struct{}, len(prevPrevalent))
	for _, c := range prevPrevalent {
		prevSet[c.key()] = struct{}{}
	}

	var out []Colocation
	for _, c := range candidates {
		if passesLemmas(dataset, catalog, c, prevSet, prevTables, minPrev, delta) {
			out = append(out, c)
		}
	}
	return out
}

func passesLemmas(dataset *Dataset, catalog *FeatureCatalog, c Colocation, prevSet map[string]struct{}, prevTables *Table, minPrev, delta float64) bool {
	if len(c) == 0 {
		return false
	}
	fMax := c[len(c)-1]

	for i := range c {
		s := c.withoutIndex(i)
		if i != 0 {
			if _, ok := prevSet[s.key()]; !ok {
				return false
			}
			continue
		}

		bound := PI(dataset, catalog, s, prevTables) * Weight(catalog, c, fMax, delta)
		if bound < minPrev {
			return false
		}
	}
	return true
}
