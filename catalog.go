package colocation

import "sort"

// FeatureCatalog computes, for a Dataset, the set of distinct feature types
// and a count per type, plus the total order ≺ derived from those counts.
// The ordering is fixed for the entire mining run; all downstream code
// (neighborhoods, NR-tree, candidate generation) depends on it.
type FeatureCatalog struct {
	counts      map[string]int
	typesSorted []string
}

// NewFeatureCatalog builds a catalog from a dataset's objects. Feature type
// for each object is taken as given, never derived. Fails with
// ErrEmptyInput if the dataset has no objects (NewDataset already rejects
// this, but the catalog is defensive in case it is ever built standalone).
func NewFeatureCatalog(objects []Object) (*FeatureCatalog, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyInput
	}

	counts := make(map[string]int)
	for _, o := range objects {
		counts[o.Type]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return less(types[i], types[j], counts)
	})

	return &FeatureCatalog{counts: counts, typesSorted: types}, nil
}

// less implements the ≺ comparator: ascending by (count(type), type).
func less(a, b string, counts map[string]int) bool {
	ca, cb := counts[a], counts[b]
	if ca != cb {
		return ca < cb
	}
	return a < b
}

// Count returns the global instance count for a feature type, or 0 if the
// type is unknown to this catalog.
func (c *FeatureCatalog) Count(f string) int {
	return c.counts[f]
}

// TypesSorted returns every distinct feature type in ≺ order.
func (c *FeatureCatalog) TypesSorted() []string {
	out := make([]string, len(c.typesSorted))
	copy(out, c.typesSorted)
	return out
}

// Less reports whether f ≺ g: f is strictly ordered before g by
// (count ascending, then lexicographic).
func (c *FeatureCatalog) Less(f, g string) bool {
	return less(f, g, c.counts)
}

// SortFeatures sorts feats in place by ≺ and returns it for convenience.
func (c *FeatureCatalog) SortFeatures(feats []string) []string {
	sort.Slice(feats, func(i, j int) bool {
		return c.Less(feats[i], feats[j])
	})
	return feats
}
