package colocation

import "sort"

// NeighborhoodManager materializes, per "center" object, the subset of its
// neighbors that are strictly ordered after the center in ≺ (spec.md
// §4.3). Each inter-type pair contributes to exactly one ordered
// neighborhood: that of the lower-ranked type.
type NeighborhoodManager struct {
	dataset *Dataset
	catalog *FeatureCatalog

	// byCenter[centerIdx][neighborType] = sorted neighbor object indices.
	byCenter map[int]map[string][]int

	// centersByType[t] = center object indices of type t with a non-empty
	// ordered neighborhood, sorted by object id.
	centersByType map[string][]int
}

// BuildNeighborhoods builds ordered neighborhoods from the pairs produced
// by a Grid. For pair (a, b): if a.Type ≺ b.Type, b is recorded under a;
// if b.Type ≺ a.Type, a is recorded under b. Equal types cannot occur
// here because Grid.qualifies already excludes them.
func BuildNeighborhoods(dataset *Dataset, catalog *FeatureCatalog, pairs []Pair) *NeighborhoodManager {
	nm := &NeighborhoodManager{
		dataset:       dataset,
		catalog:       catalog,
		byCenter:      make(map[int]map[string][]int),
		centersByType: make(map[string][]int),
	}

	seenCenter := make(map[int]struct{})

	record := func(center, neighbor int) {
		ct := dataset.Objects[center].Type
		nt := dataset.Objects[neighbor].Type

		byType, ok := nm.byCenter[center]
		if !ok {
			byType = make(map[string][]int)
			nm.byCenter[center] = byType
		}
		byType[nt] = append(byType[nt], neighbor)

		if _, ok := seenCenter[center]; !ok {
			seenCenter[center] = struct{}{}
			nm.centersByType[ct] = append(nm.centersByType[ct], center)
		}
	}

	for _, p := range pairs {
		at, bt := dataset.Objects[p.A].Type, dataset.Objects[p.B].Type
		if catalog.Less(at, bt) {
			record(p.A, p.B)
		} else if catalog.Less(bt, at) {
			record(p.B, p.A)
		}
	}

	for _, byType := range nm.byCenter {
		for t, neighbors := range byType {
			sort.Slice(neighbors, func(i, j int) bool {
				return dataset.Objects[neighbors[i]].ID < dataset.Objects[neighbors[j]].ID
			})
			byType[t] = neighbors
		}
	}

	for t, centers := range nm.centersByType {
		sort.Slice(centers, func(i, j int) bool {
			return dataset.Objects[centers[i]].ID < dataset.Objects[centers[j]].ID
		})
		nm.centersByType[t] = centers
	}

	return nm
}

// NeighborsOf returns the ordered-neighborhood list of object indices of
// feature type f for center, or nil if center has no such neighbors.
func (nm *NeighborhoodManager) NeighborsOf(center int, f string) []int {
	byType, ok := nm.byCenter[center]
	if !ok {
		return nil
	}
	return byType[f]
}

// NeighborTypesOf returns the feature types present in center's ordered
// neighborhood, in ≺ order.
func (nm *NeighborhoodManager) NeighborTypesOf(center int) []string {
	byType, ok := nm.byCenter[center]
	if !ok {
		return nil
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	return nm.catalog.SortFeatures(types)
}

// CentersOfType returns, for feature type t in ≺ order, the center object
// indices of type t that have a non-empty ordered neighborhood, sorted by
// object id.
func (nm *NeighborhoodManager) CentersOfType(t string) []int {
	return nm.centersByType[t]
}
