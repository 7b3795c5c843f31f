package colocation

import (
	"fmt"
	"io"
)

// NRTree is the four-level ordered neighbor-relationship tree of spec.md
// §3/§4.4:
//
//	L1: one child per feature type with at least one center, in ≺ order
//	    (the "center type").
//	L2: under each L1, one child per object of that type with a non-empty
//	    ordered neighborhood, ordered by id.
//	L3: under each L2 center, one child per neighbor feature type present
//	    in its ordered neighborhood, in ≺ order.
//	L4: a leaf holding the sorted vector of neighbors of that type.
//
// The original's node hierarchy (root/feature/instance/instance-vector) is
// a tagged variant, not a class hierarchy (spec.md §9); this Go port
// collapses that variant into a single per-center lookup map rather than
// modeling each level as a distinct node type, since the only operation
// the miner needs is NeighborsOf(center, feature) — the L1/L2 levels exist
// only to describe the construction order and the Print dump, not to gate
// lookups.
//
// The tree holds only non-owning object indices into the Dataset that
// built it; it does not outlive that Dataset.
type NRTree struct {
	dataset *Dataset
	catalog *FeatureCatalog
	nm      *NeighborhoodManager

	// l1 is the set of center feature types in ≺ order (L1).
	l1 []string
}

// BuildNRTree builds the L1–L4 structure over nm's ordered neighborhoods,
// using catalog's ≺ order for L1 and L3 sibling ordering.
func BuildNRTree(dataset *Dataset, catalog *FeatureCatalog, nm *NeighborhoodManager) *NRTree {
	types := catalog.TypesSorted()
	l1 := make([]string, 0, len(types))
	for _, t := range types {
		if len(nm.CentersOfType(t)) > 0 {
			l1 = append(l1, t)
		}
	}

	return &NRTree{dataset: dataset, catalog: catalog, nm: nm, l1: l1}
}

// NeighborsOf returns the L4 leaf vector of object indices for center under
// neighbor feature f — empty if none. Backed by NeighborhoodManager's
// per-center map, giving average-case O(log|types|) lookup as spec.md
// §4.4 permits.
func (t *NRTree) NeighborsOf(center int, f string) []int {
	return t.nm.NeighborsOf(center, f)
}

// CenterTypes returns L1: the feature types with at least one center that
// has a non-empty ordered neighborhood, in ≺ order.
func (t *NRTree) CenterTypes() []string {
	out := make([]string, len(t.l1))
	copy(out, t.l1)
	return out
}

// CentersOf returns L2 under L1 type ft: the center object indices of type
// ft, ordered by id.
func (t *NRTree) CentersOf(ft string) []int {
	return t.nm.CentersOfType(ft)
}

// NeighborTypesOf returns L3 under center: the neighbor feature types
// present in its ordered neighborhood, in ≺ order.
func (t *NRTree) NeighborTypesOf(center int) []string {
	return t.nm.NeighborTypesOf(center)
}

// Print writes a debug dump of the tree structure to w. Not exercised by
// correctness tests beyond "does not panic", per spec.md §4.4.
func (t *NRTree) Print(w io.Writer) {
	fmt.Fprintln(w, "ROOT")
	for _, ft := range t.CenterTypes() {
		fmt.Fprintf(w, "  + Feature: %s\n", ft)
		for _, center := range t.CentersOf(ft) {
			obj := t.dataset.Objects[center]
			fmt.Fprintf(w, "    - Instance: %s [%s]\n", obj.ID, obj.Type)
			for _, nt := range t.NeighborTypesOf(center) {
				neighbors := t.NeighborsOf(center, nt)
				fmt.Fprintf(w, "      + Feature: %s\n", nt)
				fmt.Fprint(w, "        - Instance Vector: [")
				for i, n := range neighbors {
					if i > 0 {
						fmt.Fprint(w, ", ")
					}
					fmt.Fprintf(w, "%s[%s]", t.dataset.Objects[n].ID, t.dataset.Objects[n].Type)
				}
				fmt.Fprintln(w, "]")
			}
		}
	}
}
