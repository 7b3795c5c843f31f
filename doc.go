// Package colocation mines prevalent spatial co-location patterns from a
// static set of geo-referenced objects.
//
// Each object carries a categorical feature type and a 2-D position. A
// co-location is a set of distinct feature types whose instances tend to
// appear near one another in space. Mine enumerates every co-location whose
// weighted participation index (WPI) meets a caller-supplied threshold,
// using a grid-based neighbor index and a four-level ordered
// neighbor-relationship tree (NR-tree) to avoid join operations, and a
// rare-intensity weighting so that patterns involving rare feature types
// are not penalized by skewed type frequencies.
//
// Basic usage:
//
//	cfg := colocation.DefaultConfig()
//	cfg.NeighborDistance = 2.0
//	cfg.MinPrev = 0.5
//	result, err := colocation.Mine(objects, cfg)
//	// result.Colocations[i] is a ≺-sorted []string of feature types
package colocation
