package colocation

import (
	"sort"
	"sync"
)

// genTableInstance derives size-k table instances for every surviving
// candidate by intersecting NR-tree neighbor lists through each row of the
// size-(k-1) prefix table (spec.md §4.5.4, the algorithmic payoff of the
// ordering: because ≺ places the new feature strictly after every type in
// the prefix, the new object is always in the ordered neighborhood of
// every row member whenever it is a neighbor pair, so intersecting L4
// vectors enumerates exactly the clique extensions — no join required).
//
// For each candidate C = prefix + [new]:
//   - look up prevTables[prefix]; skip C if missing or empty.
//   - for each row I = (o_1,...,o_{k-1}) in that table, compute
//     S(I,new) = ∩ NeighborsOf(o_i, new) over object identity, terminating
//     early on an empty intermediate intersection.
//   - for each o in S(I,new), emit row I' = I ++ [o].
func genTableInstance(dataset *Dataset, tree *NRTree, candidates []Colocation, prevTables *Table, numWorkers int) *Table {
	out := newTable()

	for _, c := range candidates {
		if len(c) < 2 {
			continue
		}
		prefix := c[:len(c)-1]
		newFeature := c[len(c)-1]

		prefixRows := prevTables.Rows(prefix)
		if len(prefixRows) == 0 {
			continue
		}

		rows := extendRows(dataset, tree, prefixRows, newFeature, numWorkers)
		out.set(c, dedupeRows(dataset, rows))
	}

	return out
}

// extendRows extends every prefix row by intersecting NeighborsOf(o_i,
// newFeature) across all members o_i of the row, optionally distributing
// rows across numWorkers goroutines (spec.md §5 permits per-row
// parallelism within a candidate; prefixRows is read-only and each worker
// writes to a disjoint buffer, so no locking is required).
func extendRows(dataset *Dataset, tree *NRTree, prefixRows []Row, newFeature string, numWorkers int) []Row {
	if numWorkers <= 1 || len(prefixRows) < 2 {
		var out []Row
		for _, row := range prefixRows {
			out = append(out, extendOneRow(dataset, tree, row, newFeature)...)
		}
		return out
	}

	buffers := make([][]Row, numWorkers)
	var wg sync.WaitGroup
	rowsPerWorker := (len(prefixRows) + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > len(prefixRows) {
			end = len(prefixRows)
		}
		if start >= len(prefixRows) {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			var local []Row
			for i := start; i < end; i++ {
				local = append(local, extendOneRow(dataset, tree, prefixRows[i], newFeature)...)
			}
			buffers[w] = local
		}(w, start, end)
	}
	wg.Wait()

	var out []Row
	for _, b := range buffers {
		out = append(out, b...)
	}
	return out
}

// extendOneRow computes S(I, newFeature) for a single prefix row and
// returns one extended row per member of that intersection, sorted by the
// extension object's id for deterministic row order within a candidate
// (spec.md §5 makes this optional, but a stable order costs nothing here
// and simplifies testing).
func extendOneRow(dataset *Dataset, tree *NRTree, row Row, newFeature string) []Row {
	candidateSet := tree.NeighborsOf(row[0], newFeature)
	if len(candidateSet) == 0 {
		return nil
	}

	intersection := toSet(candidateSet)
	for i := 1; i < len(row); i++ {
		next := tree.NeighborsOf(row[i], newFeature)
		intersection = intersectSets(intersection, toSet(next))
		if len(intersection) == 0 {
			return nil
		}
	}

	extensions := make([]int, 0, len(intersection))
	for o := range intersection {
		extensions = append(extensions, o)
	}
	sort.Slice(extensions, func(i, j int) bool {
		return dataset.Objects[extensions[i]].ID < dataset.Objects[extensions[j]].ID
	})

	out := make([]Row, 0, len(extensions))
	for _, o := range extensions {
		newRow := make(Row, len(row)+1)
		copy(newRow, row)
		newRow[len(row)] = o
		out = append(out, newRow)
	}
	return out
}

func toSet(idx []int) map[int]struct{} {
	s := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}
	return s
}

func intersectSets(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// dedupeRows removes duplicate row tuples by object-id identity. Given
// the ≺-anchored construction this should never trigger (spec.md §9's
// open question), but is kept as a correctness backstop.
func dedupeRows(dataset *Dataset, rows []Row) []Row {
	if len(rows) == 0 {
		return rows
	}
	seen := make(map[string]struct{}, len(rows))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		k := rowKey(dataset, r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
