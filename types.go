package colocation

import "strings"

// Colocation is a ≺-sorted sequence of feature types. Size k = len(C).
// Two colocations are the same pattern iff their sequences are equal.
type Colocation []string

// key returns a canonical string usable as a map key, since Go slices
// cannot be map keys directly.
func (c Colocation) key() string {
	return strings.Join(c, "\x1f")
}

// equal reports whether c and other name the same ≺-sorted sequence.
func (c Colocation) equal(other Colocation) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// withoutIndex returns a copy of c with the element at position i removed.
func (c Colocation) withoutIndex(i int) Colocation {
	out := make(Colocation, 0, len(c)-1)
	out = append(out, c[:i]...)
	out = append(out, c[i+1:]...)
	return out
}

// clone returns an independent copy of c.
func (c Colocation) clone() Colocation {
	out := make(Colocation, len(c))
	copy(out, c)
	return out
}

// Row is a row instance: a tuple of k object indices whose types, in
// order, equal a Colocation's sequence, and whose objects form a
// neighbor-clique via the ordered neighborhoods. Row uniqueness is by the
// tuple of object ids (enforced structurally: a row can only be produced
// by extending exactly one (k-1)-prefix row by one anchor-consistent
// object, so no two distinct generation paths can produce the same row).
type Row []int

// rowKey returns a canonical string key for deduplication, built from
// object ids rather than indices so it is stable across datasets.
func rowKey(dataset *Dataset, r Row) string {
	ids := make([]string, len(r))
	for i, idx := range r {
		ids[i] = dataset.Objects[idx].ID
	}
	return strings.Join(ids, "\x1f")
}

// Table is T(C): a mapping from colocation (by key) to its list of row
// instances. Entries with an empty row list are omitted, per spec.md
// §4.5.4.
type Table struct {
	rows map[string][]Row
	keys map[string]Colocation
}

// newTable creates an empty table.
func newTable() *Table {
	return &Table{rows: make(map[string][]Row), keys: make(map[string]Colocation)}
}

// set stores rows for c, omitting the entry entirely if rows is empty.
func (t *Table) set(c Colocation, rows []Row) {
	if len(rows) == 0 {
		return
	}
	k := c.key()
	t.rows[k] = rows
	t.keys[k] = c
}

// Rows returns the row instances for c, or nil if c has no table entry.
func (t *Table) Rows(c Colocation) []Row {
	return t.rows[c.key()]
}

// Has reports whether c has a non-empty table entry.
func (t *Table) Has(c Colocation) bool {
	_, ok := t.rows[c.key()]
	return ok
}
