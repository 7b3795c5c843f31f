package colocation

import (
	"math"

	"github.com/pkg/errors"
)

// Object is an immutable geo-referenced instance: a stable unique id, a
// categorical feature type, and a 2-D position. Objects are never mutated
// after ingest; every downstream structure refers to them by index into a
// Dataset's object slice rather than by pointer or copy.
type Object struct {
	ID   string
	Type string
	X, Y float64
}

// Dataset is the single owner of an object slice for the lifetime of a
// mining run. It is the Go analogue of spec.md §9's "stable arena index":
// every structure built on top of it (neighborhoods, NR-tree, table
// instances) stores plain ints that index back into Objects.
type Dataset struct {
	Objects []Object
}

// NewDataset validates and wraps an object slice. It rejects an empty
// slice (ErrEmptyInput), duplicate ids (ErrDuplicateID), and non-finite
// coordinates (ErrInvalidCoordinate), naming the offending id in each case.
func NewDataset(objects []Object) (*Dataset, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyInput
	}

	seen := make(map[string]struct{}, len(objects))
	for _, o := range objects {
		if _, dup := seen[o.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "id=%q", o.ID)
		}
		seen[o.ID] = struct{}{}

		if math.IsNaN(o.X) || math.IsNaN(o.Y) || math.IsInf(o.X, 0) || math.IsInf(o.Y, 0) {
			return nil, errors.Wrapf(ErrInvalidCoordinate, "id=%q x=%v y=%v", o.ID, o.X, o.Y)
		}
	}

	return &Dataset{Objects: objects}, nil
}

// dist returns the Euclidean distance between two dataset members by index.
// The domain is fixed to Euclidean per spec.md §3, so this is a direct
// helper rather than a pluggable metric interface.
func (d *Dataset) dist(i, j int) float64 {
	dx := d.Objects[i].X - d.Objects[j].X
	dy := d.Objects[i].Y - d.Objects[j].Y
	return math.Sqrt(dx*dx + dy*dy)
}
