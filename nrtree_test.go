package colocation

import (
	"bytes"
	"testing"
)

func TestBuildNRTreeBasic(t *testing.T) {
	objs := []Object{
		{ID: "A1", Type: "A", X: 0, Y: 0},
		{ID: "A2", Type: "A", X: 0, Y: 0},
		{ID: "B1", Type: "B", X: 0, Y: 0},
	}
	ds, err := NewDataset(objs)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	cat, err := NewFeatureCatalog(ds.Objects)
	if err != nil {
		t.Fatalf("NewFeatureCatalog: %v", err)
	}
	g, err := NewGrid(ds, 1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	nm := BuildNeighborhoods(ds, cat, g.Pairs())
	tree := BuildNRTree(ds, cat, nm)

	lower := "A"
	if !cat.Less("A", "B") {
		lower = "B"
	}

	found := false
	for _, ft := range tree.CenterTypes() {
		if ft == lower {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CenterTypes() to include %s, got %v", lower, tree.CenterTypes())
	}

	for _, c := range tree.CentersOf(lower) {
		types := tree.NeighborTypesOf(c)
		if len(types) == 0 {
			t.Errorf("center %s has no neighbor types", ds.Objects[c].ID)
		}
		for _, nt := range types {
			if len(tree.NeighborsOf(c, nt)) == 0 {
				t.Errorf("center %s neighbor type %s has an empty vector", ds.Objects[c].ID, nt)
			}
		}
	}
}

func TestNRTreePrintDoesNotPanic(t *testing.T) {
	objs := []Object{
		{ID: "A1", Type: "A", X: 0, Y: 0},
		{ID: "B1", Type: "B", X: 0, Y: 0},
	}
	ds, err := NewDataset(objs)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	cat, err := NewFeatureCatalog(ds.Objects)
	if err != nil {
		t.Fatalf("NewFeatureCatalog: %v", err)
	}
	g, err := NewGrid(ds, 1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	nm := BuildNeighborhoods(ds, cat, g.Pairs())
	tree := BuildNRTree(ds, cat, nm)

	var buf bytes.Buffer
	tree.Print(&buf)
	if buf.Len() == 0 {
		t.Error("expected non-empty Print output")
	}
}
