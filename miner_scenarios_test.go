package colocation

import "testing"

// hasColocation reports whether cs contains a colocation with exactly the
// given feature set, independent of catalog-assigned element order.
func hasColocation(cs []Colocation, features ...string) bool {
	for _, c := range cs {
		if len(c) != len(features) {
			continue
		}
		want := map[string]struct{}{}
		for _, f := range features {
			want[f] = struct{}{}
		}
		for _, f := range c {
			delete(want, f)
		}
		if len(want) == 0 {
			return true
		}
	}
	return false
}

func TestScenarioMinimalPositive(t *testing.T) {
	objs := []Object{
		{ID: "A1", Type: "A", X: 0, Y: 0},
		{ID: "A2", Type: "A", X: 10, Y: 10},
		{ID: "B1", Type: "B", X: 1, Y: 0},
		{ID: "B2", Type: "B", X: 10, Y: 11},
		{ID: "C1", Type: "C", X: 2, Y: 0},
	}
	cfg := DefaultConfig()
	cfg.NeighborDistance = 2
	cfg.MinPrev = 0.5

	result, err := Mine(objs, cfg)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}

	for _, want := range [][]string{{"C", "A"}, {"A", "B"}, {"C", "A", "B"}} {
		if !hasColocation(result.Colocations, want...) {
			t.Errorf("expected colocation %v in result %v", want, result.Colocations)
		}
	}
	for _, c := range result.Colocations {
		if len(c) == 1 {
			t.Errorf("singleton %v leaked into output", c)
		}
	}
}

func TestScenarioPruning(t *testing.T) {
	objs := []Object{
		{ID: "A1", Type: "A", X: 0, Y: 0},
		{ID: "B1", Type: "B", X: 0.5, Y: 0},
		{ID: "C1", Type: "C", X: 0, Y: 0.5},
		{ID: "A2", Type: "A", X: 100, Y: 100},
		{ID: "B2", Type: "B", X: 200, Y: 200},
	}
	cfg := DefaultConfig()
	cfg.NeighborDistance = 1
	cfg.MinPrev = 0.6

	result, err := Mine(objs, cfg)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}

	for _, want := range [][]string{{"C", "A"}, {"C", "B"}, {"A", "B"}, {"C", "A", "B"}} {
		if !hasColocation(result.Colocations, want...) {
			t.Errorf("expected colocation %v in result %v", want, result.Colocations)
		}
	}
}

func TestScenarioRareFeatureRescue(t *testing.T) {
	var objs []Object

	// 40 tight A-B-C triangles, each well clear of its neighbors so every
	// instance only ever sees the other two members of its own triangle.
	for i := 0; i < 40; i++ {
		base := float64(i) * 5
		objs = append(objs,
			Object{ID: idOf("A", i), Type: "A", X: base, Y: 0},
			Object{ID: idOf("B", i), Type: "B", X: base + 0.3, Y: 0},
			Object{ID: idOf("C", i), Type: "C", X: base + 0.15, Y: 0.3},
		)
	}
	// 60 more A's and 60 more B's, placed far from the triangles and from
	// each other, so count(A) and count(B) climb to 100 without any of
	// them ever co-locating with anything.
	for i := 40; i < 100; i++ {
		j := float64(i - 40)
		objs = append(objs,
			Object{ID: idOf("A", i), Type: "A", X: j * 2, Y: -50},
			Object{ID: idOf("B", i), Type: "B", X: j * 2, Y: -100},
		)
	}

	cfg := DefaultConfig()
	cfg.NeighborDistance = 1
	cfg.MinPrev = 0.5

	result, err := Mine(objs, cfg)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}

	// count(A)=count(B)=100, count(C)=40. Unweighted PR(A)=PR(B)=0.4 sits
	// below minPrev, but the 2.5x count skew between C and A/B earns A and
	// B a rarity weight of ≈1.32 under the dataset's own δ, lifting
	// WPR(A)=WPR(B)≈0.53 over the threshold.
	if !hasColocation(result.Colocations, "C", "A", "B") {
		t.Errorf("expected rare-feature pattern {C,A,B} to be rescued by weighting, got %v", result.Colocations)
	}
}

func TestScenarioDisjointClustersUnion(t *testing.T) {
	objs := []Object{
		{ID: "A1", Type: "A", X: 0, Y: 0},
		{ID: "B1", Type: "B", X: 0.1, Y: 0},
		{ID: "A2", Type: "A", X: 1000, Y: 1000},
		{ID: "C2", Type: "C", X: 1000.1, Y: 1000},
	}
	cfg := DefaultConfig()
	cfg.NeighborDistance = 1
	cfg.MinPrev = 0.5

	result, err := Mine(objs, cfg)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}

	if !hasColocation(result.Colocations, "A", "B") {
		t.Errorf("expected {A,B} from cluster 1, got %v", result.Colocations)
	}
	if !hasColocation(result.Colocations, "A", "C") {
		t.Errorf("expected {A,C} from cluster 2, got %v", result.Colocations)
	}
	if hasColocation(result.Colocations, "B", "C") {
		t.Errorf("unexpected cross-cluster colocation {B,C} in %v", result.Colocations)
	}
}

func TestScenarioEmptyOutputWhenDistanceTooSmall(t *testing.T) {
	objs := []Object{
		{ID: "A1", Type: "A", X: 0, Y: 0},
		{ID: "B1", Type: "B", X: 5, Y: 5},
	}
	cfg := DefaultConfig()
	cfg.NeighborDistance = 0.001
	cfg.MinPrev = 0.1

	result, err := Mine(objs, cfg)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if len(result.Colocations) != 0 {
		t.Errorf("expected empty result when d is smaller than any pair distance, got %v", result.Colocations)
	}
}

func TestScenarioOrderingInvarianceUnderShuffle(t *testing.T) {
	objs := []Object{
		{ID: "A1", Type: "A", X: 0, Y: 0},
		{ID: "B1", Type: "B", X: 0.1, Y: 0},
		{ID: "C1", Type: "C", X: 0, Y: 0.1},
		{ID: "A2", Type: "A", X: 5, Y: 5},
		{ID: "B2", Type: "B", X: 5.1, Y: 5},
		{ID: "C2", Type: "C", X: 5, Y: 5.1},
	}
	shuffled := make([]Object, len(objs))
	// Fixed, deterministic permutation rather than a random shuffle, so
	// this test's own behavior stays reproducible.
	perm := []int{5, 0, 4, 1, 3, 2}
	for i, p := range perm {
		shuffled[i] = objs[p]
	}

	cfg := DefaultConfig()
	cfg.NeighborDistance = 1
	cfg.MinPrev = 0.5

	r1, err := Mine(objs, cfg)
	if err != nil {
		t.Fatalf("Mine (original order): %v", err)
	}
	r2, err := Mine(shuffled, cfg)
	if err != nil {
		t.Fatalf("Mine (shuffled order): %v", err)
	}

	s1, s2 := colocationSet(r1.Colocations), colocationSet(r2.Colocations)
	if len(s1) != len(s2) {
		t.Fatalf("original found %d colocations, shuffled found %d", len(s1), len(s2))
	}
	for k := range s1 {
		if _, ok := s2[k]; !ok {
			t.Errorf("shuffled run missing colocation %s found in original order", k)
		}
	}
}
