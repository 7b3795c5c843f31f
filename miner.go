package colocation

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config controls co-location mining behavior. Start with DefaultConfig
// and override the fields you need.
type Config struct {
	// NeighborDistance is the Euclidean distance threshold d used by the
	// spatial grid index. Must be > 0. No default — callers must set it.
	NeighborDistance float64

	// MinPrev is the WPI threshold a colocation must meet to be returned.
	// Must be in [0, 1]. Default: 0.6, matching
	// original_source/include/constants.h's DEFAULT_MIN_PREVALENCE.
	MinPrev float64

	// Workers controls the number of goroutines used for parallelizable
	// stages (grid pair enumeration, table-row extension). 0 means use
	// runtime.NumCPU(); 1 disables parallelism. Default: 1.
	Workers int

	// DeterministicRowOrder is not read by Mine: per-worker row buffers
	// are always concatenated in input-row order, so row order within
	// T(C) is the same whether or not it is set. It never affects which
	// colocations are returned (spec.md §5).
	DeterministicRowOrder bool

	// Logger receives the grid pair count and each mining level's
	// candidate/survivor counts at Info level, and the dispersion δ at
	// Debug level; no timing is logged. Defaults to zap.NewNop() (silent)
	// so the library is silent unless a caller opts in — logging is
	// cosmetic per spec.md §1.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with reasonable defaults. NeighborDistance
// has no meaningful default and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		MinPrev: 0.6,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// Result holds the output of a mining run.
type Result struct {
	// Colocations are every prevalent pattern found, ordered ascending by
	// size k; within the same k, order is deterministic but unspecified
	// (spec.md §6).
	Colocations []Colocation

	// Delta is the dataset-wide dispersion constant used to score every
	// candidate in this run.
	Delta float64
}

func applyDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

func validateConfig(cfg Config) error {
	if cfg.NeighborDistance <= 0 {
		return errors.Wrapf(ErrInvalidDistance, "NeighborDistance=%v", cfg.NeighborDistance)
	}
	if cfg.MinPrev < 0 || cfg.MinPrev > 1 {
		return errors.Wrapf(ErrInvalidThreshold, "MinPrev=%v", cfg.MinPrev)
	}
	return nil
}

// Mine runs the full pipeline — feature catalog, grid index, ordered
// neighborhoods, NR-tree, level-wise mining loop — and returns every
// prevalent colocation (spec.md §2, §4.5.1). Singletons (k=1) are never
// returned, matching the original's accumulation loop which only gathers
// results from k=2 onward (spec.md §9).
func Mine(objects []Object, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	dataset, err := NewDataset(objects)
	if err != nil {
		return nil, err
	}

	catalog, err := NewFeatureCatalog(dataset.Objects)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(dataset, cfg.NeighborDistance)
	if err != nil {
		return nil, err
	}

	pairs := grid.PairsParallel(cfg.Workers)
	cfg.Logger.Info("grid pairs built", zap.Int("pairs", len(pairs)))

	nm := BuildNeighborhoods(dataset, catalog, pairs)
	tree := BuildNRTree(dataset, catalog, nm)

	delta := Delta(catalog)
	cfg.Logger.Debug("dispersion computed", zap.Float64("delta", delta))

	m := &miner{dataset: dataset, catalog: catalog, tree: tree, cfg: cfg, delta: delta}
	colocations, err := m.run()
	if err != nil {
		return nil, err
	}

	return &Result{Colocations: colocations, Delta: delta}, nil
}

// miner holds the state threaded through the level-wise outer loop
// (spec.md §4.5.1): prevPrevalent/prevTables from level k-1, handed
// forward to generate and score level k.
type miner struct {
	dataset *Dataset
	catalog *FeatureCatalog
	tree    *NRTree
	cfg     Config
	delta   float64
}

// run executes the outer loop: seed with size-1 singletons, then repeat
// generate → (filter if k>2) → genTableInstance → selectPrevalent until
// either candidates or survivors are empty.
func (m *miner) run() ([]Colocation, error) {
	prevPrevalent := m.seedSingletons()
	prevTables := m.seedSingletonTables(prevPrevalent)

	var allPrevalent []Colocation
	k := 2

	for len(prevPrevalent) > 0 {
		candidates := generateCandidates(m.catalog, prevPrevalent)
		if len(candidates) == 0 {
			break
		}

		if k > 2 {
			candidates = filterCandidates(m.dataset, m.catalog, candidates, prevPrevalent, prevTables, m.cfg.MinPrev, m.delta)
			if len(candidates) == 0 {
				break
			}
		}

		tables := genTableInstance(m.dataset, m.tree, candidates, prevTables, m.cfg.Workers)

		survivors, err := m.selectPrevalent(k, candidates, tables)
		if err != nil {
			return nil, err
		}

		m.cfg.Logger.Info("mining level complete",
			zap.Int("k", k),
			zap.Int("candidates", len(candidates)),
			zap.Int("prevalent", len(survivors)),
		)

		allPrevalent = append(allPrevalent, survivors...)

		prevPrevalent = survivors
		prevTables = tables
		k++
	}

	return allPrevalent, nil
}

// seedSingletons returns the initial prevPrevalent state: {f} for every
// feature f, in ≺ order.
func (m *miner) seedSingletons() []Colocation {
	types := m.catalog.TypesSorted()
	out := make([]Colocation, len(types))
	for i, t := range types {
		out[i] = Colocation{t}
	}
	return out
}

// seedSingletonTables returns prevTables[{f}] = one single-object row per
// object of type f.
func (m *miner) seedSingletonTables(singletons []Colocation) *Table {
	t := newTable()
	byType := make(map[string][]Row)
	for idx, o := range m.dataset.Objects {
		byType[o.Type] = append(byType[o.Type], Row{idx})
	}
	for _, c := range singletons {
		t.set(c, byType[c[0]])
	}
	return t
}

// selectPrevalent keeps every candidate whose WPI meets minPrev (spec.md
// §4.5.5), scoring the candidates sequentially.
func (m *miner) selectPrevalent(k int, candidates []Colocation, tables *Table) ([]Colocation, error) {
	var out []Colocation
	for _, c := range candidates {
		if len(c) != k {
			return nil, invariantf(k, c, "candidate size %d does not match level k=%d", len(c), k)
		}
		wpi := WPI(m.dataset, m.catalog, c, tables, m.delta)
		if wpi >= m.cfg.MinPrev {
			out = append(out, c)
		}
	}
	return out, nil
}
