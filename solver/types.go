// Package solver defines the shared types, options, and sentinel errors for
// the solver subpackage of github.com/katalvlaran/sudoku.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sudoku/board"
)

// Sentinel errors for solver operations.
var (
	// ErrNoSolution reports an exhausted search: the frontier emptied without
	// reaching a goal, or the annealing budget elapsed with conflicts left.
	// It is an ordinary outcome, not a malfunction.
	ErrNoSolution = errors.New("solver: no solution found")

	// ErrUnknownAlgorithm reports an Algorithm value Solve cannot route.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrBadOption reports an option value outside its documented range.
	ErrBadOption = errors.New("solver: invalid option")
)

// Algorithm selects the search strategy Solve routes to.
type Algorithm int

const (
	// Backtracking is plain depth-first search over maintained candidate
	// domains: static row-major cell order, every candidate tried, no
	// pruning beyond the pop-time consistency check.
	Backtracking Algorithm = iota
	// ForwardChecking adds a dead-end prune to Backtracking: children that
	// leave an unassigned cell without candidates never reach the frontier.
	ForwardChecking
	// MRVLCV picks the unassigned cell with the fewest remaining candidates
	// and orders its values least-constraining first, pruning like
	// ForwardChecking.
	MRVLCV
	// Annealing runs stochastic local search over block permutations
	// instead of tree search.
	Annealing
)

// String returns the canonical flag-friendly name of a.
func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "backtracking"
	case ForwardChecking:
		return "forward-checking"
	case MRVLCV:
		return "mrv-lcv"
	case Annealing:
		return "annealing"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a canonical name (see Algorithm.String) back to its
// Algorithm, or returns ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "backtracking":
		return Backtracking, nil
	case "forward-checking":
		return ForwardChecking, nil
	case "mrv-lcv":
		return MRVLCV, nil
	case "annealing":
		return Annealing, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Metrics quantifies the effort of one solver invocation. The tree searches
// fill the first three counters; Annealing fills Iterations. Every call
// produces a fresh Metrics: nothing accumulates across invocations.
type Metrics struct {
	// NodesExpanded counts frontier nodes popped, including snapshots
	// discarded as inconsistent and the goal node itself.
	NodesExpanded int

	// ChildrenGenerated counts child snapshots pushed onto the frontier.
	// Children discarded by pruning at generation time are not counted.
	ChildrenGenerated int

	// MaxDepth is the largest assignment depth among popped nodes; the root
	// sits at depth 0.
	MaxDepth int

	// Iterations counts attempted annealing steps. Block draws skipped for
	// lack of two free cells consume budget but do not count.
	Iterations int
}

// Result carries the outcome of one solver invocation.
type Result struct {
	// Solution is the completed grid. On failure it stays the zero Board.
	Solution board.Board

	// Metrics reports the search effort, on success and failure alike.
	Metrics Metrics
}

// Default option values, the single source of truth for DefaultOptions.
// MaxSteps bounds only Annealing; tree searches run to frontier exhaustion.
const (
	// DefaultMaxSteps is the annealing loop budget.
	DefaultMaxSteps = 100000
	// DefaultInitialTemperature is the starting acceptance temperature.
	DefaultInitialTemperature = 3.0
	// DefaultCoolingRate is the geometric decay applied per attempted step.
	DefaultCoolingRate = 0.999
	// DefaultMinTemperature floors the cooling schedule.
	DefaultMinTemperature = 0.01
)

// Option configures a solver invocation. Use with Solve or any entry point.
type Option func(*Options)

// Options holds the configurable parameters shared by all strategies.
type Options struct {
	// Algo selects the strategy Solve routes to. Direct entry points
	// (SolveBacktracking and friends) ignore it.
	Algo Algorithm

	// Seed feeds the annealing RNG. Seed 0 selects a fixed default stream,
	// so unseeded runs are reproducible too.
	Seed int64

	// MaxSteps is the annealing loop budget, ≥ 0. Zero forbids any move:
	// only puzzles already solved by the block seeding succeed.
	MaxSteps int

	// InitialTemperature is the starting temperature, > 0.
	InitialTemperature float64

	// CoolingRate is the geometric decay factor, 0 < rate < 1.
	CoolingRate float64

	// MinTemperature floors the schedule, 0 ≤ floor ≤ InitialTemperature.
	MinTemperature float64
}

// DefaultOptions returns the canonical configuration:
//   - Algo = Backtracking
//   - Seed = 0 (fixed default stream)
//   - MaxSteps = DefaultMaxSteps
//   - InitialTemperature / CoolingRate / MinTemperature per the constants
func DefaultOptions() Options {
	return Options{
		Algo:               Backtracking,
		Seed:               0,
		MaxSteps:           DefaultMaxSteps,
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		MinTemperature:     DefaultMinTemperature,
	}
}

// WithAlgorithm returns an Option selecting the strategy Solve routes to.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithSeed returns an Option fixing the annealing RNG stream.
// Seed 0 keeps the default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxSteps returns an Option bounding the annealing loop.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithInitialTemperature returns an Option setting the starting temperature.
func WithInitialTemperature(t float64) Option {
	return func(o *Options) {
		o.InitialTemperature = t
	}
}

// WithCoolingRate returns an Option setting the geometric decay factor.
func WithCoolingRate(rate float64) Option {
	return func(o *Options) {
		o.CoolingRate = rate
	}
}

// WithMinTemperature returns an Option setting the schedule floor.
func WithMinTemperature(t float64) Option {
	return func(o *Options) {
		o.MinTemperature = t
	}
}

// buildOptions folds opts over DefaultOptions and validates the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// validate enforces the documented ranges, returning ErrBadOption naming
// the offending field. Validation is uniform: every entry point checks the
// full set, whichever strategy runs.
func (o Options) validate() error {
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: MaxSteps %d is negative", ErrBadOption, o.MaxSteps)
	}
	if o.InitialTemperature <= 0 {
		return fmt.Errorf("%w: InitialTemperature %g must be positive", ErrBadOption, o.InitialTemperature)
	}
	if o.CoolingRate <= 0 || o.CoolingRate >= 1 {
		return fmt.Errorf("%w: CoolingRate %g outside (0, 1)", ErrBadOption, o.CoolingRate)
	}
	if o.MinTemperature < 0 || o.MinTemperature > o.InitialTemperature {
		return fmt.Errorf("%w: MinTemperature %g outside [0, InitialTemperature]", ErrBadOption, o.MinTemperature)
	}
	return nil
}
