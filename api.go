package amaze

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Maze is the graph contract the solver searches over. Node ids are opaque
// non-negative integers, stable for the maze's lifetime. The solver assumes
// a well-formed maze and performs no validation.
type Maze interface {
	// Start returns the node every solve begins from.
	Start() int
	// Neighbors returns the nodes adjacent to node. Order is not
	// significant; the size of the result is the node's degree.
	Neighbors(node int) []int
	// HasGoal reports whether node is a goal.
	HasGoal(node int) bool
	// NewPlayer places a new player token on startNode and returns its id.
	// Each search task owns one player.
	NewPlayer(startNode int) int
	// Move relocates a player token. Purely a visualization side effect;
	// the solver never consults its outcome.
	Move(player int, node int)
}

// Result contains the outcome of a solve.
type Result struct {
	// Path is the ordered walk from the maze's start node to a reached
	// goal node; nil when no goal was reachable.
	Path []int
	// ExpandedNodes counts nodes claimed and expanded across all tasks.
	ExpandedNodes int
	// ForkedTasks counts child tasks spawned across all junctions.
	ForkedTasks int
	// ForkEvents counts junctions at which at least one child was forked.
	ForkEvents int
	Found      bool
}

// Options defines parameters for the solve.
type Options struct {
	// ForkAfter is accepted for compatibility with solvers that fork every
	// N visited nodes.
	//
	// Deprecated: the forking policy is junction-based; the value is
	// stored but never consulted.
	ForkAfter int

	Logger *slog.Logger

	// SolveID tags this solve's log records. Defaults to a random UUID.
	SolveID string
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithForkAfter records a fork-every-N-steps hint.
//
// Deprecated: the forking policy is junction-based; the hint is stored but
// never consulted.
func WithForkAfter(steps int) Option {
	return func(options *Options) { options.ForkAfter = steps }
}

// WithLogger sets the logger for solve progress events.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithSolveID overrides the generated solve id used in log records.
func WithSolveID(id string) Option {
	return func(options *Options) { options.SolveID = id }
}

// Solve searches maze in parallel for a path from its start node to any goal
// node, using a fork/join depth-first search. Independent branches run as
// separately scheduled tasks sharing one visited set and goal flag, both
// scoped to this call.
//
// An unreachable goal is a normal outcome: Result.Found is false and the
// error is nil. The error is non-nil only when ctx is cancelled before a
// path is found; children already forked still run to completion.
func Solve(contextObject context.Context, maze Maze, options ...Option) (Result, error) {
	// --- Apply options ---
	solveOptions := Options{
		Logger:  slog.Default(),
		SolveID: uuid.NewString(),
	}
	for _, option := range options {
		option(&solveOptions)
	}
	logger := solveOptions.Logger.With("solve_id", solveOptions.SolveID)

	// --- Initialize per-solve state ---
	state := newSearchState()
	rootTask := newSolver(
		contextObject, maze, state,
		maze.Start(), fresh,
		solveOptions.ForkAfter, logger,
	)

	// The root task runs on the calling goroutine; forks happen beneath it.
	path := rootTask.run()

	result := Result{
		Path:          path,
		ExpandedNodes: int(state.expandedNodes.Load()),
		ForkedTasks:   int(state.forkedTasks.Load()),
		ForkEvents:    int(state.forkEvents.Load()),
		Found:         path != nil,
	}
	if !result.Found {
		if err := contextObject.Err(); err != nil {
			return result, err
		}
	}
	logger.Debug("solve finished",
		"found", result.Found,
		"path_length", len(result.Path),
		"expanded", result.ExpandedNodes,
		"forked", result.ForkedTasks)
	return result, nil
}
