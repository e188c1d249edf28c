package amaze

import (
	"context"
	"log/slog"
)

// provenance tags how a solver came to own its start node.
type provenance int

const (
	// fresh means the start node is unclaimed and the task must claim it.
	fresh provenance = iota
	// handedOff means the parent already claimed the start node while
	// forking; the claim is excused exactly once, for that node.
	handedOff
)

// solver is one forkable search task: a private depth-first frontier walking
// the maze, sharing claim and goal state with every other task of the solve.
type solver struct {
	ctx   context.Context
	maze  Maze
	state *searchState

	start      int
	frontier   frontier
	provenance provenance

	// forkAfter is accepted for compatibility with step-counting solvers
	// and stored here, but the forking decision is purely junction-based
	// and never consults it.
	forkAfter int

	logger *slog.Logger
}

func newSolver(
	ctx context.Context,
	maze Maze,
	state *searchState,
	startNode int,
	tag provenance,
	forkAfter int,
	logger *slog.Logger,
) *solver {
	return &solver{
		ctx:        ctx,
		maze:       maze,
		state:      state,
		start:      startNode,
		provenance: tag,
		forkAfter:  forkAfter,
		logger:     logger,
	}
}

// run walks the maze depth-first from the task's start node. It returns the
// path from that start to a goal, nil if the frontier drained without one.
func (task *solver) run() []int {
	player := task.maze.NewPlayer(task.start)
	startHandedOff := task.provenance == handedOff

	task.frontier.push(task.start)
	for !task.frontier.empty() && !task.state.goalFound() && task.ctx.Err() == nil {
		current := task.frontier.pop()

		if task.maze.HasGoal(current) {
			task.maze.Move(player, current)
			return task.state.walkBack(task.start, current)
		}

		// The first claimer of a node owns its expansion. A handed-off
		// start was claimed by the parent, which excuses the claim once.
		if (task.state.tryClaim(current) || startHandedOff) && !task.state.goalFound() {
			startHandedOff = false
			task.maze.Move(player, current)
			task.state.expandedNodes.Add(1)

			if path := task.trySplit(current); path != nil {
				return path
			}

			for _, neighbor := range task.maze.Neighbors(current) {
				task.frontier.push(neighbor)
				if !task.state.claimed(neighbor) {
					task.state.recordPredecessor(neighbor, current)
				}
			}
		}
	}
	return nil
}

// trySplit forks child tasks for the unclaimed neighbors of current when
// current is a junction, then joins them in spawn order. It returns the full
// path from this task's start through current to a goal found by a child,
// nil if no child succeeded.
//
// Corridor nodes (degree <= 2) never split: forking there would turn every
// sequential segment into scheduling overhead with no parallel gain.
func (task *solver) trySplit(current int) []int {
	neighbors := task.maze.Neighbors(current)
	if len(neighbors) <= 2 {
		return nil
	}

	children := make([]childTask, 0, len(neighbors))
	for _, neighbor := range neighbors {
		if task.state.tryClaim(neighbor) {
			child := newSolver(task.ctx, task.maze, task.state, neighbor, handedOff, task.forkAfter, task.logger)
			children = append(children, fork(child))
		}
	}
	if len(children) == 0 {
		return nil
	}
	task.state.forkEvents.Add(1)
	task.state.forkedTasks.Add(int64(len(children)))
	task.logger.Debug("forked at junction",
		"node", current,
		"degree", len(neighbors),
		"children", len(children))

	// Joins proceed in spawn order and are never cancelled: already-forked
	// work runs to completion even after a winner is known, and late
	// results are simply discarded.
	var winningPath []int
	for _, child := range children {
		result := child.join()
		if result != nil && winningPath == nil {
			winningPath = append(task.state.walkBack(task.start, current), result...)
			task.state.announceGoal()
			task.logger.Debug("goal reported by child",
				"junction", current,
				"path_length", len(winningPath))
		}
	}
	return winningPath
}
