package amaze

import (
	"sync"
	"sync/atomic"

	"github.com/pdrpinto/amaze/internal"
)

// searchState is the coordination state shared by every task of one Solve
// call. It is created when the solve starts and discarded when it returns;
// nothing here is process-wide.
type searchState struct {
	// visited holds every node some task has claimed. LoadOrStore is the
	// single claiming primitive: the first task to store a node owns the
	// right to expand it.
	visited sync.Map // node id -> struct{}

	// predecessor records discovered-from edges, first writer wins. A task
	// that loses a claim race never walks onward from that node, so its
	// partial links are never followed during path reconstruction.
	predecessor sync.Map // node id -> node id

	// goal transitions false to true at most once and is never unset.
	goal atomic.Bool

	expandedNodes atomic.Int64
	forkedTasks   atomic.Int64
	forkEvents    atomic.Int64
}

func newSearchState() *searchState {
	return &searchState{}
}

// tryClaim atomically marks node visited and reports whether the caller was
// the one to claim it. Exactly one caller wins among concurrent claimers;
// repeat claims on the same node always lose.
func (state *searchState) tryClaim(node int) bool {
	_, alreadyClaimed := state.visited.LoadOrStore(node, struct{}{})
	return !alreadyClaimed
}

// claimed reports whether node has been claimed by any task.
func (state *searchState) claimed(node int) bool {
	_, ok := state.visited.Load(node)
	return ok
}

func (state *searchState) goalFound() bool {
	return state.goal.Load()
}

// announceGoal raises the goal flag. Idempotent; the flag never goes back to
// false once raised.
func (state *searchState) announceGoal() {
	state.goal.CompareAndSwap(false, true)
}

// recordPredecessor notes that node was discovered from the given node.
// Only the first recording for a node sticks.
func (state *searchState) recordPredecessor(node int, from int) {
	state.predecessor.LoadOrStore(node, from)
}

// walkBack follows predecessor links from to back to from and returns the
// path in walking order. The solver only calls this for chains it recorded
// while expanding, so the chain is complete.
func (state *searchState) walkBack(from int, to int) []int {
	return internal.WalkBack(func(node int) (int, bool) {
		value, ok := state.predecessor.Load(node)
		if !ok {
			return 0, false
		}
		return value.(int), true
	}, from, to)
}
