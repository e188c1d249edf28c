package amaze

import (
	"context"

	"github.com/pdrpinto/amaze/internal"
)

// StepSnapshot exposes the per-iteration state of a step-wise search.
type StepSnapshot struct {
	Current     int
	Frontier    []int
	Visited     map[int]bool
	Predecessor map[int]int
	Done        bool
	Found       bool
	Path        []int
	StepIndex   int
}

// Stepper drives a single-player depth-first search one expansion at a time,
// for UIs and debugging tools. It never forks; visited and predecessor state
// are private to the stepper.
type Stepper struct {
	ctx    context.Context
	maze   Maze
	start  int
	player int

	frontier    frontier
	visited     map[int]bool
	predecessor map[int]int

	stepCount int
	done      bool
	found     bool
	goal      int
}

// NewStepper creates a stepper positioned on the maze's start node.
func NewStepper(parent context.Context, maze Maze) *Stepper {
	stepper := &Stepper{
		ctx:         parent,
		maze:        maze,
		start:       maze.Start(),
		visited:     make(map[int]bool),
		predecessor: make(map[int]int),
	}
	stepper.player = maze.NewPlayer(stepper.start)
	stepper.frontier.push(stepper.start)
	return stepper
}

// Step advances the search by one node expansion and returns a snapshot.
// Once Done is set, further calls return the final snapshot unchanged.
func (stepper *Stepper) Step() (StepSnapshot, error) {
	if err := stepper.ctx.Err(); err != nil {
		stepper.done = true
		return stepper.snapshot(0, nil), err
	}
	if stepper.done {
		return stepper.snapshot(stepper.goal, stepper.finalPath()), nil
	}
	if stepper.frontier.empty() {
		stepper.done = true
		return stepper.snapshot(0, nil), nil
	}

	stepper.stepCount++
	current := stepper.frontier.pop()

	if stepper.maze.HasGoal(current) {
		stepper.maze.Move(stepper.player, current)
		stepper.done = true
		stepper.found = true
		stepper.goal = current
		return stepper.snapshot(current, stepper.finalPath()), nil
	}

	if stepper.visited[current] {
		return stepper.Step()
	}
	stepper.visited[current] = true
	stepper.maze.Move(stepper.player, current)

	for _, neighbor := range stepper.maze.Neighbors(current) {
		stepper.frontier.push(neighbor)
		if !stepper.visited[neighbor] {
			stepper.predecessor[neighbor] = current
		}
	}
	return stepper.snapshot(current, nil), nil
}

func (stepper *Stepper) finalPath() []int {
	if !stepper.found {
		return nil
	}
	return internal.WalkBack(func(node int) (int, bool) {
		previousNode, ok := stepper.predecessor[node]
		return previousNode, ok
	}, stepper.start, stepper.goal)
}

func (stepper *Stepper) snapshot(current int, path []int) StepSnapshot {
	return StepSnapshot{
		Current:     current,
		Frontier:    append([]int(nil), stepper.frontier...),
		Visited:     copyBoolMap(stepper.visited),
		Predecessor: copyIntMap(stepper.predecessor),
		Done:        stepper.done,
		Found:       stepper.found,
		Path:        path,
		StepIndex:   stepper.stepCount,
	}
}

func copyBoolMap(source map[int]bool) map[int]bool {
	copied := make(map[int]bool, len(source))
	for key, value := range source {
		copied[key] = value
	}
	return copied
}

func copyIntMap(source map[int]int) map[int]int {
	copied := make(map[int]int, len(source))
	for key, value := range source {
		copied[key] = value
	}
	return copied
}
