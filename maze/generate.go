package maze

import (
	"fmt"
	"math/rand"
)

// Config defines parameters for maze generation.
type Config struct {
	Width, Height int
	// GoalCount cells are marked as goals, never the start cell.
	GoalCount int
	// ExtraOpenings walls are removed after carving, turning the perfect
	// maze into a braided one with more junctions and cycles.
	ExtraOpenings int
	Seed          int64
}

// Generate carves a maze with a randomized depth-first backtracker, then
// opens extra walls and places goals. The same Config always produces the
// same grid.
func Generate(config Config) (*Grid, error) {
	if config.Width < 2 || config.Height < 2 {
		return nil, fmt.Errorf("maze: grid must be at least 2x2, got %dx%d", config.Width, config.Height)
	}
	cellCount := config.Width * config.Height
	if config.GoalCount < 0 || config.GoalCount >= cellCount {
		return nil, fmt.Errorf("maze: goal count %d out of range for %d cells", config.GoalCount, cellCount)
	}
	if config.ExtraOpenings < 0 {
		return nil, fmt.Errorf("maze: extra openings must be non-negative, got %d", config.ExtraOpenings)
	}

	random := rand.New(rand.NewSource(config.Seed))
	grid := &Grid{
		width:    config.Width,
		height:   config.Height,
		adjacent: make([][]int, cellCount),
		goals:    make(map[int]struct{}, config.GoalCount),
	}

	carve(grid, random)
	braid(grid, random, config.ExtraOpenings)
	placeGoals(grid, random, config.GoalCount)
	return grid, nil
}

// carve runs a randomized depth-first backtracker from the start cell,
// opening a passage into each cell the first time it is reached. The result
// is a perfect maze: every cell reachable, no cycles.
func carve(grid *Grid, random *rand.Rand) {
	visited := make([]bool, grid.width*grid.height)
	stack := []int{grid.start}
	visited[grid.start] = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		candidates := unvisitedAdjacentCells(grid, visited, current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := candidates[random.Intn(len(candidates))]
		openPassage(grid, current, next)
		visited[next] = true
		stack = append(stack, next)
	}
}

// braid removes up to count randomly chosen interior walls, creating cycles
// and raising cell degrees so junctions appear.
func braid(grid *Grid, random *rand.Rand, count int) {
	for opened := 0; opened < count; {
		node := random.Intn(grid.width * grid.height)
		candidates := closedAdjacentCells(grid, node)
		if len(candidates) == 0 {
			// Fully open cell; walls may simply run out on tiny grids.
			if fullyOpen(grid) {
				return
			}
			continue
		}
		openPassage(grid, node, candidates[random.Intn(len(candidates))])
		opened++
	}
}

func placeGoals(grid *Grid, random *rand.Rand, count int) {
	cellCount := grid.width * grid.height
	for len(grid.goals) < count {
		node := random.Intn(cellCount)
		if node == grid.start {
			continue
		}
		grid.goals[node] = struct{}{}
	}
}

// gridAdjacentCells returns the cells bordering node in the grid, whether or
// not a passage joins them.
func gridAdjacentCells(grid *Grid, node int) []int {
	row, column := grid.Coords(node)
	cells := make([]int, 0, 4)
	if row > 0 {
		cells = append(cells, node-grid.width)
	}
	if row < grid.height-1 {
		cells = append(cells, node+grid.width)
	}
	if column > 0 {
		cells = append(cells, node-1)
	}
	if column < grid.width-1 {
		cells = append(cells, node+1)
	}
	return cells
}

func unvisitedAdjacentCells(grid *Grid, visited []bool, node int) []int {
	cells := gridAdjacentCells(grid, node)
	candidates := cells[:0]
	for _, cell := range cells {
		if !visited[cell] {
			candidates = append(candidates, cell)
		}
	}
	return candidates
}

func closedAdjacentCells(grid *Grid, node int) []int {
	cells := gridAdjacentCells(grid, node)
	candidates := cells[:0]
	for _, cell := range cells {
		if !grid.Connected(node, cell) {
			candidates = append(candidates, cell)
		}
	}
	return candidates
}

func openPassage(grid *Grid, a, b int) {
	grid.adjacent[a] = append(grid.adjacent[a], b)
	grid.adjacent[b] = append(grid.adjacent[b], a)
}

func fullyOpen(grid *Grid) bool {
	for node := range grid.adjacent {
		if len(closedAdjacentCells(grid, node)) > 0 {
			return false
		}
	}
	return true
}
