// Package maze provides rectangular grid mazes for the amaze solver: carved
// passages, goal cells, and player tokens whose moves can be observed for
// animation.
package maze

import (
	"sync"

	"github.com/google/uuid"
)

// MoveEvent describes one player relocation, delivered to the listener in
// the order moves are applied to the grid.
type MoveEvent struct {
	Player int
	Token  uuid.UUID
	Node   int
}

type player struct {
	token    uuid.UUID
	position int
}

// Grid is a rectangular maze of square cells. Cell ids run row-major from 0
// at the top-left corner; the id is stable for the grid's lifetime.
//
// Grid satisfies the solver's Maze contract. NewPlayer and Move are safe for
// concurrent use; the grid's shape is immutable after generation.
type Grid struct {
	width, height int
	adjacent      [][]int
	start         int
	goals         map[int]struct{}

	mu       sync.Mutex
	players  []player
	listener func(MoveEvent)
}

func (grid *Grid) Width() int  { return grid.width }
func (grid *Grid) Height() int { return grid.height }

// NodeAt returns the cell id at the given row and column.
func (grid *Grid) NodeAt(row, column int) int { return row*grid.width + column }

// Coords returns the row and column of a cell id.
func (grid *Grid) Coords(node int) (row, column int) {
	return node / grid.width, node % grid.width
}

// Start returns the node every solve begins from.
func (grid *Grid) Start() int { return grid.start }

// Neighbors returns the cells reachable from node through open passages.
func (grid *Grid) Neighbors(node int) []int {
	return append([]int(nil), grid.adjacent[node]...)
}

// HasGoal reports whether node is a goal cell.
func (grid *Grid) HasGoal(node int) bool {
	_, ok := grid.goals[node]
	return ok
}

// Goals returns the goal cell ids.
func (grid *Grid) Goals() []int {
	ids := make([]int, 0, len(grid.goals))
	for node := range grid.goals {
		ids = append(ids, node)
	}
	return ids
}

// SetListener registers a callback observing every player move, including
// the placement move of NewPlayer. Must be set before solving begins.
func (grid *Grid) SetListener(listener func(MoveEvent)) {
	grid.listener = listener
}

// NewPlayer places a new player token on startNode and returns its id.
func (grid *Grid) NewPlayer(startNode int) int {
	grid.mu.Lock()
	id := len(grid.players)
	token := uuid.New()
	grid.players = append(grid.players, player{token: token, position: startNode})
	listener := grid.listener
	grid.mu.Unlock()

	if listener != nil {
		listener(MoveEvent{Player: id, Token: token, Node: startNode})
	}
	return id
}

// Move relocates a player token to node.
func (grid *Grid) Move(playerID int, node int) {
	grid.mu.Lock()
	grid.players[playerID].position = node
	token := grid.players[playerID].token
	listener := grid.listener
	grid.mu.Unlock()

	if listener != nil {
		listener(MoveEvent{Player: playerID, Token: token, Node: node})
	}
}

// PlayerPosition returns the current node of a player token.
func (grid *Grid) PlayerPosition(playerID int) int {
	grid.mu.Lock()
	defer grid.mu.Unlock()
	return grid.players[playerID].position
}

// PlayerCount returns how many player tokens have been placed.
func (grid *Grid) PlayerCount() int {
	grid.mu.Lock()
	defer grid.mu.Unlock()
	return len(grid.players)
}

// PlayerToken returns the stable token identifying a player across systems.
func (grid *Grid) PlayerToken(playerID int) uuid.UUID {
	grid.mu.Lock()
	defer grid.mu.Unlock()
	return grid.players[playerID].token
}

// Connected reports whether an open passage joins a and b.
func (grid *Grid) Connected(a, b int) bool {
	for _, neighbor := range grid.adjacent[a] {
		if neighbor == b {
			return true
		}
	}
	return false
}
