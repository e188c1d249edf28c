// Package amaze provides a fork/join multi-player depth-first maze solver.
//
// It exposes two main entry points:
//
//   - Solve: explore a maze in parallel and get a Result with the path to a goal.
//   - Stepper: iterate a single-player depth-first search one expansion at a time
//     to drive UIs or debugging tools.
//
// The library is generic over any graph-shaped maze satisfying the Maze
// contract. Independent branches are explored by separately scheduled tasks
// sharing a per-solve visited set and goal flag; forking happens only at
// junctions so sequential corridors stay on a single task.
package amaze
