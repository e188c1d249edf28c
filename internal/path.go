package internal

// WalkBack rebuilds a path by following predecessor links from to back to
// from, then reversing into from→to order. The lookup reports the recorded
// predecessor of a node, if any.
func WalkBack(predecessorOf func(node int) (int, bool), from int, to int) []int {
	path := []int{to}
	current := to
	for current != from {
		previousNode, exists := predecessorOf(current)
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
