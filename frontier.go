package amaze

// frontier is a task-local LIFO stack of pending node ids, giving each
// search task its depth-first order. Never shared across tasks.
type frontier []int

func (stack frontier) empty() bool { return len(stack) == 0 }

func (stack *frontier) push(node int) {
	*stack = append(*stack, node)
}

func (stack *frontier) pop() int {
	oldStack := *stack
	n := len(oldStack)
	node := oldStack[n-1]
	*stack = oldStack[:n-1]
	return node
}
