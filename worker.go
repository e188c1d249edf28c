package amaze

// childTask is the handle for a forked solver running on its own goroutine.
// The Go scheduler is the task substrate; fork spawns the goroutine and join
// blocks until its result arrives.
type childTask struct {
	outcome chan childOutcome
}

type childOutcome struct {
	path     []int
	panicked any
}

// fork schedules child asynchronously and returns immediately.
func fork(child *solver) childTask {
	task := childTask{outcome: make(chan childOutcome, 1)}
	go func() {
		defer func() {
			if reason := recover(); reason != nil {
				task.outcome <- childOutcome{panicked: reason}
			}
		}()
		task.outcome <- childOutcome{path: child.run()}
	}()
	return task
}

// join blocks until the forked solver completes and returns its path, nil if
// it exhausted without reaching a goal. A panic inside the child surfaces
// here, at the join, on the joining goroutine.
func (task childTask) join() []int {
	outcome := <-task.outcome
	if outcome.panicked != nil {
		panic(outcome.panicked)
	}
	return outcome.path
}
