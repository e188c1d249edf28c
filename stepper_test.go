package amaze

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepToCompletion drives the stepper until Done, with a hard cap so a
// broken stepper cannot hang the test.
func stepToCompletion(t *testing.T, stepper *Stepper) StepSnapshot {
	t.Helper()
	for i := 0; i < 10_000; i++ {
		snapshot, err := stepper.Step()
		require.NoError(t, err)
		if snapshot.Done {
			return snapshot
		}
	}
	t.Fatal("stepper never finished")
	return StepSnapshot{}
}

func TestStepperCorridorMatchesSolve(t *testing.T) {
	final := stepToCompletion(t, NewStepper(context.Background(), corridor(10, 9)))

	require.True(t, final.Found)
	result, err := Solve(context.Background(), corridor(10, 9))
	require.NoError(t, err)
	if diff := cmp.Diff(result.Path, final.Path); diff != "" {
		t.Errorf("stepper path differs from Solve path (-solve +stepper):\n%s", diff)
	}
}

func TestStepperNoGoalExhausts(t *testing.T) {
	final := stepToCompletion(t, NewStepper(context.Background(), corridor(6)))

	assert.False(t, final.Found)
	assert.Nil(t, final.Path)
}

func TestStepperSnapshotsAreCopies(t *testing.T) {
	stepper := NewStepper(context.Background(), corridor(10, 9))

	first, err := stepper.Step()
	require.NoError(t, err)
	first.Visited[99] = true
	first.Predecessor[99] = 98

	second, err := stepper.Step()
	require.NoError(t, err)
	assert.NotContains(t, second.Visited, 99, "mutating a snapshot must not leak into the stepper")
	assert.NotContains(t, second.Predecessor, 99)
}

func TestStepperFinalSnapshotIsStable(t *testing.T) {
	stepper := NewStepper(context.Background(), corridor(4, 3))
	final := stepToCompletion(t, stepper)

	again, err := stepper.Step()
	require.NoError(t, err)
	if diff := cmp.Diff(final, again); diff != "" {
		t.Errorf("stepping after Done changed the snapshot:\n%s", diff)
	}
}

func TestStepperStepIndexCountsExpansions(t *testing.T) {
	stepper := NewStepper(context.Background(), corridor(4, 3))
	final := stepToCompletion(t, stepper)

	// Three corridor cells expanded plus the goal pop.
	assert.Equal(t, 4, final.StepIndex)
}

func TestStepperCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stepper := NewStepper(ctx, corridor(10, 9))
	cancel()

	snapshot, err := stepper.Step()
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, snapshot.Done)
	assert.False(t, snapshot.Found)
}

func TestStepperJunctionStaysSingleTask(t *testing.T) {
	m := newGraphMaze(0, map[int][]int{
		0: {1, 2, 3},
		1: {0},
		2: {0, 4},
		3: {0},
		4: {2},
	}, 4)

	final := stepToCompletion(t, NewStepper(context.Background(), m))

	require.True(t, final.Found)
	requireValidWalk(t, m, final.Path)
	assert.Equal(t, []int{0, 2, 4}, final.Path)
	assert.Equal(t, 1, m.playerCount(), "the stepper never forks players")
}
