package amaze

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryClaimSingleWinner(t *testing.T) {
	state := newSearchState()

	const claimers = 64
	var winners atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if state.tryClaim(7) {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), winners.Load())
}

func TestTryClaimRepeatAlwaysLoses(t *testing.T) {
	state := newSearchState()

	require.True(t, state.tryClaim(3))
	assert.False(t, state.tryClaim(3))
	assert.False(t, state.tryClaim(3))
	assert.True(t, state.claimed(3))
	assert.False(t, state.claimed(4))
}

func TestAnnounceGoalIsMonotonic(t *testing.T) {
	state := newSearchState()
	require.False(t, state.goalFound())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state.announceGoal()
		}()
	}
	wg.Wait()

	assert.True(t, state.goalFound())
	state.announceGoal()
	assert.True(t, state.goalFound(), "announcing again must never clear the flag")
}

func TestRecordPredecessorFirstWriterWins(t *testing.T) {
	state := newSearchState()

	state.recordPredecessor(5, 1)
	state.recordPredecessor(5, 2)

	assert.Equal(t, []int{1, 5}, state.walkBack(1, 5))
}

func TestWalkBackFollowsChain(t *testing.T) {
	state := newSearchState()
	state.recordPredecessor(1, 0)
	state.recordPredecessor(2, 1)
	state.recordPredecessor(3, 2)

	assert.Equal(t, []int{0, 1, 2, 3}, state.walkBack(0, 3))
	assert.Equal(t, []int{1, 2}, state.walkBack(1, 2))
	assert.Equal(t, []int{4}, state.walkBack(4, 4))
}
