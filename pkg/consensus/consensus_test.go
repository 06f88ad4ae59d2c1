package consensus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOutcomeEmptyLedger(t *testing.T) {
	out := ComputeOutcome(map[string]bool{})
	assert.False(t, out.Accepted)
	assert.Equal(t, 0, out.Total)

	out = ComputeOutcome(nil)
	assert.False(t, out.Accepted)
}

func TestComputeOutcomeThreshold(t *testing.T) {
	tests := []struct {
		name     string
		votes    map[string]bool
		accepted bool
	}{
		{
			name:     "exactly at threshold (3/4)",
			votes:    map[string]bool{"a": true, "b": true, "c": true, "d": false},
			accepted: true,
		},
		{
			name:     "below threshold (1/4)",
			votes:    map[string]bool{"a": true, "b": false, "c": false, "d": false},
			accepted: false,
		},
		{
			name:     "just below threshold (2/3)",
			votes:    map[string]bool{"a": true, "b": true, "c": false},
			accepted: false,
		},
		{
			name:     "unanimous accept",
			votes:    map[string]bool{"a": true, "b": true},
			accepted: true,
		},
		{
			name:     "unanimous deny",
			votes:    map[string]bool{"a": false},
			accepted: false,
		},
		{
			name:     "single positive vote",
			votes:    map[string]bool{"a": true},
			accepted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ComputeOutcome(tt.votes)
			assert.Equal(t, tt.accepted, out.Accepted)
			assert.Equal(t, len(tt.votes), out.Total)
		})
	}
}

func TestComputeOutcomeOrderIndependent(t *testing.T) {
	// Build the same ledger through different insertion orders and assert the
	// outcome never changes.
	voters := []string{"v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8"}
	decisions := []bool{true, true, true, false, true, true, false, true} // 6/8 = 0.75

	orders := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{7, 6, 5, 4, 3, 2, 1, 0},
		{3, 0, 7, 1, 6, 2, 5, 4},
	}

	var first Outcome
	for i, order := range orders {
		votes := make(map[string]bool)
		for _, idx := range order {
			votes[voters[idx]] = decisions[idx]
		}
		out := ComputeOutcome(votes)
		if i == 0 {
			first = out
			assert.True(t, out.Accepted, "6/8 should meet the 0.75 threshold")
		}
		assert.Equal(t, first, out, fmt.Sprintf("order %v changed the outcome", order))
	}
}

func TestFeedbackSatisfied(t *testing.T) {
	accepted := map[string]bool{"a": true, "b": true, "c": true, "d": false}
	denied := map[string]bool{"a": true, "b": false, "c": false, "d": false}

	// Accepted candidates never require feedback.
	assert.True(t, FeedbackSatisfied(accepted, ""))
	assert.True(t, FeedbackSatisfied(accepted, "great interview"))

	// Denied candidates require a non-empty feedback entry.
	assert.False(t, FeedbackSatisfied(denied, ""))
	assert.True(t, FeedbackSatisfied(denied, "needs stronger fundamentals"))

	// No votes at all means denied, so feedback is required.
	assert.False(t, FeedbackSatisfied(map[string]bool{}, ""))
	assert.True(t, FeedbackSatisfied(map[string]bool{}, "did not interview"))
}
