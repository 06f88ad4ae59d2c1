// Package consensus implements the deliberation quorum rule.
//
// The functions here are pure: they read a vote ledger (voter id -> decision)
// and return a deterministic outcome regardless of iteration order. All
// persistence and gating around them lives in the deliberation service.
package consensus

// AcceptThreshold is the fraction of positive votes required for acceptance.
const AcceptThreshold = 0.75

// Outcome is the computed result for a single candidate.
type Outcome struct {
	Accepted bool
	Positive int
	Total    int
}

// ComputeOutcome applies the quorum rule to a vote ledger.
// An empty ledger means default deny.
func ComputeOutcome(votes map[string]bool) Outcome {
	total := len(votes)
	if total == 0 {
		return Outcome{Accepted: false, Positive: 0, Total: 0}
	}

	positive := 0
	for _, decision := range votes {
		if decision {
			positive++
		}
	}

	return Outcome{
		Accepted: float64(positive)/float64(total) >= AcceptThreshold,
		Positive: positive,
		Total:    total,
	}
}

// FeedbackSatisfied reports whether a candidate may be finalized.
// Accepted candidates are exempt from written feedback; denied candidates
// must have a non-empty feedback entry.
func FeedbackSatisfied(votes map[string]bool, feedback string) bool {
	return ComputeOutcome(votes).Accepted || feedback != ""
}
