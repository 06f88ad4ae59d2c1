package dto

import "interview-platform-be/internal/entity"

// CandidateResponse hides the vote ledger: a voter only ever sees their own
// vote until finalization commits the outcome.
type CandidateResponse struct {
	Id          string            `json:"id"`
	Name        string            `json:"name"`
	Responses   []entity.Response `json:"responses"`
	Interviewed bool              `json:"interviewed"`
	OwnVote     *bool             `json:"own_vote,omitempty"`
	// Feedback and the tally are admin-only.
	Feedback  string `json:"feedback,omitempty"`
	VoteCount int    `json:"vote_count,omitempty"`
	Finalized bool   `json:"finalized"`
	Accepted  *bool  `json:"accepted,omitempty"`
}

type CastVoteRequest struct {
	Decision *bool `json:"decision" validate:"required"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

type SettingsResponse struct {
	Open bool `json:"open"`
}

type UpdateSettingsRequest struct {
	Open *bool `json:"open" validate:"required"`
}

// FinalizationReport partitions candidates after a committed finalization
// pass.
type FinalizationReport struct {
	Accepted []string `json:"accepted"`
	Denied   []string `json:"denied"`
}
