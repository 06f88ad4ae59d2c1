package entity

import (
	"time"

	"github.com/google/uuid"
)

// Response is one question-answer pair from the candidate's submitted
// application. The sequence is immutable after submission.
type Response struct {
	Id       int    `json:"id"`
	Question string `json:"question"`
	Value    string `json:"value"`
}

type Application struct {
	Id          uuid.UUID
	Email       string
	Responses   []Response
	Interviewed bool
	// Votes is the vote ledger: voter id -> decision. Each voter owns their
	// key; overwrites before finalization are allowed.
	Votes    map[string]bool
	Feedback string
	// Accepted is authoritative only once Finalized is true.
	Accepted  *bool
	Finalized bool
	Version   int
	CreatedAt time.Time
}

// Name returns the candidate's display name, by convention the value of the
// first response.
func (a *Application) Name() string {
	for _, r := range a.Responses {
		if r.Id == 1 {
			return r.Value
		}
	}
	return ""
}
