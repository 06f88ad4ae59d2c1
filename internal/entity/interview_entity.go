package entity

import (
	"time"

	"interview-platform-be/internal/constant"
)

type Interview struct {
	Id               string
	IntervieweeName  string
	IntervieweeEmail string
	Level            string
	Phase            string
	NavigationKey    string
	// Notes maps a navigation key to the interviewer's notes for that
	// section (free text, interviewer-only).
	Notes           map[string]string
	GeneralComments string
	CreatedAt       time.Time
	ClosedAt        *time.Time
}

func (i *Interview) Closed() bool {
	return i.Phase == constant.PhaseClosed
}
