package dto

// ResumeResponse carries identifier-only resume state; callers re-fetch
// live room/candidate records before acting on it.
type ResumeResponse struct {
	Room         *RoomResumeState         `json:"room,omitempty"`
	Deliberation *DeliberationResumeState `json:"deliberation,omitempty"`
}

type RoomResumeState struct {
	RoomId        string `json:"room_id"`
	NavigationKey string `json:"navigation_key"`
	// Phase is re-read from the live record at resume time so a client
	// never rejoins a room that closed while it was away.
	Phase string `json:"phase"`
}

type DeliberationResumeState struct {
	CandidateId string `json:"candidate_id"`
}

type SaveResumeRequest struct {
	RoomId        string `json:"room_id,omitempty"`
	NavigationKey string `json:"navigation_key,omitempty"`
	CandidateId   string `json:"candidate_id,omitempty"`
}
