package dto

type RoomQuestion struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	// Answer is only populated for interviewer payloads.
	Answer string `json:"answer,omitempty"`
}

// RoomResponse is the payload both participants load when joining a room.
// Interviewer-only fields stay empty for the interviewee.
type RoomResponse struct {
	Id              string            `json:"id"`
	Phase           string            `json:"phase"`
	IntervieweeName string            `json:"interviewee_name"`
	Level           string            `json:"level"`
	NavigationKey   string            `json:"navigation_key"`
	Overview        string            `json:"overview"`
	Questions       []RoomQuestion    `json:"questions"`
	Notes           map[string]string `json:"notes,omitempty"`
}

type CreateInterviewRequest struct {
	Id               string `json:"id" validate:"required,min=4,max=64"`
	IntervieweeName  string `json:"interviewee_name" validate:"required"`
	IntervieweeEmail string `json:"interviewee_email" validate:"omitempty,email"`
	Level            string `json:"level" validate:"required"`
}

type SaveNotesRequest struct {
	SectionKey string `json:"section_key" validate:"required"`
	Notes      string `json:"notes"`
}

type CloseRoomRequest struct {
	GeneralComments string `json:"general_comments" validate:"required"`
}
