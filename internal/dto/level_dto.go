package dto

type LevelRequest struct {
	Name      string `json:"name" validate:"required"`
	Overview  string `json:"overview" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type LevelResponse struct {
	Id        string             `json:"id"`
	Name      string             `json:"name"`
	Overview  string             `json:"overview"`
	SortOrder int                `json:"sort_order"`
	Questions []QuestionResponse `json:"questions"`
}

type QuestionRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Answer      string `json:"answer"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
}

type QuestionResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Answer      string `json:"answer,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	SortOrder   int    `json:"sort_order"`
}
