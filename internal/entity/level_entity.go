package entity

import "github.com/google/uuid"

type Level struct {
	Id        uuid.UUID
	Name      string
	Overview  string
	SortOrder int
	Questions []Question
}

type Question struct {
	Id          uuid.UUID
	LevelId     uuid.UUID
	Title       string
	Description string
	Answer      string
	ImageURL    string
	SortOrder   int
}
