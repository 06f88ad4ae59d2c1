package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Level is a difficulty tier (Intermediate, Advanced, ...) with an overview
// shown on the room's first tab.
type Level struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	Overview  string         `gorm:"type:text;not null"`
	SortOrder int            `gorm:"default:0"`
	Questions []Question     `gorm:"foreignKey:LevelId"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Level) TableName() string {
	return "levels"
}

type Question struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LevelId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null"`
	Answer      string         `gorm:"type:text"`
	ImageURL    string         `gorm:"type:varchar(512)"`
	SortOrder   int            `gorm:"default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Question) TableName() string {
	return "questions"
}
