package model

import (
	"time"

	"gorm.io/datatypes"
)

// Interview is the backing record of an interview room. The room id is
// externally assigned and doubles as the join credential for the
// interviewee, so it is the primary key rather than a generated uuid.
type Interview struct {
	Id               string         `gorm:"type:varchar(64);primaryKey"`
	IntervieweeName  string         `gorm:"type:varchar(255);not null"`
	IntervieweeEmail string         `gorm:"type:varchar(255)"`
	Level            string         `gorm:"type:varchar(64);not null"`
	Phase            string         `gorm:"type:varchar(16);not null;default:'unopened';index"`
	NavigationKey    string         `gorm:"type:varchar(64);not null;default:'overview'"`
	Notes            datatypes.JSON `gorm:"type:jsonb"`
	GeneralComments  string         `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	ClosedAt         *time.Time
}

func (Interview) TableName() string {
	return "interviews"
}
