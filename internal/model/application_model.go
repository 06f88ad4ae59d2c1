package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application is a deliberation subject. Votes is the per-candidate vote
// ledger (voter id -> decision); each voter only ever touches their own key,
// via a jsonb partial update, so concurrent voting is lost-update-free.
type Application struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email       string            `gorm:"type:varchar(255);not null"`
	Responses   datatypes.JSON    `gorm:"type:jsonb"`
	Interviewed bool              `gorm:"default:false;index"`
	Votes       datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	Feedback    string            `gorm:"type:text;not null;default:''"`
	Accepted    *bool
	Finalized   bool           `gorm:"default:false;index"`
	Version     int            `gorm:"not null;default:1"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Application) TableName() string {
	return "applications"
}
