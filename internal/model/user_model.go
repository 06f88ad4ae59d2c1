package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	Id           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string            `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string            `gorm:"type:varchar(255);not null"`
	PasswordHash string            `gorm:"type:varchar(255);not null"`
	Roles        datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	Status       string            `gorm:"type:varchar(16);not null;default:'active'"`
	CreatedAt    time.Time         `gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt    `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
