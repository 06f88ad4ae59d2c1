package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Roles        map[string]bool
	Status       string
	CreatedAt    time.Time
}
