package model

import "time"

// DeliberationSettings is a single-row record gating the deliberation cycle.
// Updated through a version-checked write so concurrent admin toggles cannot
// silently overwrite each other.
type DeliberationSettings struct {
	Id        int       `gorm:"primaryKey"`
	Open      bool      `gorm:"not null;default:false"`
	Version   int       `gorm:"not null;default:1"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (DeliberationSettings) TableName() string {
	return "deliberation_settings"
}
