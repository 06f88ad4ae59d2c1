package specification

import "gorm.io/gorm"

// Interviewed selects candidates whose interview is done and who are
// therefore deliberation subjects.
type Interviewed struct{}

func (s Interviewed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interviewed = ?", true)
}

// NotFinalized selects candidates without a committed outcome.
type NotFinalized struct{}

func (s NotFinalized) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("finalized = ?", false)
}
