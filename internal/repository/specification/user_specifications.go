package specification

import "gorm.io/gorm"

// HasRole selects users whose roles jsonb map carries the given role flag
// set to true.
type HasRole struct {
	Role string
}

func (s HasRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(roles ->> ?)::boolean IS TRUE", s.Role)
}
