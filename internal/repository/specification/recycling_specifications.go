package specification

import "gorm.io/gorm"

// AreaContains filters pickup schedules by a case-insensitive area match.
type AreaContains struct {
	Area string
}

func (s AreaContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("area ILIKE ?", "%"+s.Area+"%")
}
