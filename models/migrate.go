package models

import "gorm.io/gorm"

// Migrate creates or updates the roster tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&FootballClub{},
		&Player{},
		&Statistic{},
	)
}
