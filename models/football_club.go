package models

type FootballClub struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// TableName keeps the table name the roster has always been deployed with.
func (FootballClub) TableName() string {
	return "football_clubss"
}
