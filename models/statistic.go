package models

type Statistic struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	PlayerID   uint   `json:"player_id" gorm:"not null;index"`
	DateOfGoal string `json:"date_of_goal" gorm:"not null"`
}
