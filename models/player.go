package models

type Player struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Lastname string  `json:"lastname" gorm:"not null"`
	ClubID   *uint   `json:"club_id" gorm:"index"`

	// Relationships
	Statistics []Statistic `json:"-" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
