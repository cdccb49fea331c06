package services

import (
	"footballclub/models"

	"gorm.io/gorm"
)

type CreateFootballClubRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *RosterService) CreateFootballClub(req *CreateFootballClubRequest) (*models.FootballClub, error) {
	club := models.FootballClub{Name: req.Name}
	err := s.inTx("create football club", func(tx *gorm.DB) error {
		return tx.Create(&club).Error
	})
	if err != nil {
		return nil, err
	}
	return &club, nil
}
