package services

import (
	"footballclub/models"

	"gorm.io/gorm"
)

type CreatePlayerRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Lastname string  `json:"lastname" binding:"required"`
	ClubID   *uint   `json:"club_id"`
}

func (s *RosterService) ListPlayers() ([]models.Player, error) {
	players := []models.Player{}
	err := s.inTx("list players", func(tx *gorm.DB) error {
		return tx.Order("id").Find(&players).Error
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (s *RosterService) GetPlayer(id uint) (*models.Player, error) {
	var player models.Player
	err := s.inTx("get player", func(tx *gorm.DB) error {
		return notFound(tx.First(&player, id).Error, "player %d", id)
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *RosterService) CreatePlayer(req *CreatePlayerRequest) (*models.Player, error) {
	player := models.Player{
		Name:     req.Name,
		Surname:  req.Surname,
		Lastname: req.Lastname,
		ClubID:   req.ClubID,
	}

	err := s.inTx("create player", func(tx *gorm.DB) error {
		return tx.Create(&player).Error
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// DeletePlayer removes a player and every statistic row it owns. Both
// deletes share one transaction, so either both land or neither does.
func (s *RosterService) DeletePlayer(id uint) error {
	return s.inTx("delete player", func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, id).Error; err != nil {
			return notFound(err, "player %d", id)
		}

		if err := tx.Where("player_id = ?", id).Delete(&models.Statistic{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&player)
		if res.Error != nil {
			return res.Error
		}
		// Lost a race with a concurrent delete.
		if res.RowsAffected == 0 {
			return notFound(gorm.ErrRecordNotFound, "player %d", id)
		}
		return nil
	})
}
