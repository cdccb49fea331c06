package services

import (
	"footballclub/models"

	"gorm.io/gorm"
)

type StatisticRequest struct {
	PlayerID   uint   `json:"player_id" binding:"required"`
	DateOfGoal string `json:"date_of_goal" binding:"required"`
}

func playerExists(tx *gorm.DB, id uint) error {
	var player models.Player
	return notFound(tx.Select("id").First(&player, id).Error, "player %d", id)
}

func (s *RosterService) CreateStatistic(req *StatisticRequest) (*models.Statistic, error) {
	stat := models.Statistic{
		PlayerID:   req.PlayerID,
		DateOfGoal: req.DateOfGoal,
	}

	err := s.inTx("create statistic", func(tx *gorm.DB) error {
		if err := playerExists(tx, req.PlayerID); err != nil {
			return err
		}
		return tx.Create(&stat).Error
	})
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (s *RosterService) UpdateStatistic(id uint, req *StatisticRequest) (*models.Statistic, error) {
	var stat models.Statistic
	err := s.inTx("update statistic", func(tx *gorm.DB) error {
		if err := tx.First(&stat, id).Error; err != nil {
			return notFound(err, "statistic %d", id)
		}
		if err := playerExists(tx, req.PlayerID); err != nil {
			return err
		}

		stat.PlayerID = req.PlayerID
		stat.DateOfGoal = req.DateOfGoal
		return tx.Save(&stat).Error
	})
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (s *RosterService) ListPlayerStatistics(playerID uint) ([]models.Statistic, error) {
	stats := []models.Statistic{}
	err := s.inTx("list player statistics", func(tx *gorm.DB) error {
		if err := playerExists(tx, playerID); err != nil {
			return err
		}
		return tx.Where("player_id = ?", playerID).Order("id").Find(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// StatisticsForUser returns the statistics of the player whose name matches
// the caller's username.
func (s *RosterService) StatisticsForUser(username string) ([]models.Statistic, error) {
	stats := []models.Statistic{}
	err := s.inTx("list user statistics", func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.Where("name = ?", username).Order("id").First(&player).Error; err != nil {
			return notFound(err, "player for user %q", username)
		}
		return tx.Where("player_id = ?", player.ID).Order("id").Find(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
