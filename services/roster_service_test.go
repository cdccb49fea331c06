package services_test

import (
	"errors"
	"testing"

	"footballclub/models"
	"footballclub/services"
	"footballclub/testutil"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func seedPlayer(t *testing.T, roster *services.RosterService, name string, goals int) *models.Player {
	t.Helper()
	player, err := roster.CreatePlayer(&services.CreatePlayerRequest{Name: strPtr(name), Lastname: name + "ov"})
	require.NoError(t, err)
	for i := 0; i < goals; i++ {
		_, err := roster.CreateStatistic(&services.StatisticRequest{PlayerID: player.ID, DateOfGoal: "2024-05-01"})
		require.NoError(t, err)
	}
	return player
}

func TestCreateAndListPlayers(t *testing.T) {
	roster := services.NewRosterService(testutil.NewDB(t))

	players, err := roster.ListPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)

	clubID := uint(7)
	created, err := roster.CreatePlayer(&services.CreatePlayerRequest{
		Name:     strPtr("Lev"),
		Surname:  strPtr("Ivanovich"),
		Lastname: "Yashin",
		ClubID:   &clubID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	second, err := roster.CreatePlayer(&services.CreatePlayerRequest{Lastname: "Streltsov"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
	assert.Nil(t, second.Name)

	players, err = roster.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, *created, players[0])

	got, err := roster.GetPlayer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yashin", got.Lastname)
}

func TestGetPlayerNotFound(t *testing.T) {
	roster := services.NewRosterService(testutil.NewDB(t))

	_, err := roster.GetPlayer(42)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeletePlayerNotFoundLeavesTablesAlone(t *testing.T) {
	db := testutil.NewDB(t)
	roster := services.NewRosterService(db)
	seedPlayer(t, roster, "ivan", 2)

	err := roster.DeletePlayer(999999)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, "player 999999 not found", err.Error())

	assert.EqualValues(t, 1, count(t, db, &models.Player{}, ""))
	assert.EqualValues(t, 2, count(t, db, &models.Statistic{}, ""))
}

func TestDeletePlayerRemovesOwnedStatistics(t *testing.T) {
	db := testutil.NewDB(t)
	roster := services.NewRosterService(db)
	victim := seedPlayer(t, roster, "ivan", 3)
	other := seedPlayer(t, roster, "petr", 2)

	require.NoError(t, roster.DeletePlayer(victim.ID))

	assert.Zero(t, count(t, db, &models.Player{}, "id = ?", victim.ID))
	assert.Zero(t, count(t, db, &models.Statistic{}, "player_id = ?", victim.ID))
	assert.EqualValues(t, 2, count(t, db, &models.Statistic{}, "player_id = ?", other.ID))

	err := roster.DeletePlayer(victim.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeletePlayerIsAtomic(t *testing.T) {
	db := testutil.NewDB(t)
	roster := services.NewRosterService(db)
	player := seedPlayer(t, roster, "ivan", 3)

	injected := errors.New("disk on fire")
	err := db.Callback().Delete().Before("gorm:delete").Register("test:fail_player_delete", func(tx *gorm.DB) {
		if tx.Statement.Table == "players" {
			_ = tx.AddError(injected)
		}
	})
	require.NoError(t, err)

	err = roster.DeletePlayer(player.ID)
	require.ErrorIs(t, err, injected)
	var perr *services.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "delete player", perr.Op)

	assert.EqualValues(t, 1, count(t, db, &models.Player{}, "id = ?", player.ID))
	assert.EqualValues(t, 3, count(t, db, &models.Statistic{}, "player_id = ?", player.ID))
}

func TestCreateStatistic(t *testing.T) {
	db := testutil.NewDB(t)
	roster := services.NewRosterService(db)
	player := seedPlayer(t, roster, "ivan", 0)

	stat, err := roster.CreateStatistic(&services.StatisticRequest{PlayerID: player.ID, DateOfGoal: "2024-06-14"})
	require.NoError(t, err)
	assert.NotZero(t, stat.ID)
	assert.Equal(t, player.ID, stat.PlayerID)

	_, err = roster.CreateStatistic(&services.StatisticRequest{PlayerID: 999, DateOfGoal: "2024-06-14"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.EqualValues(t, 1, count(t, db, &models.Statistic{}, ""))
}

func TestUpdateStatistic(t *testing.T) {
	roster := services.NewRosterService(testutil.NewDB(t))
	first := seedPlayer(t, roster, "ivan", 0)
	second := seedPlayer(t, roster, "petr", 0)

	stat, err := roster.CreateStatistic(&services.StatisticRequest{PlayerID: first.ID, DateOfGoal: "2024-06-14"})
	require.NoError(t, err)

	updated, err := roster.UpdateStatistic(stat.ID, &services.StatisticRequest{PlayerID: second.ID, DateOfGoal: "2024-06-19"})
	require.NoError(t, err)
	assert.Equal(t, stat.ID, updated.ID)
	assert.Equal(t, second.ID, updated.PlayerID)
	assert.Equal(t, "2024-06-19", updated.DateOfGoal)

	_, err = roster.UpdateStatistic(12345, &services.StatisticRequest{PlayerID: first.ID, DateOfGoal: "2024-06-19"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = roster.UpdateStatistic(stat.ID, &services.StatisticRequest{PlayerID: 999, DateOfGoal: "2024-06-19"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	stats, err := roster.ListPlayerStatistics(second.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "2024-06-19", stats[0].DateOfGoal)
}

func TestListPlayerStatisticsUnknownPlayer(t *testing.T) {
	roster := services.NewRosterService(testutil.NewDB(t))

	_, err := roster.ListPlayerStatistics(3)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStatisticsForUser(t *testing.T) {
	roster := services.NewRosterService(testutil.NewDB(t))
	seedPlayer(t, roster, "user0", 2)
	seedPlayer(t, roster, "user1", 1)

	stats, err := roster.StatisticsForUser("user0")
	require.NoError(t, err)
	assert.Len(t, stats, 2)

	_, err = roster.StatisticsForUser("ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateFootballClub(t *testing.T) {
	db := testutil.NewDB(t)
	roster := services.NewRosterService(db)

	club, err := roster.CreateFootballClub(&services.CreateFootballClubRequest{Name: "Dynamo"})
	require.NoError(t, err)
	assert.NotZero(t, club.ID)
	assert.Equal(t, "Dynamo", club.Name)
	assert.True(t, db.Migrator().HasTable("football_clubss"))
}

func TestTranslateDBError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", TableName: "statistics"}
	assert.ErrorIs(t, services.TranslateDBError("create statistic", fk), services.ErrNotFound)

	other := &pgconn.PgError{Code: "57014", Message: "canceling statement"}
	err := services.TranslateDBError("list players", other)
	var perr *services.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "list players", perr.Op)
	assert.Contains(t, err.Error(), "canceling statement")
}
