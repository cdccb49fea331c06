package routes

import (
	"footballclub/handlers"
	"footballclub/middleware"
	"footballclub/models"
	"footballclub/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Statistic *handlers.StatisticHandler
	Club      *handlers.ClubHandler
	Health    *handlers.HealthHandler
}

func SetupRoutes(router *gin.Engine, h Handlers, authService *services.AuthService) {
	handlers.RegisterBindingTags()

	// Public routes
	router.GET("/", h.Player.ListPlayers)
	router.GET("/health", h.Health.Health)
	router.POST("/token", h.Auth.Token)

	players := router.Group("/players")
	{
		players.POST("/", h.Player.CreatePlayer)
		players.GET("/:id", h.Player.GetPlayer)
		players.GET("/:id/statistics", h.Player.ListPlayerStatistics)
	}

	// Any authenticated caller
	authenticated := router.Group("/")
	authenticated.Use(middleware.RequireRole(authService))
	{
		authenticated.GET("/users/me", h.Auth.Me)
		authenticated.GET("/my_stats", h.Statistic.MyStats)
	}

	// Admin only
	admin := router.Group("/")
	admin.Use(middleware.RequireRole(authService, models.RoleAdmin))
	{
		admin.DELETE("/players/:id", h.Player.DeletePlayer)
		admin.POST("/statistics", h.Statistic.CreateStatistic)
		admin.PUT("/statistics/:id", h.Statistic.UpdateStatistic)
		admin.POST("/football_clubss", h.Club.CreateFootballClub)
	}
}
