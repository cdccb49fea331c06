package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"footballclub/config"
	"footballclub/handlers"
	"footballclub/logger"
	"footballclub/middleware"
	"footballclub/models"
	"footballclub/routes"
	"footballclub/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize database
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := models.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Initialize services
	store := services.NewStaticCredentialStore(cfg.Credentials)
	if store.Len() == 0 {
		log.Warn().Msg("AUTH_USERS is empty, every login will be rejected")
	}

	authService, err := services.NewAuthService(store, services.NewTokenService(cfg.JWTSecret), cfg.TokenTTL())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}

	// Setup Gin router
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := newRouter(log, db, authService)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("Shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func newRouter(log zerolog.Logger, db *gorm.DB, authService *services.AuthService) *gin.Engine {
	rosterService := services.NewRosterService(db)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log), middleware.CORS())

	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Player:    handlers.NewPlayerHandler(rosterService),
		Statistic: handlers.NewStatisticHandler(rosterService),
		Club:      handlers.NewClubHandler(rosterService),
		Health:    handlers.NewHealthHandler(db),
	}, authService)

	return router
}
