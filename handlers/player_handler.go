package handlers

import (
	"net/http"

	"footballclub/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	rosterService *services.RosterService
}

func NewPlayerHandler(rosterService *services.RosterService) *PlayerHandler {
	return &PlayerHandler{
		rosterService: rosterService,
	}
}

func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	players, err := h.rosterService.ListPlayers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	player, err := h.rosterService.GetPlayer(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req services.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	player, err := h.rosterService.CreatePlayer(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detail": "Player created successfully", "player": player})
}

func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.rosterService.DeletePlayer(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Player deleted successfully"})
}

func (h *PlayerHandler) ListPlayerStatistics(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stats, err := h.rosterService.ListPlayerStatistics(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
