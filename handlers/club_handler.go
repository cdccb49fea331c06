package handlers

import (
	"net/http"

	"footballclub/services"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	rosterService *services.RosterService
}

func NewClubHandler(rosterService *services.RosterService) *ClubHandler {
	return &ClubHandler{
		rosterService: rosterService,
	}
}

func (h *ClubHandler) CreateFootballClub(c *gin.Context) {
	var req services.CreateFootballClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	club, err := h.rosterService.CreateFootballClub(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detail": "Football club created successfully", "football_club": club})
}
