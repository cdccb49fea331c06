package handlers

import (
	"net/http"

	"footballclub/middleware"
	"footballclub/services"

	"github.com/gin-gonic/gin"
)

type StatisticHandler struct {
	rosterService *services.RosterService
}

func NewStatisticHandler(rosterService *services.RosterService) *StatisticHandler {
	return &StatisticHandler{
		rosterService: rosterService,
	}
}

func (h *StatisticHandler) CreateStatistic(c *gin.Context) {
	var req services.StatisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	stat, err := h.rosterService.CreateStatistic(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"detail": "Statistic created successfully", "statistic": stat})
}

func (h *StatisticHandler) UpdateStatistic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.StatisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	stat, err := h.rosterService.UpdateStatistic(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Statistic updated successfully", "statistic": stat})
}

func (h *StatisticHandler) MyStats(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, services.ErrUnauthenticated)
		return
	}

	stats, err := h.rosterService.StatisticsForUser(identity.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
