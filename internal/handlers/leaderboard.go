package handlers

import (
	"net/http"
	"upishield/internal/services"
	"upishield/internal/utils"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct{}

func NewLeaderboardHandler() *LeaderboardHandler {
	return &LeaderboardHandler{}
}

// List returns the top contributors ordered by points.
func (h *LeaderboardHandler) List(c *gin.Context) {
	limit := utils.StringToInt(c.DefaultQuery("limit", "50"))
	entries, err := services.Leaderboard(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
