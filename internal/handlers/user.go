package handlers

import (
	"net/http"
	"upishield/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Reputation returns the acting user's derived standing: points, badge,
// progress toward the next badge, and the raw counters behind them.
func (h *UserHandler) Reputation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	summary, err := services.GetReputation(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	rank, err := services.UserRank(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"display_name": user.DisplayName,
		"reputation":   summary,
		"rank":         rank, // 0 means unranked
	})
}
