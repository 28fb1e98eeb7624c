package handlers

import (
	"net/http"
	"upishield/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	UpiID string `json:"upi_id"`
	Vote  string `json:"vote"` // safe or unsafe
}

// Cast records the acting user's opinion on the handle's latest verification.
func (h *VoteHandler) Cast(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	vote, err := services.CastVote(req.UpiID, user.ID, req.Vote)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "recorded",
		"vote":   vote.Vote,
	})
}
