package handlers

import (
	"errors"
	"log"
	"net/http"
	"upishield/internal/middleware"
	"upishield/internal/models"
	"upishield/internal/services"

	"github.com/gin-gonic/gin"
)

// currentUser returns the acting user loaded by the middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil, false
	}
	return user.(*models.User), true
}

// respondError maps service errors onto the API's status codes. Duplicate
// votes are a benign condition, not a fault, and come back as 200.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrDuplicateVote):
		c.JSON(http.StatusOK, gin.H{
			"status":  "already_voted",
			"message": "You've already voted on this verification",
		})
	default:
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
