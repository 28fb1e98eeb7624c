package handlers

import (
	"errors"
	"net/http"
	"upishield/internal/db"
	"upishield/internal/models"
	"upishield/internal/services"
	"upishield/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VerifyHandler struct{}

func NewVerifyHandler() *VerifyHandler {
	return &VerifyHandler{}
}

type verifyRequest struct {
	Input string `json:"input"` // bare handle, deep link, or QR payload
}

// Verify scores a UPI ID for the acting user and records the event.
func (h *VerifyHandler) Verify(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := services.VerifyUpi(req.Input, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"result": result}
	if result.Level == services.RiskLow {
		// Quick-pay links only when the handle looks safe
		response["pay_links"] = gin.H{
			"gpay":    services.PaymentDeepLink(result.UpiID, "gpay"),
			"phonepe": services.PaymentDeepLink(result.UpiID, "phonepe"),
			"paytm":   services.PaymentDeepLink(result.UpiID, "paytm"),
		}
	}
	c.JSON(http.StatusOK, response)
}

// Resolve maps raw input to its canonical identity without scoring it,
// creating the identity on first sight.
func (h *VerifyHandler) Resolve(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	identity, err := services.ResolveIdentity(req.Input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"identity": identity})
}

// Identity returns the canonical record and recent scoring history for a handle.
func (h *VerifyHandler) Identity(c *gin.Context) {
	handle := c.Param("handle")
	if err := services.ValidateUpiID(handle); err != nil {
		respondError(c, err)
		return
	}

	var identity models.UpiIdentity
	if err := db.DB.Where("upi_id = ?", handle).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, services.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}

	limit := utils.StringToInt(c.DefaultQuery("limit", "20"))
	verifications, err := services.RecentVerifications(identity.ID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"identity":      identity,
		"verifications": verifications,
	})
}
