package handlers

import (
	"net/http"
	"upishield/internal/services"
	"upishield/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

type reportRequest struct {
	Input       string `json:"input"` // handle or deep link
	Reason      string `json:"reason"`
	Details     string `json:"details"`
	EvidenceURL string `json:"evidence_url"`
}

// Create files a fraud report against the resolved handle.
func (h *ReportHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := services.FileReport(req.Input, user.ID, services.ReportInput{
		Reason:      req.Reason,
		Details:     req.Details,
		EvidenceURL: req.EvidenceURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     report.ID,
		"status": report.Status,
	})
}

// List returns open reports for admin review, details rendered as HTML.
func (h *ReportHandler) List(c *gin.Context) {
	limit := utils.StringToInt(c.DefaultQuery("limit", "50"))
	reports, err := services.OpenReports(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

type resolveRequest struct {
	Status string `json:"status"` // resolved or rejected
}

// Resolve moves an open report into a terminal status.
func (h *ReportHandler) Resolve(c *gin.Context) {
	reportID := utils.StringToInt(c.Param("id"))
	if reportID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := services.ResolveReport(uint(reportID), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": reportID, "status": req.Status})
}
