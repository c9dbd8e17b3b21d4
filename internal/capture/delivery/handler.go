package delivery

import (
	"net/http"
	"time"

	"smartlists-backend/internal/capture/usecase"

	"github.com/gin-gonic/gin"
)

// CaptureHandler handles free-text input routing requests
type CaptureHandler struct {
	captureUsecase usecase.CaptureUsecase
}

// NewCaptureHandler creates a new CaptureHandler
func NewCaptureHandler(captureUsecase usecase.CaptureUsecase) *CaptureHandler {
	return &CaptureHandler{
		captureUsecase: captureUsecase,
	}
}

// ProcessInputRequest represents the request body for routing input
type ProcessInputRequest struct {
	Input string `json:"input" binding:"required"`
}

// ProcessInput routes one free-text input into the user's lists
// POST /api/input
func (h *CaptureHandler) ProcessInput(c *gin.Context) {
	userID := c.GetString("userID")

	var req ProcessInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is required"})
		return
	}

	// "now" is fixed here so every timestamp in the batch resolves
	// against the same instant.
	result, err := h.captureUsecase.Route(c.Request.Context(), userID, req.Input, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process input"})
		return
	}

	if result.Message != "" {
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   result.Created,
	})
}
