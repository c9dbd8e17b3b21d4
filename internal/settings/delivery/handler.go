package delivery

import (
	"encoding/json"
	"net/http"

	"smartlists-backend/internal/settings/domain"
	"smartlists-backend/internal/settings/repository"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles per-user settings requests
type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsRepo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{
		settingsRepo: settingsRepo,
	}
}

// GetSettings returns the user's settings document, {} when none exists
// GET /api/settings/user
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("userID")

	settings, err := h.settingsRepo.Find(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	if settings == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(settings.Settings))
}

// UpdateSettings replaces the user's settings document
// PUT /api/settings/user
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := c.GetString("userID")

	var doc map[string]interface{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Settings must be a JSON object"})
		return
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Settings must be a JSON object"})
		return
	}

	settings := &domain.UserSettings{
		UserID:   userID,
		Settings: string(raw),
	}
	if err := h.settingsRepo.Save(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
