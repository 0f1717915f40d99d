package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"github.com/mkralj/heating-cms/internal/repository"
)

// SettingsHandler handles per-user notification settings
type SettingsHandler struct {
	settingsRepo *repository.SettingsRepository
}

func NewSettingsHandler(settingsRepo *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// Get godoc
// @Summary Get the caller's notification settings
// @Description Creates a default row on first read
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.NotificationSettings
// @Router /settings/notifications [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	settings, err := h.settingsRepo.GetOrCreate(userID)
	if err != nil {
		log.Printf("Failed to fetch notification settings for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch notification settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update godoc
// @Summary Replace the caller's notification settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.UpdateNotificationSettingsRequest true "Settings"
// @Success 200 {object} model.NotificationSettings
// @Failure 400 {object} model.ErrorResponse
// @Router /settings/notifications [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid notification settings"})
		return
	}

	settings, err := h.settingsRepo.Upsert(userID, req)
	if err != nil {
		log.Printf("Failed to update notification settings for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update notification settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
