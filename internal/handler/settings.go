package handler

import (
	"errors"
	"net/http"

	"coachpilot/internal/middleware"
	"coachpilot/internal/model"
	"coachpilot/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GET /api/config
func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.settings.Get(c.Request.Context(), middleware.MemberID(c))
	if errors.Is(err, service.ErrConfigMissing) {
		c.JSON(http.StatusNotFound, gin.H{"error": "configuration not set"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PUT /api/config
func (h *SettingsHandler) Update(c *gin.Context) {
	var req model.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	cfg, err := h.settings.Update(c.Request.Context(), middleware.MemberID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
