package handlers

import (
	"net/http"

	"veritek/services/training"
	"veritek/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes operational endpoints guarded by the admin token.
type AdminHandler struct {
	Training training.TrainingService
	Logger   *zap.Logger
}

func NewAdminHandler(trainingSvc training.TrainingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Training: trainingSvc, Logger: logger}
}

// ReloadContentHandler handles POST /api/admin/content/reload. It busts the
// training content cache so re-seeded documents are served immediately.
func (h *AdminHandler) ReloadContentHandler(c *gin.Context) {
	if err := h.Training.InvalidateCache(c.Request.Context()); err != nil {
		h.Logger.Error("ReloadContent: failed to invalidate cache", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to invalidate content cache", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "content cache invalidated"})
}
