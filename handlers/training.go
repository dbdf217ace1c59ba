package handlers

import (
	"errors"
	"net/http"
	"strconv"

	trainingRepo "veritek/database/repository/training"
	"veritek/models"
	"veritek/services/training"
	"veritek/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrainingHandler exposes the training content endpoints.
type TrainingHandler struct {
	Svc    training.TrainingService
	Logger *zap.Logger
}

func NewTrainingHandler(svc training.TrainingService, logger *zap.Logger) *TrainingHandler {
	return &TrainingHandler{Svc: svc, Logger: logger}
}

// ListModulesHandler handles GET /api/training/modules.
func (h *TrainingHandler) ListModulesHandler(c *gin.Context) {
	summaries, err := h.Svc.ListModules(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListModules: failed to fetch modules", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch modules", err.Error())
		return
	}
	if summaries == nil {
		summaries = []models.ModuleSummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

// GetModuleHandler handles GET /api/training/modules/:id.
func (h *TrainingHandler) GetModuleHandler(c *gin.Context) {
	id := c.Param("id")

	module, err := h.Svc.GetModule(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrModuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "module not found"})
			return
		}
		h.Logger.Error("GetModule: failed to fetch module",
			zap.String("module", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch module", err.Error())
		return
	}
	c.JSON(http.StatusOK, module)
}

// GetChapterHandler handles GET /api/training/modules/:id/chapters/:n.
func (h *TrainingHandler) GetChapterHandler(c *gin.Context) {
	id := c.Param("id")
	number, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chapter number"})
		return
	}

	chapter, err := h.Svc.GetChapter(c.Request.Context(), id, number)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrModuleNotFound) || errors.Is(err, training.ErrChapterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("GetChapter: failed to fetch chapter",
			zap.String("module", id), zap.Int("chapter", number), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch chapter", err.Error())
		return
	}
	c.JSON(http.StatusOK, chapter)
}

// GradeHandler handles POST /api/training/grade.
func (h *TrainingHandler) GradeHandler(c *gin.Context) {
	var req models.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := h.Svc.Grade(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, trainingRepo.ErrModuleNotFound) ||
			errors.Is(err, training.ErrChapterNotFound) ||
			errors.Is(err, training.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Grade: failed to grade answer", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to grade answer", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
