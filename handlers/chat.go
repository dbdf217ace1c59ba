package handlers

import (
	"net/http"

	"veritek/models"
	"veritek/services/chat"
	"veritek/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the chat assistant endpoints.
type ChatHandler struct {
	Svc    chat.ChatService
	Logger *zap.Logger
}

func NewChatHandler(svc chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

// StartSessionHandler handles POST /api/chat/session.
func (h *ChatHandler) StartSessionHandler(c *gin.Context) {
	resp, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("StartSession: failed to open chat session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to open chat session", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MessageHandler handles POST /api/chat/message.
func (h *ChatHandler) MessageHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Message: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	resp, err := h.Svc.HandleMessage(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("Message: failed to handle chat turn", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to handle message", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResetHandler handles POST /api/chat/reset.
func (h *ChatHandler) ResetHandler(c *gin.Context) {
	var body struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.Svc.ResetSession(c.Request.Context(), body.SessionID); err != nil {
		h.Logger.Error("Reset: failed to reset session",
			zap.String("sessionId", body.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// HistoryHandler handles GET /api/chat/history/:sessionID.
func (h *ChatHandler) HistoryHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
		return
	}

	msgs, err := h.Svc.History(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("History: failed to fetch messages",
			zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch history", err.Error())
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "messages": msgs})
}
