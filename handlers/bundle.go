// File: veritek/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	StartChatSession gin.HandlerFunc
	ChatMessage      gin.HandlerFunc
	ResetChat        gin.HandlerFunc
	ChatHistory      gin.HandlerFunc

	// Training endpoints
	ListModules gin.HandlerFunc
	GetModule   gin.HandlerFunc
	GetChapter  gin.HandlerFunc
	GradeAnswer gin.HandlerFunc

	// Admin endpoints
	ReloadContent gin.HandlerFunc
}
