package routes

import (
	"net/http"
	"time"

	"veritek/handlers"
	"veritek/middleware"
	"veritek/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the chat assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", hb.StartChatSession)
		api.POST("/message", hb.ChatMessage)
		api.POST("/reset", hb.ResetChat)
		api.GET("/history/:sessionID", hb.ChatHistory)
	}
}

// RegisterTrainingRoutes registers the training content endpoints.
func RegisterTrainingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/training")
	{
		api.GET("/modules", hb.ListModules)
		api.GET("/modules/:id", hb.GetModule)
		api.GET("/modules/:id/chapters/:n", hb.GetChapter)
		api.POST("/grade", hb.GradeAnswer)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/content/reload", hb.ReloadContent)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterTrainingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
