package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the wizard endpoints and, when staticDir is set, the
// marketing site. The AI endpoints are POST-only; other methods get a 405.
func RegisterRoutes(router *gin.Engine, h *APIHandler, staticDir string) {
	router.HandleMethodNotAllowed = true

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	router.GET("/health", h.Health)

	ai := router.Group("/api/ai")
	{
		ai.POST("/generate", h.Generate)
		ai.POST("/questions", h.Questions)
		ai.POST("/enhance", h.Enhance)
		ai.POST("/variations", h.Variations)
		ai.POST("/testdrive", h.TestDrive)
	}

	if staticDir != "" {
		router.Static("/site", staticDir)
		router.StaticFile("/", staticDir+"/index.html")
	}
}
