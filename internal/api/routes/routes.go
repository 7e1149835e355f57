package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/visionbridge/visionbridge/internal/api/handlers"
)

type Deps struct {
	Artwork     *handlers.ArtworkHandler
	Dialogue    *handlers.DialogueHandler
	Personalize *handlers.PersonalizeHandler

	// StaticDir, when set, is served under /static/uploads for the
	// local image store.
	StaticDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/upload", d.Artwork.Upload)
	r.POST("/ask", d.Dialogue.Ask)
	r.POST("/personalize", d.Personalize.Personalize)
	r.GET("/history", d.Dialogue.History)

	if d.StaticDir != "" {
		r.Static("/static/uploads", d.StaticDir)
	}
}
