package http

import (
	"github.com/gin-gonic/gin"

	"github.com/abecedary/abecedary/internal/database"
)

// RouterConfig carries every dependency the router needs, improving
// testability and keeping NewRouter's signature stable.
type RouterConfig struct {
	Database      *database.Database
	CatalogStore  CatalogStore
	PracticeStore PracticeStore
	Sampler       LetterSampler
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	catalogController := NewCatalogController(cfg.CatalogStore, cfg.Sampler)
	practiceController := NewPracticeController(cfg.PracticeStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog endpoints
	router.GET("/api/alphabets", catalogController.ListAlphabets)
	router.GET("/api/alphabets/types/:type", catalogController.GetAlphabetByType)
	router.GET("/api/alphabets/:id/letters", catalogController.ListLetters)
	router.GET("/api/alphabets/:id/letters/random", catalogController.SampleLetters)
	router.GET("/api/letters/:id", catalogController.GetLetter)

	// Practice session endpoints
	router.POST("/api/practice/sessions", practiceController.CreateSession)
	router.PATCH("/api/practice/sessions/:id", practiceController.UpdateSession)

	return router
}
