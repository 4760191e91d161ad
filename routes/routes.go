package routes

import (
	"github.com/JonFRutan/Orbital/controllers"
	"github.com/JonFRutan/Orbital/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// CORS middleware ДО роутов: фронтенд может жить на любом origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}))

	systemController := controllers.NewSystemController()

	api := r.Group("/api")
	{
		api.GET("/systems", systemController.List)
		api.POST("/publish", systemController.Publish)
		api.POST("/click/:id", systemController.Click)
	}

	return r
}
