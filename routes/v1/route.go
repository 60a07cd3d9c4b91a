package route

import (
	"DateMate/controllers"
	"DateMate/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	recommendationController := controllers.NewRecommendationController()
	venueController := controllers.NewVenueController()
	moodController := controllers.NewMoodController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterRecommendationRoutes(v1Routes, recommendationController)
		handlers.RegisterVenueRoutes(v1Routes, venueController)
		handlers.RegisterMoodRoutes(v1Routes, moodController)
	}
}
