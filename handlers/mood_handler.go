package handlers

import (
	"DateMate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMoodRoutes(router *gin.RouterGroup, moodController *controllers.MoodController) {
	moodGroup := router.Group("/moods")
	{
		moodGroup.GET("/", moodController.GetAllMoods)
	}
}
