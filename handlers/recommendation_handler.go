package handlers

import (
	"DateMate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendationRoutes(router *gin.RouterGroup, recommendationController *controllers.RecommendationController) {
	recommendationGroup := router.Group("/recommendations")
	{
		recommendationGroup.POST("/", recommendationController.GetRecommendations)
	}
}
