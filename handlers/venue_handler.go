package handlers

import (
	"DateMate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterVenueRoutes(router *gin.RouterGroup, venueController *controllers.VenueController) {
	venueGroup := router.Group("/venues")
	{
		venueGroup.GET("/", venueController.GetAllVenues)

		venueGroup.GET("/:id", venueController.GetVenueByID)

		venueGroup.POST("/", venueController.SaveVenue)

		venueGroup.POST("/batch", venueController.SaveVenues)
	}
}
