package controllers

import (
	"DateMate/models"
	"DateMate/services"
	"DateMate/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VenueController struct {
	VenueService *services.VenueService
}

func NewVenueController() *VenueController {
	return &VenueController{
		VenueService: services.NewVenueService(),
	}
}

func (s *VenueController) GetAllVenues(c *gin.Context) {
	//the latitude and longtitude is from query
	latitudeStr := c.Query("latitude")
	longitudeStr := c.Query("longitude")

	latitude, err := strconv.ParseFloat(latitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
		return
	}

	longitude, err := strconv.ParseFloat(longitudeStr, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	venues, err := s.VenueService.GetAllVenuesByLocation(c, latitude, longitude)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching venues")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Venues fetched successfully", venues)
}

func (s *VenueController) GetVenueByID(c *gin.Context) {
	venueID := c.Param("id")

	venue, err := s.VenueService.GetVenueByID(c, venueID)
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching venue")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Venue fetched successfully", venue)
}

func (s *VenueController) SaveVenue(c *gin.Context) {
	var venue models.Venue
	if err := c.ShouldBindJSON(&venue); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid venue payload: "+err.Error())
		return
	}

	venueID, err := s.VenueService.SaveVenue(c, &venue)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error saving venue")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Venue saved successfully", gin.H{"id": venueID})
}

func (s *VenueController) SaveVenues(c *gin.Context) {
	var venues []*models.Venue
	if err := c.ShouldBindJSON(&venues); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid venues payload: "+err.Error())
		return
	}

	if err := s.VenueService.SaveVenues(c, venues); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error saving venues")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Venues saved successfully", gin.H{"count": len(venues)})
}
