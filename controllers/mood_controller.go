package controllers

import (
	"DateMate/services"
	"DateMate/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	MoodService *services.MoodService
}

func NewMoodController() *MoodController {
	return &MoodController{
		MoodService: services.NewMoodService(),
	}
}

func (s *MoodController) GetAllMoods(c *gin.Context) {
	moods, err := s.MoodService.GetAllMoods(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching moods")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Moods fetched successfully", moods)
}
