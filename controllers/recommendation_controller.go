package controllers

import (
	"DateMate/models"
	"DateMate/services"
	"DateMate/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

func NewRecommendationController() *RecommendationController {
	return &RecommendationController{
		RecommendationService: services.NewRecommendationService(),
	}
}

// GetRecommendations answers every valid request with 200; the service
// degrades internally instead of erroring.
func (s *RecommendationController) GetRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid recommendation request: "+err.Error())
		return
	}

	response := s.RecommendationService.GetRecommendations(c.Request.Context(), req)

	utils.SuccessResponse(c, http.StatusOK, "Recommendations generated successfully", response)
}
