package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
)

// RecommendationController 복지 처방전 컨트롤러
type RecommendationController struct {
	recommendationService service.RecommendationService
}

func NewRecommendationController(recommendationService service.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// Get GET /api/v1/recommendations
func (ctrl *RecommendationController) Get(c *gin.Context) {
	resp, err := ctrl.recommendationService.GetRecommendations()
	if err != nil {
		respondError(c, err, "get recommendations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Apply applies the selected recommendations, or all of them
// POST /api/v1/recommendations/apply
func (ctrl *RecommendationController) Apply(c *gin.Context) {
	var req service.ApplyRecommendationsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := ctrl.recommendationService.ApplyRecommendations(req)
	if err != nil {
		respondError(c, err, "apply recommendations")
		return
	}
	c.JSON(http.StatusOK, result)
}
