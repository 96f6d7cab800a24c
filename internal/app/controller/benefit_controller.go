package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/middleware"
)

type BenefitController struct {
	benefitService service.BenefitService
}

func NewBenefitController(benefitService service.BenefitService) *BenefitController {
	return &BenefitController{
		benefitService: benefitService,
	}
}

// List returns the catalogue filtered by category ("전체" or empty for all)
// GET /api/v1/benefits?category=
func (ctrl *BenefitController) List(c *gin.Context) {
	benefits := ctrl.benefitService.ListBenefits(c.Query("category"))

	c.JSON(http.StatusOK, gin.H{
		"benefits": benefits,
		"count":    len(benefits),
	})
}

// Categories GET /api/v1/benefits/categories
func (ctrl *BenefitController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": ctrl.benefitService.Categories(),
	})
}

// Detail GET /api/v1/benefits/:id
func (ctrl *BenefitController) Detail(c *gin.Context) {
	detail, err := ctrl.benefitService.GetBenefitDetail(c.Param("id"))
	if err != nil {
		respondError(c, err, "get benefit detail")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Apply POST /api/v1/benefits/:id/apply
func (ctrl *BenefitController) Apply(c *gin.Context) {
	applied, err := ctrl.benefitService.ApplyBenefit(c.Param("id"))
	if err != nil {
		respondError(c, err, "apply benefit")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Benefit applied", map[string]interface{}{
		"benefit_id": applied.ID,
		"category":   applied.Category,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "신청이 완료되었습니다",
		"benefit": applied,
	})
}
