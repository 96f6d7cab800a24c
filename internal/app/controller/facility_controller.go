package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
)

type FacilityController struct {
	facilityService service.FacilityService
}

func NewFacilityController(facilityService service.FacilityService) *FacilityController {
	return &FacilityController{
		facilityService: facilityService,
	}
}

// List GET /api/v1/facilities?category=&region=
func (ctrl *FacilityController) List(c *gin.Context) {
	facilities := ctrl.facilityService.ListFacilities(c.Query("category"), c.Query("region"))

	c.JSON(http.StatusOK, gin.H{
		"facilities": facilities,
		"count":      len(facilities),
	})
}

// Types GET /api/v1/facilities/types
func (ctrl *FacilityController) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types": ctrl.facilityService.FacilityTypes(),
	})
}

// Detail GET /api/v1/facilities/:id
func (ctrl *FacilityController) Detail(c *gin.Context) {
	facility, err := ctrl.facilityService.GetFacility(c.Param("id"))
	if err != nil {
		respondError(c, err, "get facility")
		return
	}
	c.JSON(http.StatusOK, facility)
}
