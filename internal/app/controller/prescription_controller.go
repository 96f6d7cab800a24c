package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/middleware"
)

type PrescriptionController struct {
	prescriptionService service.PrescriptionService
}

func NewPrescriptionController(prescriptionService service.PrescriptionService) *PrescriptionController {
	return &PrescriptionController{
		prescriptionService: prescriptionService,
	}
}

// List GET /api/v1/prescriptions
func (ctrl *PrescriptionController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"prescriptions": ctrl.prescriptionService.ListPrescriptions(),
	})
}

// Add registers a hospital visit with its prescription photo
// POST /api/v1/prescriptions
func (ctrl *PrescriptionController) Add(c *gin.Context) {
	var req model.NewPrescription
	if !bindJSON(c, &req) {
		return
	}

	record, err := ctrl.prescriptionService.AddPrescription(req)
	if err != nil {
		respondError(c, err, "add prescription")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Prescription added", map[string]interface{}{
		"prescription_id": record.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":      "처방전이 등록되었습니다",
		"prescription": record,
	})
}
