package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HistoryController struct {
	historyService service.HistoryService
}

func NewHistoryController(historyService service.HistoryService) *HistoryController {
	return &HistoryController{
		historyService: historyService,
	}
}

// GetHistory GET /api/v1/history
func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.historyService.GetHistory())
}

// GetExpenditure GET /api/v1/expenditure
func (ctrl *HistoryController) GetExpenditure(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.historyService.GetExpenditure())
}

// Export downloads the history as an xlsx workbook
// GET /api/v1/history/export
func (ctrl *HistoryController) Export(c *gin.Context) {
	data, err := ctrl.historyService.ExportHistory()
	if err != nil {
		respondError(c, err, "export history")
		return
	}

	filename := fmt.Sprintf("bohoja_history_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
