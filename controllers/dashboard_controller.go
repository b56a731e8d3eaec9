package controllers

import (
	"net/http"
	"time"

	"DocTrackerGo/middleware"
	"DocTrackerGo/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *services.DashboardService
	export    *services.ExportService
	now       func() time.Time
}

func NewDashboardController(dashboard *services.DashboardService, export *services.ExportService) *DashboardController {
	return &DashboardController{dashboard: dashboard, export: export, now: time.Now}
}

func (dc *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := dc.dashboard.Build(c.Request.Context(), middleware.CurrentUser(c), dc.now())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, dashboard)
}

// Export streams entries as CSV: every user's for admins, the caller's otherwise.
func (dc *DashboardController) Export(c *gin.Context) {
	rows, err := dc.export.Rows(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=DailyTrackerData.csv")
	c.Status(http.StatusOK)
	if err := services.WriteCSV(c.Writer, rows); err != nil {
		respondError(c, err)
	}
}
