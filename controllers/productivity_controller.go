package controllers

import (
	"time"

	"DocTrackerGo/middleware"
	"DocTrackerGo/services"

	"github.com/gin-gonic/gin"
)

type ProductivityController struct {
	productivity *services.ProductivityService
	now          func() time.Time
}

func NewProductivityController(productivity *services.ProductivityService) *ProductivityController {
	return &ProductivityController{productivity: productivity, now: time.Now}
}

// GetStats reports on ?range=24h|1w|1m, defaults to 1w.
func (pc *ProductivityController) GetStats(c *gin.Context) {
	stats, err := pc.productivity.Stats(c.Request.Context(), c.GetString(middleware.ContextUserID), rangeParam(c), pc.now())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, stats)
}

func (pc *ProductivityController) GetComparison(c *gin.Context) {
	comparison, err := pc.productivity.Comparison(c.Request.Context(), c.GetString(middleware.ContextUserID), pc.now())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, comparison)
}

func (pc *ProductivityController) GetTopMetrics(c *gin.Context) {
	top, err := pc.productivity.TopMetrics(c.Request.Context(), c.GetString(middleware.ContextUserID), rangeParam(c), pc.now())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, top)
}

func rangeParam(c *gin.Context) string {
	if r, ok := c.GetQuery("range"); ok {
		return r
	}
	return services.DefaultRange
}
