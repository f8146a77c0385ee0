package handler

import (
	"net/http"

	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats godoc
// @Summary  Inventory and revenue counters, recomputed per request
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} dto.DashboardStatsResponse
// @Router   /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
