package controllers

import (
	"time"

	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// GET /partner/analytics?from=2026-08-01&to=2026-08-31
func (h *AnalyticsController) Dashboard(c *gin.Context) {
	t := utils.CurrentTenant(c)

	var from, to time.Time
	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			resp.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			resp.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		// inclusive end date
		to = parsed.AddDate(0, 0, 1)
	}

	out, err := h.Svc.Dashboard(t.ID, from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
