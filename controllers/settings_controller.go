package controllers

import (
	"time"

	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Svc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Svc: svc}
}

// GET /t/:tenant/branding
func (h *SettingsController) PublicBranding(c *gin.Context) {
	t := utils.CurrentTenant(c)
	b, err := h.Svc.GetBranding(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

// GET /t/:tenant/status
func (h *SettingsController) PublicStatus(c *gin.Context) {
	t := utils.CurrentTenant(c)
	hours, err := h.Svc.GetHours(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	st := services.HoursStatus(hours, time.Now())
	resp.OK(c, gin.H{
		"isOpen":  st.IsOpen,
		"message": st.Message,
		"hours":   hours,
	})
}

// GET /partner/settings/email
func (h *SettingsController) GetEmail(c *gin.Context) {
	t := utils.CurrentTenant(c)
	s, err := h.Svc.GetEmail(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

// PUT /partner/settings/email
func (h *SettingsController) UpdateEmail(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.EmailSettingIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, err := h.Svc.UpdateEmail(t.ID, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

// PUT /partner/settings/branding
func (h *SettingsController) UpdateBranding(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.BrandingIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, err := h.Svc.UpdateBranding(t.ID, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

// GET /partner/settings/gateways
func (h *SettingsController) GetGateway(c *gin.Context) {
	t := utils.CurrentTenant(c)
	s, err := h.Svc.GetGateway(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	// keys are tagged json:"-" so the secrets never leave the server
	resp.OK(c, s)
}

// PUT /partner/settings/gateways
func (h *SettingsController) UpdateGateway(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.GatewaySettingIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	s, err := h.Svc.UpdateGateway(t.ID, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, s)
}

// GET /partner/settings/hours
func (h *SettingsController) GetHours(c *gin.Context) {
	t := utils.CurrentTenant(c)
	hours, err := h.Svc.GetHours(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, hours)
}

// PUT /partner/settings/hours
func (h *SettingsController) ReplaceHours(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req []services.OpeningHourIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ReplaceHours(t.ID, req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"replaced": len(req)})
}
