package controllers

import (
	"strconv"

	"orderweb/pkg/resp"
	"orderweb/services"

	"github.com/gin-gonic/gin"
)

type TenantController struct {
	Svc *services.TenantService
}

func NewTenantController(svc *services.TenantService) *TenantController {
	return &TenantController{Svc: svc}
}

// POST /admin/tenants
func (h *TenantController) Create(c *gin.Context) {
	var req services.CreateTenantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, t)
}

// GET /admin/tenants
func (h *TenantController) List(c *gin.Context) {
	tenants, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tenants)
}

// PATCH /admin/tenants/:id
func (h *TenantController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid tenant id")
		return
	}
	var req services.UpdateTenantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(uint(id), &req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
