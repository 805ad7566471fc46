package controllers

import (
	"strconv"

	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /t/:tenant/menu
func (h *MenuController) List(c *gin.Context) {
	t := utils.CurrentTenant(c)
	cats, err := h.Svc.ListMenu(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /partner/menu/categories
func (h *MenuController) CreateCategory(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(t.ID, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// POST /partner/menu/items
func (h *MenuController) CreateItem(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateItem(t.ID, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /partner/menu/items/:id
func (h *MenuController) UpdateItem(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req services.ItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateItem(t.ID, uint(id), &req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /partner/menu/items/:id
func (h *MenuController) DeleteItem(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.DeleteItem(t.ID, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /partner/menu/addons
func (h *MenuController) CreateAddon(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.AddonIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	addon, err := h.Svc.CreateAddon(t.ID, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, addon)
}
