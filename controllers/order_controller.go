package controllers

import (
	"errors"
	"strconv"

	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /t/:tenant/orders
func (h *OrderController) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /t/:tenant/orders/:id
func (h *OrderController) DetailMine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// GET /partner/orders
func (h *OrderController) ListForTenant(c *gin.Context) {
	t := utils.CurrentTenant(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	out, err := h.Svc.ListForTenant(utils.CurrentUserID(c), utils.CurrentRole(c), t.ID, status, page, limit)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your restaurant")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /partner/orders/:id
func (h *OrderController) DetailForTenant(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.Svc.DetailForTenant(utils.CurrentUserID(c), utils.CurrentRole(c), t.ID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "not your restaurant")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, detail)
}

type setStatusReq struct {
	Status string `json:"status" binding:"required,oneof=accepted ready completed cancelled"`
}

// PATCH /partner/orders/:id/status
func (h *OrderController) SetStatus(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err = h.Svc.SetStatus(utils.CurrentUserID(c), utils.CurrentRole(c), t.ID, uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "not your restaurant")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Unprocessable(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
