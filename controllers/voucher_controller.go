package controllers

import (
	"strconv"

	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
)

type VoucherController struct {
	Svc *services.VoucherService
}

func NewVoucherController(svc *services.VoucherService) *VoucherController {
	return &VoucherController{Svc: svc}
}

type voucherCheckReq struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

// POST /t/:tenant/vouchers/check
//
// A quote only: no usage is recorded until the order is placed, so checking
// the same code repeatedly always returns the same answer.
func (h *VoucherController) Check(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req voucherCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, discount, err := h.Svc.Validate(t.ID, req.Code, req.Subtotal)
	if err != nil {
		resp.Unprocessable(c, err.Error())
		return
	}
	resp.OK(c, gin.H{
		"code":         v.Code,
		"discountType": v.DiscountType,
		"discount":     discount,
	})
}

// GET /partner/vouchers
func (h *VoucherController) List(c *gin.Context) {
	t := utils.CurrentTenant(c)
	vouchers, err := h.Svc.List(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, vouchers)
}

// POST /partner/vouchers
func (h *VoucherController) Create(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.VoucherIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := h.Svc.Create(t.ID, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, v)
}

type voucherActiveReq struct {
	Active *bool `json:"active" binding:"required"`
}

// PATCH /partner/vouchers/:id
func (h *VoucherController) SetActive(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid voucher id")
		return
	}
	var req voucherActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetActive(t.ID, uint(id), *req.Active); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"active": *req.Active})
}

// DELETE /partner/vouchers/:id
func (h *VoucherController) Delete(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid voucher id")
		return
	}
	if err := h.Svc.Delete(t.ID, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
