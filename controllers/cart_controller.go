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

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /t/:tenant/cart
func (h *CartController) Get(c *gin.Context) {
	t := utils.CurrentTenant(c)
	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c), t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /t/:tenant/cart/items
func (h *CartController) Add(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), t.ID, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"added": true})
}

type updateQtyReq struct {
	Qty int `json:"qty" binding:"required"`
}

// PATCH /t/:tenant/cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), uint(id), req.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /t/:tenant/cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /t/:tenant/cart
func (h *CartController) Clear(c *gin.Context) {
	t := utils.CurrentTenant(c)
	if err := h.Svc.Clear(utils.CurrentUserID(c), t.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
