package controllers

import (
	"errors"
	"strconv"

	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Svc *services.DeliveryService
}

func NewDeliveryController(svc *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Svc: svc}
}

type deliveryQuoteReq struct {
	Postcode string `json:"postcode" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

// POST /t/:tenant/delivery/quote
//
// Quoting an unserved postcode is not an error at this stage; the customer
// can still switch to collection. Placing a delivery order is where it
// becomes a hard failure.
func (h *DeliveryController) Quote(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req deliveryQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	fee, err := h.Svc.Resolve(t.ID, req.Postcode, req.Subtotal)
	if err != nil {
		if errors.Is(err, services.ErrOutsideZones) {
			resp.OK(c, gin.H{"deliverable": false, "fee": 0, "message": err.Error()})
			return
		}
		resp.Unprocessable(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"deliverable": true, "fee": fee})
}

// GET /partner/zones
func (h *DeliveryController) ListZones(c *gin.Context) {
	t := utils.CurrentTenant(c)
	zones, err := h.Svc.ListZones(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, zones)
}

// POST /partner/zones
func (h *DeliveryController) CreateZone(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.ZoneIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	z, err := h.Svc.CreateZone(t.ID, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, z)
}

// PUT /partner/zones/:id
func (h *DeliveryController) UpdateZone(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid zone id")
		return
	}
	var req services.ZoneIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateZone(t.ID, uint(id), &req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /partner/zones/:id
func (h *DeliveryController) DeleteZone(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid zone id")
		return
	}
	if err := h.Svc.DeleteZone(t.ID, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
