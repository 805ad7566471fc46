package controllers

import (
	"errors"
	"strconv"

	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
)

type GiftCardController struct {
	Svc *services.GiftCardService
}

func NewGiftCardController(svc *services.GiftCardService) *GiftCardController {
	return &GiftCardController{Svc: svc}
}

func giftCardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGiftCardNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrGiftCardInactive),
		errors.Is(err, services.ErrGiftCardExpired),
		errors.Is(err, services.ErrGiftCardEmpty):
		resp.Unprocessable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

type giftCardCheckReq struct {
	Code string `json:"code" binding:"required"`
}

// POST /t/:tenant/giftcards/check
func (h *GiftCardController) Check(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req giftCardCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	g, err := h.Svc.Check(t.ID, req.Code)
	if err != nil {
		giftCardError(c, err)
		return
	}
	resp.OK(c, gin.H{"code": g.Code, "balance": g.Balance, "expiresAt": g.ExpiresAt})
}

// POST /partner/giftcards
func (h *GiftCardController) Issue(c *gin.Context) {
	t := utils.CurrentTenant(c)
	var req services.IssueGiftCardIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	g, err := h.Svc.Issue(t.ID, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, g)
}

// GET /partner/giftcards
func (h *GiftCardController) List(c *gin.Context) {
	t := utils.CurrentTenant(c)
	cards, err := h.Svc.List(t.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cards)
}

// DELETE /partner/giftcards/:id
func (h *GiftCardController) Deactivate(c *gin.Context) {
	t := utils.CurrentTenant(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid gift card id")
		return
	}
	if err := h.Svc.Deactivate(t.ID, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deactivated": true})
}
