package controllers

import (
	"errors"

	"orderweb/gateway"
	"orderweb/pkg/resp"
	"orderweb/services"
	"orderweb/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Svc *services.CheckoutService
}

func NewCheckoutController(svc *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: svc}
}

// POST /t/:tenant/checkout
func (h *CheckoutController) PlaceOrder(c *gin.Context) {
	t := utils.CurrentTenant(c)

	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.PlaceOrder(c.Request.Context(), utils.CurrentUserID(c), t, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp.Created(c, out)
}

func (h *CheckoutController) writeError(c *gin.Context, err error) {
	var payErr *services.PaymentError
	switch {
	case errors.As(err, &payErr):
		resp.PaymentRequired(c, payErr.Message)
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrScheduleRequired),
		errors.Is(err, services.ErrAddressRequired),
		errors.Is(err, services.ErrCardRequired):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderTypeDisabled),
		errors.Is(err, services.ErrRestaurantClosed),
		errors.Is(err, services.ErrOutsideZones),
		errors.Is(err, gateway.ErrNoGateway),
		isVoucherErr(err),
		isGiftCardErr(err):
		resp.Unprocessable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func isGiftCardErr(err error) bool {
	for _, target := range []error{
		services.ErrGiftCardNotFound,
		services.ErrGiftCardInactive,
		services.ErrGiftCardExpired,
		services.ErrGiftCardEmpty,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isVoucherErr(err error) bool {
	for _, target := range []error{
		services.ErrVoucherNotFound,
		services.ErrVoucherInactive,
		services.ErrVoucherNotYet,
		services.ErrVoucherExpired,
		services.ErrVoucherMinOrder,
		services.ErrVoucherExhausted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
