package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Svc *services.CheckoutService
}

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

type quoteReq struct {
	PromoCode      string `json:"promoCode"`
	RedemptionCode string `json:"redemptionCode"`
}

// POST /checkout/quote
func (h *CheckoutController) Quote(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req quoteReq
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	q, err := h.Svc.Quote(c.Request.Context(), uid, req.PromoCode, req.RedemptionCode)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, q)
}

// POST /checkout
func (h *CheckoutController) PlaceOrder(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req services.CheckoutIn
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	o, err := h.Svc.PlaceOrder(c.Request.Context(), uid, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, o)
}
