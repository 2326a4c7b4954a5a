package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type cancelReq struct {
	Reason string `json:"reason" binding:"required"`
}

// GET /orders/history?status=&page=&limit=
func (h *OrderController) History(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := utils.Pagination(c)
	list, total, err := h.Svc.ListForUser(c.Request.Context(), uid, services.OrderListIn{
		Status: c.Query("status"), Page: page, Limit: limit,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, paged(list, total, page, limit))
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.Svc.DetailForUser(c.Request.Context(), uid, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /orders/:id/track
func (h *OrderController) Track(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := h.Svc.Track(c.Request.Context(), uid, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, t)
}

// POST /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req cancelReq
	if !bindJSON(c, &req) {
		return
	}
	o, err := h.Svc.CancelByUser(c.Request.Context(), uid, id, req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, o)
}
