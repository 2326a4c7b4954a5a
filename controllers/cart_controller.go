package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	cart, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cart)
}

// GET /cart/count
func (h *CartController) Count(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.Svc.Count(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"count": n})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req services.AddToCartIn
	if !bindJSON(c, &req) {
		return
	}
	line, err := h.Svc.Add(c.Request.Context(), uid, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, line)
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := h.Svc.UpdateQty(c.Request.Context(), uid, itemID, *body.Qty); err != nil {
		respondErr(c, err)
		return
	}
	h.Get(c)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(c.Request.Context(), uid, itemID); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}
