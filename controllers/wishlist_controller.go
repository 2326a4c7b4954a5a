package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gin-gonic/gin"
)

type WishListController struct {
	Svc *services.WishListService
}

func NewWishListController(s *services.WishListService) *WishListController {
	return &WishListController{Svc: s}
}

// GET /wishlist
func (h *WishListController) List(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}

// POST /wishlist {"menuItemId": 1}
func (h *WishListController) Add(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := h.Svc.Add(c.Request.Context(), uid, body.MenuItemID); err != nil {
		respondErr(c, err)
		return
	}
	h.List(c)
}

// DELETE /wishlist/:menuItemId
func (h *WishListController) Remove(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "menuItemId")
	if !ok {
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), uid, id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /wishlist/:menuItemId/move-to-cart
func (h *WishListController) MoveToCart(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "menuItemId")
	if !ok {
		return
	}
	line, err := h.Svc.MoveToCart(c.Request.Context(), uid, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, line)
}
