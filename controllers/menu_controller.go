package controllers

import (
	"strconv"

	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc     *services.MenuService
	Reviews *services.ReviewService
}

func NewMenuController(s *services.MenuService, rs *services.ReviewService) *MenuController {
	return &MenuController{Svc: s, Reviews: rs}
}

// GET /menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menu/items?categoryId=&q=&all=true
func (h *MenuController) Items(c *gin.Context) {
	f := repository.MenuFilter{
		Search:        c.Query("q"),
		AvailableOnly: c.Query("all") != "true",
	}
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		f.CategoryID = uint(id)
	}
	items, err := h.Svc.ListItems(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/items/:id
func (h *MenuController) Item(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := h.Svc.GetItem(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /menu/items/:id/reviews
func (h *MenuController) ItemReviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	page, limit := utils.Pagination(c)
	out, err := h.Reviews.ListForItem(c.Request.Context(), id, page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}
