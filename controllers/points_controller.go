package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
)

type PointsController struct {
	Svc *services.PointsService
}

func NewPointsController(s *services.PointsService) *PointsController {
	return &PointsController{Svc: s}
}

// GET /points
func (h *PointsController) Balance(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	b, err := h.Svc.Balance(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, services.PointsSummary{Balance: b})
}

// GET /points/history
func (h *PointsController) History(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := utils.Pagination(c)
	list, total, err := h.Svc.History(c.Request.Context(), uid, page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, paged(list, total, page, limit))
}
