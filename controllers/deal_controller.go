package controllers

import (
	"time"

	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gin-gonic/gin"
)

type DealController struct {
	Svc *services.DealService
}

func NewDealController(s *services.DealService) *DealController {
	return &DealController{Svc: s}
}

// GET /deals
func (h *DealController) ListActive(c *gin.Context) {
	list, err := h.Svc.ListActive(c.Request.Context(), time.Now())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}
