package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gin-gonic/gin"
)

type RewardController struct {
	Svc *services.RewardService
}

func NewRewardController(s *services.RewardService) *RewardController {
	return &RewardController{Svc: s}
}

// GET /rewards
func (h *RewardController) List(c *gin.Context) {
	list, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}

// POST /rewards/:id/redeem
func (h *RewardController) Redeem(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	red, err := h.Svc.Redeem(c.Request.Context(), uid, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, red)
}

// GET /rewards/mine?unused=true
func (h *RewardController) Mine(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.Svc.ListForUser(c.Request.Context(), uid, c.Query("unused") == "true")
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}
