package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req services.ReviewIn
	if !bindJSON(c, &req) {
		return
	}
	rev, err := h.Svc.Create(c.Request.Context(), uid, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, rev)
}

// PATCH /reviews/:id
func (h *ReviewController) Update(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.ReviewUpdateIn
	if !bindJSON(c, &req) {
		return
	}
	rev, err := h.Svc.Update(c.Request.Context(), uid, id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rev)
}

// DELETE /reviews/:id
func (h *ReviewController) Delete(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	isAdmin := utils.CurrentRole(c) == entity.RoleAdmin
	if err := h.Svc.Delete(c.Request.Context(), uid, id, isAdmin); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /reviews/:id/vote {"helpful": true}
func (h *ReviewController) Vote(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Helpful *bool `json:"helpful" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	rev, err := h.Svc.Vote(c.Request.Context(), uid, id, *body.Helpful)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rev)
}

// GET /reviews/mine
func (h *ReviewController) Mine(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := utils.Pagination(c)
	list, total, err := h.Svc.ListForUser(c.Request.Context(), uid, page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, paged(list, total, page, limit))
}
