package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{svc: s}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authRes struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, u)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if !bindJSON(c, &req) {
		return
	}
	token, u, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, authRes{Token: token, User: u})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	u, err := h.svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, u)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req services.ProfileUpdateIn
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), uid, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, u)
}
