package controllers

import (
	"strconv"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
)

// ChatController serves both the customer routes and the admin inbox; staff
// status comes from the token role.
type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{s}
}

func chatActor(c *gin.Context) (services.ChatActor, bool) {
	uid, ok := currentUser(c)
	if !ok {
		return services.ChatActor{}, false
	}
	return services.ChatActor{UserID: uid, Staff: utils.CurrentRole(c) == entity.RoleAdmin}, true
}

// GET /chat/sessions
func (h *ChatController) ListSessions(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.service.ListSessions(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}

// POST /chat/sessions
func (h *ChatController) Start(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req services.StartChatIn
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	sess, err := h.service.StartSession(c.Request.Context(), uid, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, sess)
}

// GET /chat/sessions/:id/messages?after=
func (h *ChatController) Messages(c *gin.Context) {
	actor, ok := chatActor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var after uint64
	if v := c.Query("after"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid after")
			return
		}
		after = n
	}
	msgs, err := h.service.Messages(c.Request.Context(), actor, id, uint(after))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, msgs)
}

// POST /chat/sessions/:id/messages
func (h *ChatController) Send(c *gin.Context) {
	actor, ok := chatActor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.SendChatIn
	if !bindJSON(c, &req) {
		return
	}
	msg, err := h.service.Send(c.Request.Context(), actor, id, req.Body)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, msg)
}

// POST /chat/sessions/:id/close
func (h *ChatController) Close(c *gin.Context) {
	actor, ok := chatActor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	sess, err := h.service.Close(c.Request.Context(), actor, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, sess)
}

// GET /admin/chat/sessions?status=open
func (h *ChatController) Inbox(c *gin.Context) {
	list, err := h.service.ListInbox(c.Request.Context(), c.DefaultQuery("status", entity.ChatOpen))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}

// POST /admin/chat/sessions/:id/assign
func (h *ChatController) Assign(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	sess, err := h.service.Assign(c.Request.Context(), uid, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, sess)
}
