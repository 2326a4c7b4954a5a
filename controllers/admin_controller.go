package controllers

import (
	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
)

// AdminController is the back-office surface under /admin.
type AdminController struct {
	Menu    *services.MenuService
	Orders  *services.OrderService
	Deals   *services.DealService
	Rewards *services.RewardService
	Reviews *services.ReviewService
	Users   *services.UserService
	Points  *services.PointsService
}

func NewAdminController(
	menu *services.MenuService,
	orders *services.OrderService,
	deals *services.DealService,
	rewards *services.RewardService,
	reviews *services.ReviewService,
	users *services.UserService,
	points *services.PointsService,
) *AdminController {
	return &AdminController{
		Menu: menu, Orders: orders, Deals: deals, Rewards: rewards,
		Reviews: reviews, Users: users, Points: points,
	}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	counts, err := h.Orders.CountByStatus(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	_, totalUsers, err := h.Users.List(c.Request.Context(), "", 1, 1)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"ordersByStatus": counts, "totalUsers": totalUsers})
}

// ---------------- Categories ----------------

// POST /admin/categories
func (h *AdminController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.Menu.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /admin/categories/:id
func (h *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.CategoryIn
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.Menu.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /admin/categories/:id
func (h *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Menu.DeleteCategory(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Menu items ----------------

// POST /admin/menu
func (h *AdminController) CreateItem(c *gin.Context) {
	var req services.MenuItemIn
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.Menu.CreateItem(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, m)
}

// PUT /admin/menu/:id
func (h *AdminController) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.MenuItemIn
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.Menu.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, m)
}

// PATCH /admin/menu/:id/availability {"isAvailable": false}
func (h *AdminController) SetAvailability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if err := h.Menu.SetAvailability(c.Request.Context(), id, *body.IsAvailable); err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isAvailable": *body.IsAvailable})
}

// DELETE /admin/menu/:id
func (h *AdminController) DeleteItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Menu.DeleteItem(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Orders ----------------

// GET /admin/orders?status=&page=&limit=
func (h *AdminController) ListOrders(c *gin.Context) {
	page, limit := utils.Pagination(c)
	list, total, err := h.Orders.ListAll(c.Request.Context(), services.OrderListIn{
		Status: c.Query("status"), Page: page, Limit: limit,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, paged(list, total, page, limit))
}

// GET /admin/orders/:id
func (h *AdminController) OrderDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := h.Orders.Detail(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /admin/orders/:id/status {"status": "Confirmed"}
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	o, err := h.Orders.UpdateStatus(c.Request.Context(), id, entity.OrderStatus(body.Status))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /admin/orders/:id/cancel
func (h *AdminController) CancelOrder(c *gin.Context) {
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
	o, err := h.Orders.CancelByAdmin(c.Request.Context(), uid, id, req.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, o)
}

// ---------------- Deals ----------------

// GET /admin/deals
func (h *AdminController) ListDeals(c *gin.Context) {
	list, err := h.Deals.ListAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}

// POST /admin/deals
func (h *AdminController) CreateDeal(c *gin.Context) {
	var req services.DealIn
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.Deals.Create(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, d)
}

// PUT /admin/deals/:id
func (h *AdminController) UpdateDeal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.DealIn
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.Deals.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, d)
}

// DELETE /admin/deals/:id
func (h *AdminController) DeleteDeal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Deals.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Rewards ----------------

// GET /admin/rewards
func (h *AdminController) ListRewards(c *gin.Context) {
	list, err := h.Rewards.ListAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, list)
}

// POST /admin/rewards
func (h *AdminController) CreateReward(c *gin.Context) {
	var req services.RewardIn
	if !bindJSON(c, &req) {
		return
	}
	rw, err := h.Rewards.Create(c.Request.Context(), &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, rw)
}

// PUT /admin/rewards/:id
func (h *AdminController) UpdateReward(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.RewardIn
	if !bindJSON(c, &req) {
		return
	}
	rw, err := h.Rewards.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rw)
}

// DELETE /admin/rewards/:id
func (h *AdminController) DeleteReward(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Rewards.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Reviews ----------------

// GET /admin/reviews
func (h *AdminController) ListReviews(c *gin.Context) {
	page, limit := utils.Pagination(c)
	list, total, err := h.Reviews.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, paged(list, total, page, limit))
}

// PUT /admin/reviews/:id/response {"body": "..."}
func (h *AdminController) RespondReview(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Body string `json:"body" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	res, err := h.Reviews.Respond(c.Request.Context(), uid, id, body.Body)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, res)
}

// DELETE /admin/reviews/:id/response
func (h *AdminController) DeleteReviewResponse(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Reviews.DeleteResponse(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /admin/reviews/:id
func (h *AdminController) DeleteReview(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Reviews.Delete(c.Request.Context(), uid, id, true); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Users ----------------

// GET /admin/users?q=&page=&limit=
func (h *AdminController) ListUsers(c *gin.Context) {
	page, limit := utils.Pagination(c)
	list, total, err := h.Users.List(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, paged(list, total, page, limit))
}

// GET /admin/users/:id
func (h *AdminController) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, u)
}

// POST /admin/users/:id/points {"points": -20, "reason": "..."}
func (h *AdminController) AdjustPoints(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Points int64  `json:"points" binding:"required"`
		Reason string `json:"reason" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	row, err := h.Points.Adjust(c.Request.Context(), id, body.Points, body.Reason)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, row)
}
