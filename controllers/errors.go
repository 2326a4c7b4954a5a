package controllers

import (
	"errors"
	"net/http"

	"github.com/gavvrail/MackDihh-sub000/pkg/resp"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/utils"
	"github.com/gin-gonic/gin"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{services.ErrInvalidInput, http.StatusBadRequest},
	{services.ErrCartEmpty, http.StatusBadRequest},
	{services.ErrItemUnavailable, http.StatusBadRequest},
	{services.ErrDealInactive, http.StatusBadRequest},
	{services.ErrDealExpired, http.StatusBadRequest},
	{services.ErrDealExhausted, http.StatusBadRequest},
	{services.ErrDealMinSubtotal, http.StatusBadRequest},
	{services.ErrMultipleDiscounts, http.StatusBadRequest},
	{services.ErrRewardInactive, http.StatusBadRequest},
	{services.ErrRewardItemMissing, http.StatusBadRequest},
	{services.ErrRedemptionUsed, http.StatusBadRequest},
	{services.ErrInsufficientPoints, http.StatusBadRequest},
	{services.ErrInvalidStatus, http.StatusBadRequest},
	{services.ErrReasonRequired, http.StatusBadRequest},
	{services.ErrInvalidRating, http.StatusBadRequest},
	{services.ErrEmptyMessage, http.StatusBadRequest},

	{services.ErrInvalidCredentials, http.StatusUnauthorized},

	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrNotPurchased, http.StatusForbidden},
	{services.ErrOwnReview, http.StatusForbidden},

	{services.ErrUserNotFound, http.StatusNotFound},
	{services.ErrMenuItemNotFound, http.StatusNotFound},
	{services.ErrCategoryNotFound, http.StatusNotFound},
	{services.ErrCartItemNotFound, http.StatusNotFound},
	{services.ErrDealNotFound, http.StatusNotFound},
	{services.ErrRewardNotFound, http.StatusNotFound},
	{services.ErrRedemptionNotFound, http.StatusNotFound},
	{services.ErrOrderNotFound, http.StatusNotFound},
	{services.ErrReviewNotFound, http.StatusNotFound},
	{services.ErrSessionNotFound, http.StatusNotFound},
	{services.ErrWishListNotFound, http.StatusNotFound},

	{services.ErrEmailTaken, http.StatusConflict},
	{services.ErrCategoryInUse, http.StatusConflict},
	{services.ErrDealCodeTaken, http.StatusConflict},
	{services.ErrInvalidTransition, http.StatusConflict},
	{services.ErrStatusConflict, http.StatusConflict},
	{services.ErrOrderNumberTaken, http.StatusConflict},
	{services.ErrNotCancellable, http.StatusConflict},
	{services.ErrAlreadyReviewed, http.StatusConflict},
	{services.ErrSessionClosed, http.StatusConflict},
}

// StatusFor maps a service error to its HTTP status; unknown errors are 500.
func StatusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func respondErr(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		resp.ServerError(c, err)
		return
	}
	resp.Fail(c, status, err.Error())
}

func currentUser(c *gin.Context) (uint, bool) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return 0, false
	}
	return uid, true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, ok := utils.ParamID(c, name)
	if !ok {
		resp.BadRequest(c, "invalid "+name)
	}
	return id, ok
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.BadRequest(c, err.Error())
		return false
	}
	return true
}

func paged[T any](items []T, total int64, page, limit int) resp.Paged[T] {
	if items == nil {
		items = []T{}
	}
	return resp.Paged[T]{Items: items, Total: total, Page: page, Limit: limit}
}
