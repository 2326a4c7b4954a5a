package services

import "errors"

// Errors the controllers map to HTTP responses.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category still has menu items")
	ErrItemUnavailable  = errors.New("menu item is not available")

	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrDealNotFound      = errors.New("promo code not found")
	ErrDealInactive      = errors.New("promo code is not active")
	ErrDealExpired       = errors.New("promo code is not valid at this time")
	ErrDealExhausted     = errors.New("promo code usage limit reached")
	ErrDealMinSubtotal   = errors.New("order does not meet the promo code minimum")
	ErrDealCodeTaken     = errors.New("promo code already exists")
	ErrMultipleDiscounts = errors.New("only one promo code or points redemption can be applied")

	ErrRewardNotFound     = errors.New("reward not found")
	ErrRewardInactive     = errors.New("reward is not active")
	ErrRedemptionNotFound = errors.New("redemption not found")
	ErrRedemptionUsed     = errors.New("redemption already used")
	ErrRewardItemMissing  = errors.New("reward item is not in the cart")
	ErrInsufficientPoints = errors.New("insufficient points")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNumberTaken  = errors.New("could not allocate an order number, try again")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrStatusConflict    = errors.New("order status changed concurrently")
	ErrNotCancellable    = errors.New("order can only be cancelled while pending or confirmed")
	ErrReasonRequired    = errors.New("cancellation reason is required")

	ErrReviewNotFound  = errors.New("review not found")
	ErrNotPurchased    = errors.New("you can only review items from a delivered order")
	ErrAlreadyReviewed = errors.New("you have already reviewed this item")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrOwnReview       = errors.New("you cannot vote on your own review")

	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionClosed   = errors.New("chat session is closed")
	ErrEmptyMessage    = errors.New("message body is required")

	ErrWishListNotFound = errors.New("wish list item not found")
)
