package services

import (
	"context"
	"errors"
	"strings"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB         *gorm.DB
	ReviewRepo *repository.ReviewRepository
	OrderRepo  *repository.OrderRepository
	MenuRepo   *repository.MenuRepository
}

func NewReviewService(db *gorm.DB, rr *repository.ReviewRepository, or *repository.OrderRepository, mr *repository.MenuRepository) *ReviewService {
	return &ReviewService{DB: db, ReviewRepo: rr, OrderRepo: or, MenuRepo: mr}
}

type ReviewIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Comment    string `json:"comment"`
}

type ReviewUpdateIn struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type ItemReviews struct {
	repository.RatingAggregate
	Reviews []entity.Review `json:"reviews"`
	Total   int64           `json:"total"`
}

// Create only accepts a review for an item the user received in a delivered order.
func (s *ReviewService) Create(ctx context.Context, userID uint, in *ReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}
	db := s.DB.WithContext(ctx)

	if _, err := s.MenuRepo.FindItem(db, in.MenuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	orderID, err := s.OrderRepo.DeliveredOrderWithItem(db, userID, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if orderID == 0 {
		return nil, ErrNotPurchased
	}

	exists, err := s.ReviewRepo.ExistsForUserItem(db, userID, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rev := &entity.Review{
		UserID:     userID,
		MenuItemID: in.MenuItemID,
		OrderID:    orderID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}
	if err := s.ReviewRepo.Create(db, rev); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) Update(ctx context.Context, userID, reviewID uint, in *ReviewUpdateIn) (*entity.Review, error) {
	db := s.DB.WithContext(ctx)
	rev, err := s.find(db, reviewID)
	if err != nil {
		return nil, err
	}
	if rev.UserID != userID {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, ErrInvalidRating
		}
		updates["rating"] = *in.Rating
	}
	if in.Comment != nil {
		updates["comment"] = strings.TrimSpace(*in.Comment)
	}
	if len(updates) > 0 {
		if err := s.ReviewRepo.Update(db, reviewID, updates); err != nil {
			return nil, err
		}
	}
	return s.find(db, reviewID)
}

// Delete lets the author or an admin remove a review.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uint, isAdmin bool) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rev, err := s.find(tx, reviewID)
		if err != nil {
			return err
		}
		if rev.UserID != userID && !isAdmin {
			return ErrForbidden
		}
		return s.ReviewRepo.Delete(tx, reviewID)
	})
}

func (s *ReviewService) ListForItem(ctx context.Context, menuItemID uint, page, limit int) (*ItemReviews, error) {
	db := s.DB.WithContext(ctx)
	if _, err := s.MenuRepo.FindItem(db, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	list, total, err := s.ReviewRepo.ListForItem(db, menuItemID, page, limit)
	if err != nil {
		return nil, err
	}
	agg, err := s.MenuRepo.RatingFor(db, menuItemID)
	if err != nil {
		return nil, err
	}
	return &ItemReviews{RatingAggregate: agg, Reviews: list, Total: total}, nil
}

func (s *ReviewService) ListForUser(ctx context.Context, userID uint, page, limit int) ([]entity.Review, int64, error) {
	return s.ReviewRepo.ListForUser(s.DB.WithContext(ctx), userID, page, limit)
}

func (s *ReviewService) ListAll(ctx context.Context, page, limit int) ([]entity.Review, int64, error) {
	return s.ReviewRepo.ListAll(s.DB.WithContext(ctx), page, limit)
}

// Vote records one helpful/not-helpful vote per user. Changing an earlier vote
// moves the count from one counter to the other.
func (s *ReviewService) Vote(ctx context.Context, userID, reviewID uint, helpful bool) (*entity.Review, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rev, err := s.find(tx, reviewID)
		if err != nil {
			return err
		}
		if rev.UserID == userID {
			return ErrOwnReview
		}

		prev, err := s.ReviewRepo.FindVote(tx, reviewID, userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.ReviewRepo.CreateVote(tx, &entity.ReviewVote{ReviewID: reviewID, UserID: userID, IsHelpful: helpful}); err != nil {
				return err
			}
			return s.ReviewRepo.BumpCounters(tx, reviewID, boolDelta(helpful), boolDelta(!helpful))
		case err != nil:
			return err
		case prev.IsHelpful == helpful:
			return nil
		default:
			if err := s.ReviewRepo.SetVote(tx, prev.ID, helpful); err != nil {
				return err
			}
			if helpful {
				return s.ReviewRepo.BumpCounters(tx, reviewID, 1, -1)
			}
			return s.ReviewRepo.BumpCounters(tx, reviewID, -1, 1)
		}
	})
	if err != nil {
		return nil, err
	}
	return s.find(s.DB.WithContext(ctx), reviewID)
}

// Respond sets the single admin response on a review, replacing any earlier one.
func (s *ReviewService) Respond(ctx context.Context, adminID, reviewID uint, body string) (*entity.ReviewResponse, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	db := s.DB.WithContext(ctx)
	if _, err := s.find(db, reviewID); err != nil {
		return nil, err
	}

	res, err := s.ReviewRepo.FindResponse(db, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		res = &entity.ReviewResponse{ReviewID: reviewID}
	} else if err != nil {
		return nil, err
	}
	res.AdminID = adminID
	res.Body = body
	if err := s.ReviewRepo.SaveResponse(db, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReviewService) DeleteResponse(ctx context.Context, reviewID uint) error {
	n, err := s.ReviewRepo.DeleteResponse(s.DB.WithContext(ctx), reviewID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (s *ReviewService) find(db *gorm.DB, id uint) (*entity.Review, error) {
	rev, err := s.ReviewRepo.Find(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	return rev, err
}

func boolDelta(b bool) int {
	if b {
		return 1
	}
	return 0
}
