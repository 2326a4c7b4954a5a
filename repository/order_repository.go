package repository

import (
	"errors"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// CreateOrder inserts the order together with its Items.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) OrderNumberExists(db *gorm.DB, number string) (bool, error) {
	var n int64
	err := db.Model(&entity.Order{}).Where("order_number = ?", number).Count(&n).Error
	return n > 0, err
}

func (r *OrderRepository) GetOrder(db *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.detail(db).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(db *gorm.DB, userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.detail(db).Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderQuery struct {
	UserID uint // 0 = all users
	Status entity.OrderStatus
	Page   int
	Limit  int
}

// ListOrders returns one page of orders, newest first, without items.
func (r *OrderRepository) ListOrders(db *gorm.DB, q OrderQuery) ([]entity.Order, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	switch {
	case q.Limit <= 0:
		q.Limit = 20
	case q.Limit > 100:
		q.Limit = 100
	}

	base := db.Model(&entity.Order{})
	if q.UserID != 0 {
		base = base.Where("user_id = ?", q.UserID)
	}
	if q.Status != "" {
		base = base.Where("status = ?", q.Status)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := base.Order("id DESC").
		Limit(q.Limit).Offset((q.Page - 1) * q.Limit).
		Find(&out).Error
	return out, total, err
}

// UpdateStatusGuard moves the order only if it is still in from.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) SetPointsEarned(tx *gorm.DB, orderID uint, points int64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("points_earned", points).Error
}

func (r *OrderRepository) CreateCancellation(tx *gorm.DB, c *entity.OrderCancellation) error {
	return tx.Create(c).Error
}

// DeliveredOrderWithItem finds a delivered order of the user that contains the
// menu item, returning 0 when there is none.
func (r *OrderRepository) DeliveredOrderWithItem(db *gorm.DB, userID, menuItemID uint) (uint, error) {
	var row struct{ ID uint }
	err := db.Table("orders AS o").
		Select("o.id").
		Joins("JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL").
		Where("o.user_id = ? AND o.status = ? AND oi.menu_item_id = ? AND o.deleted_at IS NULL",
			userID, entity.OrderDelivered, menuItemID).
		Order("o.id DESC").
		Limit(1).
		Scan(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return row.ID, err
}

func (r *OrderRepository) CountByStatus(db *gorm.DB) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status entity.OrderStatus
		N      int64
	}
	if err := db.Model(&entity.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *OrderRepository) detail(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("order_items.id ASC") }).
		Preload("Cancellation")
}
