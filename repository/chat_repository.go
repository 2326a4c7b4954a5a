package repository

import (
	"time"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

func (r *ChatRepository) CreateSession(db *gorm.DB, s *entity.ChatSession) error {
	return db.Create(s).Error
}

func (r *ChatRepository) FindSession(db *gorm.DB, id uint) (*entity.ChatSession, error) {
	var s entity.ChatSession
	if err := db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindOpenSessionByUser returns gorm.ErrRecordNotFound when the user has none.
func (r *ChatRepository) FindOpenSessionByUser(db *gorm.DB, userID uint) (*entity.ChatSession, error) {
	var s entity.ChatSession
	err := db.Where("user_id = ? AND status = ?", userID, entity.ChatOpen).
		Order("id DESC").First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ChatRepository) FindSessionsByUser(db *gorm.DB, userID uint) ([]entity.ChatSession, error) {
	var out []entity.ChatSession
	err := db.Where("user_id = ?", userID).Order("last_message_at DESC").Find(&out).Error
	return out, err
}

// FindSessionsByStatus backs the staff inbox; an empty status lists everything.
func (r *ChatRepository) FindSessionsByStatus(db *gorm.DB, status string) ([]entity.ChatSession, error) {
	q := db.Model(&entity.ChatSession{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entity.ChatSession
	err := q.Order("last_message_at DESC").Find(&out).Error
	return out, err
}

func (r *ChatRepository) UpdateSession(db *gorm.DB, id uint, updates map[string]any) error {
	return db.Model(&entity.ChatSession{}).Where("id = ?", id).Updates(updates).Error
}

// FindMessagesAfter returns the messages with id > afterID in send order.
func (r *ChatRepository) FindMessagesAfter(db *gorm.DB, sessionID, afterID uint) ([]entity.ChatMessage, error) {
	var msgs []entity.ChatMessage
	err := db.Where("chat_session_id = ? AND id > ?", sessionID, afterID).
		Order("id ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) CreateMessage(db *gorm.DB, msg *entity.ChatMessage) error {
	return db.Create(msg).Error
}

// MarkRead stamps unread messages sent by the other side.
func (r *ChatRepository) MarkRead(db *gorm.DB, sessionID uint, fromStaff bool, at time.Time) error {
	return db.Model(&entity.ChatMessage{}).
		Where("chat_session_id = ? AND is_from_staff = ? AND read_at IS NULL", sessionID, fromStaff).
		Update("read_at", at).Error
}

func (r *ChatRepository) CountUnread(db *gorm.DB, sessionID uint, fromStaff bool) (int64, error) {
	var n int64
	err := db.Model(&entity.ChatMessage{}).
		Where("chat_session_id = ? AND is_from_staff = ? AND read_at IS NULL", sessionID, fromStaff).
		Count(&n).Error
	return n, err
}
