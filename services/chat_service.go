package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"gorm.io/gorm"
)

const maxChatBody = 2000

// MessageNotifier is told about every stored chat message, e.g. to push it
// to websocket subscribers.
type MessageNotifier interface {
	Notify(sessionID uint, msg *entity.ChatMessage)
}

// ChatActor is whoever is calling: a customer or a staff member.
type ChatActor struct {
	UserID uint
	Staff  bool
}

type ChatService struct {
	DB       *gorm.DB
	repo     *repository.ChatRepository
	notifier MessageNotifier

	Now func() time.Time
}

func NewChatService(db *gorm.DB, repo *repository.ChatRepository) *ChatService {
	return &ChatService{DB: db, repo: repo, Now: time.Now}
}

func (s *ChatService) SetNotifier(n MessageNotifier) {
	s.notifier = n
}

type StartChatIn struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type SendChatIn struct {
	Body string `json:"body" binding:"required"`
}

// StartSession returns the user's open session if there is one, otherwise
// opens a new one. A first message is posted either way when given.
func (s *ChatService) StartSession(ctx context.Context, userID uint, in *StartChatIn) (*entity.ChatSession, error) {
	db := s.DB.WithContext(ctx)

	sess, err := s.repo.FindOpenSessionByUser(db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		subject := strings.TrimSpace(in.Subject)
		if subject == "" {
			subject = "Support"
		}
		sess = &entity.ChatSession{
			UserID:        userID,
			Subject:       subject,
			Status:        entity.ChatOpen,
			LastMessageAt: s.Now(),
		}
		if err := s.repo.CreateSession(db, sess); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Message) != "" {
		if _, err := s.Send(ctx, ChatActor{UserID: userID}, sess.ID, in.Message); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

func (s *ChatService) ListSessions(ctx context.Context, userID uint) ([]entity.ChatSession, error) {
	return s.repo.FindSessionsByUser(s.DB.WithContext(ctx), userID)
}

// ListInbox is the staff view; status "" lists every session.
func (s *ChatService) ListInbox(ctx context.Context, status string) ([]entity.ChatSession, error) {
	return s.repo.FindSessionsByStatus(s.DB.WithContext(ctx), status)
}

// Session loads a session the actor is allowed to see.
func (s *ChatService) Session(ctx context.Context, actor ChatActor, sessionID uint) (*entity.ChatSession, error) {
	sess, err := s.repo.FindSession(s.DB.WithContext(ctx), sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.Staff && sess.UserID != actor.UserID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *ChatService) Send(ctx context.Context, actor ChatActor, sessionID uint, body string) (*entity.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	body = truncateRunes(body, maxChatBody)

	sess, err := s.Session(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == entity.ChatClosed {
		return nil, ErrSessionClosed
	}

	now := s.Now()
	msg := &entity.ChatMessage{
		ChatSessionID: sess.ID,
		SenderID:      actor.UserID,
		IsFromStaff:   actor.Staff,
		Body:          body,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateMessage(tx, msg); err != nil {
			return err
		}
		updates := map[string]any{"last_message_at": now}
		if actor.Staff && sess.AdminID == nil {
			updates["admin_id"] = actor.UserID
		}
		return s.repo.UpdateSession(tx, sess.ID, updates)
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(sess.ID, msg)
	}
	return msg, nil
}

// Messages returns messages after afterID for polling clients and marks the
// other side's messages as read.
func (s *ChatService) Messages(ctx context.Context, actor ChatActor, sessionID, afterID uint) ([]entity.ChatMessage, error) {
	sess, err := s.Session(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	db := s.DB.WithContext(ctx)
	msgs, err := s.repo.FindMessagesAfter(db, sess.ID, afterID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.MarkRead(db, sess.ID, !actor.Staff, s.Now()); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *ChatService) Unread(ctx context.Context, actor ChatActor, sessionID uint) (int64, error) {
	sess, err := s.Session(ctx, actor, sessionID)
	if err != nil {
		return 0, err
	}
	return s.repo.CountUnread(s.DB.WithContext(ctx), sess.ID, !actor.Staff)
}

func (s *ChatService) Assign(ctx context.Context, adminID, sessionID uint) (*entity.ChatSession, error) {
	actor := ChatActor{UserID: adminID, Staff: true}
	sess, err := s.Session(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == entity.ChatClosed {
		return nil, ErrSessionClosed
	}
	if err := s.repo.UpdateSession(s.DB.WithContext(ctx), sess.ID, map[string]any{"admin_id": adminID}); err != nil {
		return nil, err
	}
	return s.Session(ctx, actor, sessionID)
}

// Close is idempotent; closing a closed session is a no-op.
func (s *ChatService) Close(ctx context.Context, actor ChatActor, sessionID uint) (*entity.ChatSession, error) {
	sess, err := s.Session(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == entity.ChatClosed {
		return sess, nil
	}
	now := s.Now()
	if err := s.repo.UpdateSession(s.DB.WithContext(ctx), sess.ID, map[string]any{
		"status":    entity.ChatClosed,
		"closed_at": now,
	}); err != nil {
		return nil, err
	}
	return s.Session(ctx, actor, sessionID)
}

// truncateRunes keeps at most n characters, never splitting a multibyte rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
