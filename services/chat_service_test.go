package services

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	mu   sync.Mutex
	msgs []*entity.ChatMessage
}

func (n *captureNotifier) Notify(_ uint, msg *entity.ChatMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func TestStartSessionReusesOpenSession(t *testing.T) {
	f := newFixture(t)

	first, err := f.chat.StartSession(f.ctx, f.customer.ID, &StartChatIn{Message: "Where is my food?"})
	require.NoError(t, err)
	assert.Equal(t, "Support", first.Subject)
	assert.Equal(t, entity.ChatOpen, first.Status)

	again, err := f.chat.StartSession(f.ctx, f.customer.ID, &StartChatIn{Subject: "Other", Message: "Hello?"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	customer := ChatActor{UserID: f.customer.ID}
	msgs, err := f.chat.Messages(f.ctx, customer, first.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Where is my food?", msgs[0].Body)

	_, err = f.chat.Close(f.ctx, customer, first.ID)
	require.NoError(t, err)
	fresh, err := f.chat.StartSession(f.ctx, f.customer.ID, &StartChatIn{Subject: "Refund"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, fresh.ID)
	assert.Equal(t, "Refund", fresh.Subject)
}

func TestChatSendRules(t *testing.T) {
	f := newFixture(t)
	n := &captureNotifier{}
	f.chat.SetNotifier(n)

	sess, err := f.chat.StartSession(f.ctx, f.customer.ID, &StartChatIn{})
	require.NoError(t, err)
	customer := ChatActor{UserID: f.customer.ID}
	staff := ChatActor{UserID: f.admin.ID, Staff: true}

	_, err = f.chat.Send(f.ctx, customer, sess.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	long, err := f.chat.Send(f.ctx, customer, sess.ID, strings.Repeat("a", 2500))
	require.NoError(t, err)
	assert.Len(t, long.Body, 2000)

	accented, err := f.chat.Send(f.ctx, customer, sess.ID, "a"+strings.Repeat("é", 2500))
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(accented.Body), "truncation must not split a rune")
	assert.Equal(t, 2000, utf8.RuneCountInString(accented.Body))
	assert.True(t, strings.HasSuffix(accented.Body, "é"))

	reply, err := f.chat.Send(f.ctx, staff, sess.ID, "On it")
	require.NoError(t, err)
	assert.True(t, reply.IsFromStaff)

	got, err := f.chat.Session(f.ctx, staff, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AdminID, "first staff reply assigns the session")
	assert.Equal(t, f.admin.ID, *got.AdminID)

	stranger := testutil.CreateUser(t, f.db, "stranger@example.com", entity.RoleCustomer)
	_, err = f.chat.Send(f.ctx, ChatActor{UserID: stranger.ID}, sess.ID, "hi")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.chat.Close(f.ctx, staff, sess.ID)
	require.NoError(t, err)
	_, err = f.chat.Close(f.ctx, staff, sess.ID)
	require.NoError(t, err, "closing twice is fine")
	_, err = f.chat.Send(f.ctx, customer, sess.ID, "still there?")
	assert.ErrorIs(t, err, ErrSessionClosed)

	assert.Len(t, n.msgs, 3)
}

func TestChatPollingAndReadMarks(t *testing.T) {
	f := newFixture(t)
	sess, err := f.chat.StartSession(f.ctx, f.customer.ID, &StartChatIn{Message: "one"})
	require.NoError(t, err)
	customer := ChatActor{UserID: f.customer.ID}
	staff := ChatActor{UserID: f.admin.ID, Staff: true}

	unread, err := f.chat.Unread(f.ctx, staff, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	msgs, err := f.chat.Messages(f.ctx, staff, sess.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	unread, err = f.chat.Unread(f.ctx, staff, sess.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)

	_, err = f.chat.Send(f.ctx, customer, sess.ID, "two")
	require.NoError(t, err)
	after, err := f.chat.Messages(f.ctx, staff, sess.ID, msgs[0].ID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "two", after[0].Body)

	// the customer's own messages do not count as unread for them
	unread, err = f.chat.Unread(f.ctx, customer, sess.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestChatInboxAndAssign(t *testing.T) {
	f := newFixture(t)
	sess, err := f.chat.StartSession(f.ctx, f.customer.ID, &StartChatIn{})
	require.NoError(t, err)

	open, err := f.chat.ListInbox(f.ctx, entity.ChatOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)

	assigned, err := f.chat.Assign(f.ctx, f.admin.ID, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AdminID)

	_, err = f.chat.Close(f.ctx, ChatActor{UserID: f.customer.ID}, sess.ID)
	require.NoError(t, err)
	_, err = f.chat.Assign(f.ctx, f.admin.ID, sess.ID)
	assert.ErrorIs(t, err, ErrSessionClosed)

	open, err = f.chat.ListInbox(f.ctx, entity.ChatOpen)
	require.NoError(t, err)
	assert.Empty(t, open)

	mine, err := f.chat.ListSessions(f.ctx, f.customer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
