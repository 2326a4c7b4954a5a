package mail

import (
	"context"

	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	From string
	Log  *zap.Logger
}

func NewLogMailer(from string, log *zap.Logger) *LogMailer {
	return &LogMailer{From: from, Log: log}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.Log.Info("mail",
		zap.String("from", m.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("bodyLen", len(msg.Body)),
	)
	return nil
}
