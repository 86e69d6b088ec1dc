package mail

import (
	"context"
	"log/slog"
)

// LogSender writes email contents to the log instead of delivering them.
// Used in dev when no SMTP relay is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (l *LogSender) SendLoginOTP(ctx context.Context, to, name, code string) error {
	l.logger.Info("login OTP (not delivered)", "to", to, "code", code)
	return nil
}

func (l *LogSender) SendDocumentNotification(ctx context.Context, to, name, documentName string) error {
	l.logger.Info("document notification (not delivered)", "to", to, "document", documentName)
	return nil
}
