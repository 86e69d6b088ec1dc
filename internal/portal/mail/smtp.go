package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig carries the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string

	// From is the sender address; defaults to User when empty.
	From string

	// AppName appears in subjects and signatures.
	AppName string
}

// SMTPSender delivers mail through a plain-auth SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) send(toEmail, subject, body string) error {
	headers := []string{
		fmt.Sprintf("From: %s", s.cfg.From),
		fmt.Sprintf("To: %s", toEmail),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}
	message := strings.Join(headers, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{toEmail}, []byte(message))
}

func (s *SMTPSender) SendLoginOTP(ctx context.Context, to, name, code string) error {
	subject := fmt.Sprintf("%s - Your Login Code", s.cfg.AppName)

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your one-time login code is:\n\n"+
			"    %s\n\n"+
			"This code expires in 5 minutes. If you did not try to sign in, "+
			"you can ignore this email.\n\n"+
			"Best regards,\n"+
			"The %s Team",
		name, code, s.cfg.AppName)

	return s.send(to, subject, body)
}

func (s *SMTPSender) SendDocumentNotification(ctx context.Context, to, name, documentName string) error {
	subject := fmt.Sprintf("%s - New Document Available", s.cfg.AppName)

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"A new document has been added to your account:\n\n"+
			"    %s\n\n"+
			"Sign in to view or download it.\n\n"+
			"Best regards,\n"+
			"The %s Team",
		name, documentName, s.cfg.AppName)

	return s.send(to, subject, body)
}
