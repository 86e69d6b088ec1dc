package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/internal/portal/mail"
	"github.com/victorygp/portal/pkg/slogx"
)

func TestInitMailSelectsSender(t *testing.T) {
	logger := slogx.New(slogx.Config{Service: "portal-test", Format: "text", Level: "error"})

	t.Run("falls back to log sender without a relay", func(t *testing.T) {
		app := &Application{cfg: Config{}, logger: logger}
		app.initMail()
		require.IsType(t, &mail.LogSender{}, app.sender)
	})

	t.Run("uses the SMTP relay when configured", func(t *testing.T) {
		app := &Application{
			cfg: Config{
				SMTPHost:     "smtp.example.com",
				SMTPPort:     587,
				SMTPUser:     "portal",
				SMTPPassword: "secret",
				SMTPFrom:     "noreply@example.com",
				AppName:      "GP Portal",
			},
			logger: logger,
		}
		app.initMail()
		require.IsType(t, &mail.SMTPSender{}, app.sender)
	})
}
