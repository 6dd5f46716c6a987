package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailConfig holds the SMTP settings for the email channel.
type EmailConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required,min=1,max=65535"`
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	From     string `yaml:"from" validate:"required,email"`
	To       string `yaml:"to" validate:"required,email"`
}

// Email delivers notifications as mail to the user's own address. Useful on
// headless hosts where no desktop notification daemon runs.
type Email struct {
	cfg    EmailConfig
	dialer *gomail.Dialer
	logger *zap.Logger
}

// NewEmail returns an email notification channel.
func NewEmail(cfg EmailConfig, logger *zap.Logger) *Email {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Email{cfg: cfg, dialer: dialer, logger: logger}
}

// Available reports whether SMTP credentials are configured.
func (e *Email) Available() bool {
	return e.cfg.Host != "" && e.cfg.Username != "" && e.cfg.Password != ""
}

// Send delivers the notification as a plain-text mail.
func (e *Email) Send(ctx context.Context, n Notification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.From)
	m.SetHeader("To", e.cfg.To)
	m.SetHeader("Subject", n.Title)
	m.SetBody("text/plain", n.Body)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification mail: %w", err)
	}

	e.logger.Debug("Notification mail sent",
		zap.String("title", n.Title),
		zap.String("to", e.cfg.To))
	return nil
}
