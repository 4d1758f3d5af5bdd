package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type Message struct {
	To      []string
	Cc      []string
	Subject string
	HTML    string
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPMailer delivers through a single authenticated SMTP relay.
type SMTPMailer struct {
	cfg    SMTPConfig
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	logger *zap.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger ...*zap.Logger) *SMTPMailer {
	l := zap.L().Named("notification.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.smtp")
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, logger: l}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("send mail: no recipient")
	}

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)
	rcpt := append(append([]string{}, msg.To...), msg.Cc...)
	if err := m.send(addr, auth, m.cfg.From, rcpt, BuildMIME(m.cfg.From, msg)); err != nil {
		m.logger.Error("smtp send failed", zap.Strings("to", msg.To), zap.Error(err))
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Debug("smtp send success", zap.Strings("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

// BuildMIME renders an HTML message with the headers SMTP relays expect.
func BuildMIME(from string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: HRMS <" + from + ">\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	if len(msg.Cc) > 0 {
		b.WriteString("Cc: " + strings.Join(msg.Cc, ", ") + "\r\n")
	}
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
