package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/ytareq/portfolio/pkg/logger"
)

// TLS modes accepted by SMTPMailer
const (
	TLSNone     = "none"
	TLSStartTLS = "starttls"
	TLSImplicit = "tls"
)

// Mailer delivers a composed email
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// MailError wraps a failure to hand an email to the relay
type MailError struct {
	Op  string
	Err error
}

func (e *MailError) Error() string {
	return fmt.Sprintf("smtp %s: %v", e.Op, e.Err)
}

func (e *MailError) Unwrap() error {
	return e.Err
}

// SMTPConfig describes how to reach the relay
type SMTPConfig struct {
	Addr      string
	Host      string
	Username  string
	Password  string
	TLSMode   string
	TLSConfig *tls.Config
}

// SMTPMailer sends mail through an SMTP relay, one connection per email
type SMTPMailer struct {
	cfg SMTPConfig
	now func() time.Time
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.TLSConfig == nil {
		cfg.TLSConfig = &tls.Config{ServerName: cfg.Host}
	}
	if cfg.TLSMode == "" {
		cfg.TLSMode = TLSStartTLS
	}
	return &SMTPMailer{cfg: cfg, now: time.Now}
}

// Send delivers email. Every failure is returned as a *MailError.
func (m *SMTPMailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return &MailError{Op: "dial", Err: err}
	}
	if len(email.To) == 0 {
		return &MailError{Op: "rcpt", Err: fmt.Errorf("no recipients")}
	}

	client, err := m.dial()
	if err != nil {
		return &MailError{Op: "dial", Err: err}
	}
	defer client.Close()

	// abort the exchange when the caller gives up
	stop := context.AfterFunc(ctx, func() { client.Close() })
	defer stop()

	if m.cfg.Username != "" {
		auth := sasl.NewPlainClient("", m.cfg.Username, m.cfg.Password)
		if err := client.Auth(auth); err != nil {
			return &MailError{Op: "auth", Err: err}
		}
	}

	if err := client.SendMail(email.From, email.To, bytes.NewReader(email.Bytes(m.now()))); err != nil {
		return &MailError{Op: "send", Err: err}
	}

	if err := client.Quit(); err != nil {
		logger.WithError(err).Warn("SMTP quit failed after successful send")
	}
	return nil
}

func (m *SMTPMailer) dial() (*smtp.Client, error) {
	switch m.cfg.TLSMode {
	case TLSImplicit:
		return smtp.DialTLS(m.cfg.Addr, m.cfg.TLSConfig)
	case TLSStartTLS:
		return smtp.DialStartTLS(m.cfg.Addr, m.cfg.TLSConfig)
	case TLSNone:
		return smtp.Dial(m.cfg.Addr)
	default:
		return nil, fmt.Errorf("unknown TLS mode %q", m.cfg.TLSMode)
	}
}
