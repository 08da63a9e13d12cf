package config

import (
	"crypto/tls"
	"errors"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

var ErrSMTPNotConfigured = errors.New("smtp not configured (SMTP_HOST/SMTP_FROM)")

// SMTPSettings holds the outbound mail configuration.
type SMTPSettings struct {
	Host          string
	Port          int
	User          string
	Pass          string
	From          string // e.g. "Journal Office <no-reply@your.org>"
	SkipTLSVerify bool
}

// LoadSMTPSettings reads SMTP_* from the environment. It is evaluated per call
// so values loaded from the credentials file are seen.
func LoadSMTPSettings() SMTPSettings {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPSettings{
		Host:          os.Getenv("SMTP_HOST"),
		Port:          port,
		User:          os.Getenv("SMTP_USER"),
		Pass:          os.Getenv("SMTP_PASS"),
		From:          os.Getenv("SMTP_FROM"),
		SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}
}

func (s SMTPSettings) Configured() bool {
	return s.Host != "" && s.From != ""
}

// NewMessage builds a plain text message from the configured sender.
func (s SMTPSettings) NewMessage(to []string, subject, body string) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return m
}

// SendMail delivers a plain text message using the environment's SMTP settings.
func SendMail(to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}
	settings := LoadSMTPSettings()
	if !settings.Configured() {
		return ErrSMTPNotConfigured
	}

	d := mail.NewDialer(settings.Host, settings.Port, settings.User, settings.Pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         settings.Host,
		InsecureSkipVerify: settings.SkipTLSVerify,
	}

	return d.DialAndSend(settings.NewMessage(to, subject, body))
}
