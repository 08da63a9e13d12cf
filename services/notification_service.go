package services

import (
	"fmt"
	"log"

	"journal-db-manager/config"
)

// MailSender delivers a plain text message.
type MailSender func(to []string, subject, body string) error

// NotificationService emails users about their accounts. It is silent when
// SMTP is not configured.
type NotificationService struct {
	send       MailSender
	configured func() bool
}

func NewNotificationService(send MailSender) *NotificationService {
	if send == nil {
		send = config.SendMail
	}
	return &NotificationService{
		send:       send,
		configured: func() bool { return config.LoadSMTPSettings().Configured() },
	}
}

// SendLoginID mails a newly issued login id to its owner.
func (s *NotificationService) SendLoginID(email, name string, loginID int) error {
	if email == "" {
		return nil
	}
	if s.configured != nil && !s.configured() {
		log.Printf("[notify] smtp not configured, skipping login id email to %s", email)
		return nil
	}

	subject := "Your journal login id"
	body := fmt.Sprintf("Dear %s,\n\nYou are registered with the journal.\nYour unique login id is %d.\nUse `login %d` to start a session.\n",
		name, loginID, loginID)
	return s.send([]string{email}, subject, body)
}
