package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "reinkjet/internal/shared/config"
)

// Sender delivers a single email message.
type Sender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

type SMTPSender struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
}

func NewSMTPSender(cfg sharedConfig.EmailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
