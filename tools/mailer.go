package tools

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer envia emails transacionais via SMTP.
// Sem host configurado (dev local) ele só loga a mensagem, sem falhar.
type Mailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (m Mailer) SendEmail(to, subject, message string) error {
	if m.Host == "" {
		log.Printf("mailer: SMTP não configurado, descartando email to=%s subject=%q", to, subject)
		log.Printf("mailer: corpo: %s", message)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)

	dialer := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("falha ao enviar email para %s: %w", to, err)
	}
	return nil
}
