// internal/mail/mail.go
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers contact-form messages over SMTP.
type Sender struct {
	host     string
	port     int
	user     string
	password string
	to       string
}

func NewSender(host string, port int, user, password, to string) *Sender {
	return &Sender{host: host, port: port, user: user, password: password, to: to}
}

type ContactMessage struct {
	Name    string
	Email   string
	Date    string
	Message string
}

// SendContact forwards a visitor's message to the photographer's inbox.
func (s *Sender) SendContact(msg ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", s.to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("Demande de contact de %s", msg.Name))

	body := fmt.Sprintf("Nom: %s\nEmail: %s\nDate souhaitée: %s\n\n%s",
		msg.Name, msg.Email, msg.Date, msg.Message)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
