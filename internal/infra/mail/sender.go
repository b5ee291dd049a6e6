package mail

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/aetherlabs-ai/aether-crm/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

func NewEmailSender(host string, port int, user, password, from, notifyTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		NotifyTo: notifyTo,
	}
}

// composeNotification monta assunto e corpo conforme o tipo da submissão.
func composeNotification(payload queue.NotificationPayload) (string, string) {
	var subject string
	var body strings.Builder

	switch payload.Kind {
	case queue.KindContact:
		subject = fmt.Sprintf("Novo contato pelo site: %s", payload.Subject)
		fmt.Fprintf(&body, "Nome: %s\nEmail: %s\nAssunto: %s\n\n%s\n", payload.Name, payload.Email, payload.Subject, payload.Body)
	case queue.KindNewsletter:
		subject = "Nova inscrição na newsletter"
		fmt.Fprintf(&body, "Email: %s\n", payload.Email)
	case queue.KindOrder:
		subject = fmt.Sprintf("Novo pedido de serviço: %s", payload.Subject)
		fmt.Fprintf(&body, "Cliente: %s\nEmail: %s\nServiço: %s\n\n%s\n", payload.Name, payload.Email, payload.Subject, payload.Body)
	default:
		subject = "Nova notificação do site"
		fmt.Fprintf(&body, "Email: %s\n%s\n", payload.Email, payload.Body)
	}

	return subject, body.String()
}

// SendNotification avisa a caixa da agência sobre uma submissão do site.
func (s *EmailSender) SendNotification(payload queue.NotificationPayload) error {
	subject, body := composeNotification(payload)

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.NotifyTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}
