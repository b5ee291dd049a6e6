package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aetherlabs-ai/aether-crm/internal/infra/queue"
)

func TestComposeContactNotification(t *testing.T) {
	subject, body := composeNotification(queue.NotificationPayload{
		Kind:    queue.KindContact,
		Name:    "Maria Souza",
		Email:   "maria@empresa.com.br",
		Subject: "Orçamento de chatbot",
		Body:    "Gostaria de um orçamento.",
	})

	assert.Equal(t, "Novo contato pelo site: Orçamento de chatbot", subject)
	assert.Contains(t, body, "Nome: Maria Souza")
	assert.Contains(t, body, "Gostaria de um orçamento.")
}

func TestComposeNewsletterNotification(t *testing.T) {
	subject, body := composeNotification(queue.NotificationPayload{
		Kind:  queue.KindNewsletter,
		Email: "maria@empresa.com.br",
	})

	assert.Equal(t, "Nova inscrição na newsletter", subject)
	assert.Contains(t, body, "maria@empresa.com.br")
}

func TestComposeOrderNotification(t *testing.T) {
	subject, _ := composeNotification(queue.NotificationPayload{
		Kind:    queue.KindOrder,
		Name:    "ACME Ltda",
		Email:   "contato@acme.com.br",
		Subject: "Chatbot com IA",
	})

	assert.Equal(t, "Novo pedido de serviço: Chatbot com IA", subject)
}

func TestComposeUnknownKindFallsBack(t *testing.T) {
	subject, _ := composeNotification(queue.NotificationPayload{Kind: "sms"})
	assert.Equal(t, "Nova notificação do site", subject)
}
