package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier define o contrato para quem entrega a notificação (SMTP hoje).
type Notifier interface {
	SendNotification(payload NotificationPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // ack manual
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] JSON inválido: %s", err)
				// Mensagem malformada: rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.Notifier.SendNotification(payload); err != nil {
				log.Printf("[worker] falha ao notificar %s (%s): %s", payload.Email, payload.Kind, err)
				d.Nack(false, false)
			} else {
				log.Printf("[worker] notificação %s enviada para a agência", payload.Kind)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker aguardando na fila '%s'", queueName)
	<-forever
}
