package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

// RabbitMQProducer publica eventos de domínio no exchange do CRM. Cada evento
// vira uma mensagem JSON própria, com o tipo no corpo (event_type) e no header.
type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) Publish(ctx context.Context, events ...entity.DomainEvent) error {
	for _, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("erro ao converter evento %s: %v", event.EventType(), err)
		}

		err = p.Ch.PublishWithContext(ctx,
			ExchangeName, // ex.crm.events
			RoutingKey,   // k.lead
			false,        // Mandatory
			false,        // Immediate
			amqp.Publishing{
				ContentType:  "application/json",
				Type:         event.EventType(),
				MessageId:    event.EventID(),
				Body:         body,
				DeliveryMode: amqp.Persistent, // Mensagem salva no disco
			},
		)
		if err != nil {
			return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
		}
	}
	return nil
}
