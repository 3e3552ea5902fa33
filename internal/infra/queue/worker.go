package queue

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Mailer define o contrato para notificações por email.
type Mailer interface {
	SendLeadConverted(to, companyName, convertedAt string) error
}

// Worker consome a fila de eventos de lead e dispara notificações. Hoje só o
// evento lead.converted gera ação; os demais são confirmados e ignorados.
type Worker struct {
	Channel  *amqp.Channel
	Mailer   Mailer
	NotifyTo string
	Log      *logrus.Logger
}

func NewWorker(ch *amqp.Channel, mailer Mailer, notifyTo string, log *logrus.Logger) *Worker {
	return &Worker{
		Channel:  ch,
		Mailer:   mailer,
		NotifyTo: notifyTo,
		Log:      log,
	}
}

type leadConvertedPayload struct {
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	CompanyName string    `json:"company_name"`
	ContactInfo struct {
		Email string `json:"email"`
	} `json:"contact_info"`
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		w.Log.Fatalf("falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload leadConvertedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				w.Log.WithError(err).Warn("mensagem com JSON inválido, descartando")
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if payload.EventType != "lead.converted" {
				d.Ack(false)
				continue
			}

			w.Log.WithField("company", payload.CompanyName).Info("lead convertido, notificando time comercial")

			if err := w.processConversion(payload); err != nil {
				w.Log.WithError(err).Error("falha ao enviar notificação")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	w.Log.Infof("worker aguardando mensagens na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processConversion(payload leadConvertedPayload) error {
	to := w.NotifyTo
	if to == "" {
		// Sem destinatário configurado, cai no email do próprio lead.
		to = payload.ContactInfo.Email
	}
	if to == "" {
		w.Log.Warn("lead convertido sem email e sem destinatário padrão, pulando notificação")
		return nil
	}
	return w.Mailer.SendLeadConverted(to, payload.CompanyName,
		payload.OccurredAt.Format("02/01/2006 15:04"))
}
