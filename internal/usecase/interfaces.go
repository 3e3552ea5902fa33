package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

// LeadRepository é a porta de persistência do agregado Lead.
// FindByID retorna (nil, nil) quando o Lead não existe.
type LeadRepository interface {
	Save(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id entity.LeadID) (*entity.Lead, error)
	FindAll(ctx context.Context, page, size int) ([]*entity.Lead, error)
	Count(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id entity.LeadID) (bool, error)
}

// EventPublisher entrega eventos de domínio a consumidores externos.
type EventPublisher interface {
	Publish(ctx context.Context, events ...entity.DomainEvent) error
}

// publishEvents entrega os eventos produzidos por uma mutação. Falha de
// publicação não derruba a operação: o core só garante a produção dos eventos.
func publishEvents(ctx context.Context, publisher EventPublisher, events []entity.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logrus.WithError(err).Warn("failed to publish domain events")
	}
}
