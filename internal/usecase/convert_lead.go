package usecase

import (
	"context"
	"time"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

type ConvertLeadUseCase struct {
	Repo      LeadRepository
	Publisher EventPublisher
	Now       func() time.Time
}

func NewConvertLeadUseCase(repo LeadRepository, publisher EventPublisher) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{
		Repo:      repo,
		Publisher: publisher,
		Now:       time.Now,
	}
}

func (uc *ConvertLeadUseCase) Execute(ctx context.Context, id string) (*LeadOutput, error) {
	leadID, err := entity.ParseLeadID(id)
	if err != nil {
		return nil, translateEntityError(err)
	}

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load lead: " + err.Error(),
		}
	}
	if lead == nil {
		return nil, errLeadNotFound(id)
	}

	events, err := lead.ConvertToClient(uc.Now())
	if err != nil {
		return nil, translateEntityError(err)
	}

	if err := uc.Repo.Save(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	publishEvents(ctx, uc.Publisher, events)

	return NewLeadOutput(lead), nil
}
