package usecase

import (
	"context"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

type GetLeadUseCase struct {
	Repo LeadRepository
}

func NewGetLeadUseCase(repo LeadRepository) *GetLeadUseCase {
	return &GetLeadUseCase{Repo: repo}
}

func (uc *GetLeadUseCase) Execute(ctx context.Context, id string) (*LeadOutput, error) {
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

	return NewLeadOutput(lead), nil
}
