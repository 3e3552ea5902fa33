package usecase

import (
	"context"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

type DeleteLeadUseCase struct {
	Repo LeadRepository
}

func NewDeleteLeadUseCase(repo LeadRepository) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) error {
	leadID, err := entity.ParseLeadID(id)
	if err != nil {
		return translateEntityError(err)
	}

	deleted, err := uc.Repo.DeleteByID(ctx, leadID)
	if err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to delete lead: " + err.Error(),
		}
	}
	if !deleted {
		return errLeadNotFound(id)
	}
	return nil
}
