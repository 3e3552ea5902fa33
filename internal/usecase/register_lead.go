package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

type RegisterLeadUseCase struct {
	Repo      LeadRepository
	Publisher EventPublisher
	Now       func() time.Time
}

func NewRegisterLeadUseCase(repo LeadRepository, publisher EventPublisher) *RegisterLeadUseCase {
	return &RegisterLeadUseCase{
		Repo:      repo,
		Publisher: publisher,
		Now:       time.Now,
	}
}

func (uc *RegisterLeadUseCase) Execute(ctx context.Context, input RegisterLeadInput) (*LeadOutput, error) {
	source, err := entity.ParseLeadSource(strings.ToUpper(strings.TrimSpace(input.Source)))
	if err != nil {
		return nil, translateEntityError(err)
	}

	name, err := entity.NewCompanyName(input.CompanyName)
	if err != nil {
		return nil, translateEntityError(err)
	}

	var cnpj *entity.CNPJ
	if strings.TrimSpace(input.CNPJ) != "" {
		parsed, err := entity.NewCNPJ(input.CNPJ)
		if err != nil {
			return nil, translateEntityError(err)
		}
		cnpj = &parsed
	}

	contactInfo, err := buildContactInfo(input.Email, input.Phone, input.Website, input.SocialMedia)
	if err != nil {
		return nil, translateEntityError(err)
	}

	lead, events, err := entity.NewLead(name, cnpj, contactInfo, source, uc.Now())
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
