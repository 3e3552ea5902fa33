package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo      LeadRepository
	Publisher EventPublisher
	Now       func() time.Time
}

func NewUpdateLeadUseCase(repo LeadRepository, publisher EventPublisher) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		Repo:      repo,
		Publisher: publisher,
		Now:       time.Now,
	}
}

// Execute aplica um patch parcial ao Lead. As mutações acontecem em memória e
// só são persistidas se todas passarem; qualquer violação aborta sem efeito.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*LeadOutput, error) {
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

	now := uc.Now()
	var events []entity.DomainEvent

	if input.CompanyName != nil {
		name, err := entity.NewCompanyName(*input.CompanyName)
		if err != nil {
			return nil, translateEntityError(err)
		}
		emitted, err := lead.UpdateCompanyName(name, now)
		if err != nil {
			return nil, translateEntityError(err)
		}
		events = append(events, emitted...)
	}

	if input.CNPJ != nil {
		var cnpj *entity.CNPJ
		if strings.TrimSpace(*input.CNPJ) != "" {
			parsed, err := entity.NewCNPJ(*input.CNPJ)
			if err != nil {
				return nil, translateEntityError(err)
			}
			cnpj = &parsed
		}
		emitted, err := lead.UpdateCNPJ(cnpj, now)
		if err != nil {
			return nil, translateEntityError(err)
		}
		events = append(events, emitted...)
	}

	if input.Email != nil || input.Phone != nil || input.Website != nil || input.Instagram != nil {
		newInfo, err := patchContactInfo(lead.ContactInfo(), input)
		if err != nil {
			return nil, translateEntityError(err)
		}
		emitted, err := lead.UpdateContactInfo(newInfo, now)
		if err != nil {
			return nil, translateEntityError(err)
		}
		events = append(events, emitted...)
	}

	if input.Status != nil {
		status, err := entity.ParseLeadStatus(strings.ToUpper(strings.TrimSpace(*input.Status)))
		if err != nil {
			return nil, translateEntityError(err)
		}
		emitted, err := lead.UpdateStatus(status, now)
		if err != nil {
			return nil, translateEntityError(err)
		}
		events = append(events, emitted...)
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

// patchContactInfo reconstrói o ContactInfo aplicando só os campos presentes
// no patch sobre os valores atuais.
func patchContactInfo(current entity.ContactInfo, input UpdateLeadInput) (entity.ContactInfo, error) {
	emailRaw := ""
	if email, ok := current.Email(); ok {
		emailRaw = email.Value()
	}
	if input.Email != nil {
		emailRaw = *input.Email
	}

	var phone *entity.Phone
	if current.HasPhone() {
		p, _ := current.Phone()
		phone = &p
	}
	if input.Phone != nil {
		if strings.TrimSpace(*input.Phone) == "" {
			phone = nil
		} else {
			parsed, err := entity.ParseBrazilianPhone(*input.Phone)
			if err != nil {
				return entity.ContactInfo{}, err
			}
			phone = &parsed
		}
	}

	website := current.Website()
	if input.Website != nil {
		website = *input.Website
	}

	media := current.SocialMedia()
	if input.Instagram != nil {
		if strings.TrimSpace(*input.Instagram) == "" {
			delete(media, entity.SocialMediaInstagram)
		} else {
			media[entity.SocialMediaInstagram] = *input.Instagram
		}
	}

	var email *entity.Email
	if strings.TrimSpace(emailRaw) != "" {
		parsed, err := entity.NewEmail(emailRaw)
		if err != nil {
			return entity.ContactInfo{}, err
		}
		email = &parsed
	}

	return entity.NewContactInfo(email, phone, website, media)
}
