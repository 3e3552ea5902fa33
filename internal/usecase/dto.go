package usecase

import (
	"strings"
	"time"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

type RegisterLeadInput struct {
	CompanyName string            `json:"company_name"`
	CNPJ        string            `json:"cnpj,omitempty"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Website     string            `json:"website,omitempty"`
	SocialMedia map[string]string `json:"social_media,omitempty"`
	Source      string            `json:"source"`
}

// UpdateLeadInput é um patch parcial: só os campos não-nil são alterados.
// CNPJ com string vazia remove o CNPJ; Instagram com string vazia remove o handle.
type UpdateLeadInput struct {
	CompanyName *string `json:"company_name,omitempty"`
	CNPJ        *string `json:"cnpj,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type RecordContactAttemptInput struct {
	Channel         string     `json:"channel"`
	Result          string     `json:"result"`
	Notes           string     `json:"notes,omitempty"`
	AttemptDate     *time.Time `json:"attempt_date,omitempty"`
	NextFollowUp    *time.Time `json:"next_follow_up,omitempty"`
	DurationSeconds int        `json:"duration_seconds,omitempty"`
}

type ContactAttemptOutput struct {
	ID              string     `json:"id"`
	Channel         string     `json:"channel"`
	Result          string     `json:"result"`
	Notes           string     `json:"notes,omitempty"`
	AttemptDate     time.Time  `json:"attempt_date"`
	NextFollowUp    *time.Time `json:"next_follow_up,omitempty"`
	DurationSeconds int        `json:"duration_seconds,omitempty"`
	WasSuccessful   bool       `json:"was_successful"`
}

type LeadOutput struct {
	ID                 string                 `json:"id"`
	CompanyName        string                 `json:"company_name"`
	CNPJ               string                 `json:"cnpj,omitempty"`
	Email              string                 `json:"email,omitempty"`
	Phone              string                 `json:"phone,omitempty"`
	Website            string                 `json:"website,omitempty"`
	SocialMedia        map[string]string      `json:"social_media,omitempty"`
	Status             string                 `json:"status"`
	Source             string                 `json:"source"`
	QualificationScore int                    `json:"qualification_score"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
	ContactAttempts    []ContactAttemptOutput `json:"contact_attempts"`
}

type ListLeadsOutput struct {
	Leads []*LeadOutput `json:"leads"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}

func NewLeadOutput(lead *entity.Lead) *LeadOutput {
	out := &LeadOutput{
		ID:                 lead.ID().String(),
		CompanyName:        lead.Name().Value(),
		Status:             lead.Status().String(),
		Source:             lead.Source().String(),
		QualificationScore: lead.QualificationScore(),
		CreatedAt:          lead.CreatedAt(),
		UpdatedAt:          lead.UpdatedAt(),
		ContactAttempts:    []ContactAttemptOutput{},
	}

	if cnpj, ok := lead.CNPJ(); ok {
		out.CNPJ = cnpj.Format()
	}

	info := lead.ContactInfo()
	if email, ok := info.Email(); ok {
		out.Email = email.Value()
	}
	if phone, ok := info.Phone(); ok {
		out.Phone = phone.InternationalFormat()
	}
	out.Website = info.Website()
	if info.HasSocialMedia() {
		out.SocialMedia = make(map[string]string)
		for t, handle := range info.SocialMedia() {
			out.SocialMedia[string(t)] = handle
		}
	}

	for _, attempt := range lead.ContactAttempts() {
		out.ContactAttempts = append(out.ContactAttempts, newContactAttemptOutput(attempt))
	}
	return out
}

func newContactAttemptOutput(attempt *entity.ContactAttempt) ContactAttemptOutput {
	out := ContactAttemptOutput{
		ID:              attempt.ID().String(),
		Channel:         attempt.Channel().String(),
		Result:          attempt.Result().String(),
		Notes:           attempt.Notes(),
		AttemptDate:     attempt.AttemptDate(),
		DurationSeconds: int(attempt.Duration().Seconds()),
		WasSuccessful:   attempt.WasSuccessful(),
	}
	if followUp, ok := attempt.NextFollowUp(); ok {
		out.NextFollowUp = &followUp
	}
	return out
}

// buildContactInfo monta o ContactInfo do domínio a partir de primitivas externas.
func buildContactInfo(emailRaw, phoneRaw, website string, socialMedia map[string]string) (entity.ContactInfo, error) {
	var email *entity.Email
	if strings.TrimSpace(emailRaw) != "" {
		parsed, err := entity.NewEmail(emailRaw)
		if err != nil {
			return entity.ContactInfo{}, err
		}
		email = &parsed
	}

	var phone *entity.Phone
	if strings.TrimSpace(phoneRaw) != "" {
		parsed, err := entity.ParseBrazilianPhone(phoneRaw)
		if err != nil {
			return entity.ContactInfo{}, err
		}
		phone = &parsed
	}

	var media map[entity.SocialMediaType]string
	if len(socialMedia) > 0 {
		media = make(map[entity.SocialMediaType]string, len(socialMedia))
		for name, handle := range socialMedia {
			t, err := entity.ParseSocialMediaType(strings.ToUpper(strings.TrimSpace(name)))
			if err != nil {
				return entity.ContactInfo{}, err
			}
			media[t] = handle
		}
	}

	return entity.NewContactInfo(email, phone, website, media)
}
