package database

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

// leadDocument é a forma serializada completa do agregado, usada pela camada
// de cache. O campo contact_info tem o mesmo formato JSON da coluna no banco.
type leadDocument struct {
	ID          string             `json:"id"`
	CompanyName string             `json:"company_name"`
	CNPJ        string             `json:"cnpj,omitempty"`
	ContactInfo entity.ContactInfo `json:"contact_info"`
	Status      string             `json:"status"`
	Source      string             `json:"source"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Attempts    []attemptDocument  `json:"contact_attempts"`
}

type attemptDocument struct {
	ID              string     `json:"id"`
	AttemptDate     time.Time  `json:"attempt_date"`
	Channel         string     `json:"channel"`
	Result          string     `json:"result"`
	Notes           string     `json:"notes,omitempty"`
	NextFollowUp    *time.Time `json:"next_follow_up,omitempty"`
	DurationSeconds int64      `json:"duration_seconds,omitempty"`
}

// MarshalLead serializa o agregado completo para JSON.
func MarshalLead(lead *entity.Lead) ([]byte, error) {
	doc := leadDocument{
		ID:          lead.ID().String(),
		CompanyName: lead.Name().Value(),
		ContactInfo: lead.ContactInfo(),
		Status:      lead.Status().String(),
		Source:      lead.Source().String(),
		CreatedAt:   lead.CreatedAt(),
		UpdatedAt:   lead.UpdatedAt(),
	}
	if cnpj, ok := lead.CNPJ(); ok {
		doc.CNPJ = cnpj.Digits()
	}
	for _, attempt := range lead.ContactAttempts() {
		doc.Attempts = append(doc.Attempts, attemptToDocument(attempt))
	}
	return json.Marshal(doc)
}

// UnmarshalLead reidrata o agregado a partir do JSON de MarshalLead.
func UnmarshalLead(data []byte) (*entity.Lead, error) {
	var doc leadDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal lead document")
	}
	return documentToLead(doc)
}

func attemptToDocument(attempt *entity.ContactAttempt) attemptDocument {
	doc := attemptDocument{
		ID:              attempt.ID().String(),
		AttemptDate:     attempt.AttemptDate(),
		Channel:         attempt.Channel().String(),
		Result:          attempt.Result().String(),
		Notes:           attempt.Notes(),
		DurationSeconds: int64(attempt.Duration().Seconds()),
	}
	if followUp, ok := attempt.NextFollowUp(); ok {
		f := followUp
		doc.NextFollowUp = &f
	}
	return doc
}

func documentToLead(doc leadDocument) (*entity.Lead, error) {
	id, err := entity.ParseLeadID(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "lead id")
	}
	name, err := entity.NewCompanyName(doc.CompanyName)
	if err != nil {
		return nil, errors.Wrap(err, "company name")
	}

	var cnpj *entity.CNPJ
	if doc.CNPJ != "" {
		parsed, err := entity.NewCNPJ(doc.CNPJ)
		if err != nil {
			return nil, errors.Wrap(err, "cnpj")
		}
		cnpj = &parsed
	}

	status, err := entity.ParseLeadStatus(doc.Status)
	if err != nil {
		return nil, errors.Wrap(err, "status")
	}
	source, err := entity.ParseLeadSource(doc.Source)
	if err != nil {
		return nil, errors.Wrap(err, "source")
	}

	attempts := make([]*entity.ContactAttempt, 0, len(doc.Attempts))
	for _, a := range doc.Attempts {
		attempt, err := documentToAttempt(id, a)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}

	return entity.RestoreLead(id, name, cnpj, doc.ContactInfo, status, source,
		doc.CreatedAt, doc.UpdatedAt, attempts)
}

func documentToAttempt(leadID entity.LeadID, doc attemptDocument) (*entity.ContactAttempt, error) {
	id, err := entity.ParseContactAttemptID(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "contact attempt id")
	}
	channel, err := entity.ParseContactChannel(doc.Channel)
	if err != nil {
		return nil, errors.Wrap(err, "channel")
	}
	result, err := entity.ParseContactResult(doc.Result)
	if err != nil {
		return nil, errors.Wrap(err, "result")
	}

	return entity.RestoreContactAttempt(
		id,
		leadID,
		doc.AttemptDate,
		channel,
		result,
		doc.Notes,
		doc.NextFollowUp,
		time.Duration(doc.DurationSeconds)*time.Second,
	)
}
