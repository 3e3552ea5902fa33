package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de evento publicados pelo agregado Lead.
const (
	EventLeadCreated            = "lead.created"
	EventLeadStatusChanged      = "lead.status_changed"
	EventLeadContactInfoUpdated = "lead.contact_info_updated"
	EventLeadCNPJUpdated        = "lead.cnpj_updated"
	EventLeadCompanyNameUpdated = "lead.company_name_updated"
	EventContactAttemptAdded    = "lead.contact_attempt_added"
	EventLeadConverted          = "lead.converted"
	EventLeadLost               = "lead.lost"
)

// DomainEvent é um registro imutável de uma mudança significativa no domínio.
// Eventos são produzidos pelas operações do agregado e entregues a um
// colaborador externo; o core só garante a produção.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	OccurredOn() time.Time
}

// EventMeta carrega os metadados comuns a todos os eventos.
type EventMeta struct {
	ID            string    `json:"event_id"`
	Type          string    `json:"event_type"`
	Aggregate     string    `json:"aggregate_id"`
	OccurredAt    time.Time `json:"occurred_at"`
	ActorID       string    `json:"actor_id,omitempty"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	CausationID   string    `json:"causation_id,omitempty"`
}

func (m EventMeta) EventID() string       { return m.ID }
func (m EventMeta) EventType() string     { return m.Type }
func (m EventMeta) AggregateID() string   { return m.Aggregate }
func (m EventMeta) OccurredOn() time.Time { return m.OccurredAt }

func newEventMeta(eventType string, aggregateID LeadID, now time.Time) EventMeta {
	return EventMeta{
		ID:         uuid.New().String(),
		Type:       eventType,
		Aggregate:  aggregateID.String(),
		OccurredAt: now,
	}
}

type LeadCreatedEvent struct {
	EventMeta
	LeadID      LeadID      `json:"lead_id"`
	CompanyName CompanyName `json:"company_name"`
	CNPJ        *CNPJ       `json:"cnpj,omitempty"`
	ContactInfo ContactInfo `json:"contact_info"`
	Source      LeadSource  `json:"source"`
	CreatedAt   time.Time   `json:"created_at"`
}

type LeadStatusChangedEvent struct {
	EventMeta
	LeadID         LeadID     `json:"lead_id"`
	PreviousStatus LeadStatus `json:"previous_status"`
	NewStatus      LeadStatus `json:"new_status"`
	Progression    bool       `json:"progression"`
}

type LeadContactInfoUpdatedEvent struct {
	EventMeta
	LeadID              LeadID      `json:"lead_id"`
	PreviousContactInfo ContactInfo `json:"previous_contact_info"`
	NewContactInfo      ContactInfo `json:"new_contact_info"`
}

type LeadCNPJUpdatedEvent struct {
	EventMeta
	LeadID       LeadID `json:"lead_id"`
	PreviousCNPJ *CNPJ  `json:"previous_cnpj,omitempty"`
	NewCNPJ      *CNPJ  `json:"new_cnpj,omitempty"`
}

type LeadCompanyNameUpdatedEvent struct {
	EventMeta
	LeadID       LeadID      `json:"lead_id"`
	PreviousName CompanyName `json:"previous_name"`
	NewName      CompanyName `json:"new_name"`
}

type ContactAttemptAddedEvent struct {
	EventMeta
	LeadID    LeadID           `json:"lead_id"`
	AttemptID ContactAttemptID `json:"attempt_id"`
	Channel   ContactChannel   `json:"channel"`
	Result    ContactResult    `json:"result"`
}

type LeadConvertedEvent struct {
	EventMeta
	LeadID      LeadID      `json:"lead_id"`
	CompanyName CompanyName `json:"company_name"`
	CNPJ        *CNPJ       `json:"cnpj,omitempty"`
	ContactInfo ContactInfo `json:"contact_info"`
}

type LeadLostEvent struct {
	EventMeta
	LeadID LeadID `json:"lead_id"`
	Reason string `json:"reason,omitempty"`
}
