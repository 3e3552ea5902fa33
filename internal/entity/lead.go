package entity

import (
	"fmt"
	"strings"
	"time"
)

// Lead representa uma empresa prospectada no processo de vendas. É a raiz do
// agregado: concentra identidade, status no funil e o histórico de tentativas
// de contato, e só é mutado pelas operações nomeadas abaixo. Cada operação de
// mutação valida as invariantes antes de aplicar qualquer mudança e retorna os
// eventos de domínio produzidos.
type Lead struct {
	id          LeadID
	name        CompanyName
	cnpj        *CNPJ
	contactInfo ContactInfo
	status      LeadStatus
	source      LeadSource
	createdAt   time.Time
	updatedAt   time.Time
	attempts    []*ContactAttempt
}

// NewLead cria um Lead com id novo e status NEW. cnpj pode ser nil.
func NewLead(name CompanyName, cnpj *CNPJ, contactInfo ContactInfo, source LeadSource, now time.Time) (*Lead, []DomainEvent, error) {
	if _, err := ParseLeadSource(string(source)); err != nil {
		return nil, nil, err
	}
	if err := checkSourceContactRequirement(source, contactInfo); err != nil {
		return nil, nil, err
	}

	lead := &Lead{
		id:          NewLeadID(),
		name:        name,
		contactInfo: contactInfo,
		status:      StatusNew,
		source:      source,
		createdAt:   now,
		updatedAt:   now,
	}
	if cnpj != nil {
		c := *cnpj
		lead.cnpj = &c
	}

	created := LeadCreatedEvent{
		EventMeta:   newEventMeta(EventLeadCreated, lead.id, now),
		LeadID:      lead.id,
		CompanyName: name,
		CNPJ:        lead.cnpj,
		ContactInfo: contactInfo,
		Source:      source,
		CreatedAt:   now,
	}
	return lead, []DomainEvent{created}, nil
}

// RestoreLead reidrata um Lead persistido, sem emitir eventos.
func RestoreLead(
	id LeadID,
	name CompanyName,
	cnpj *CNPJ,
	contactInfo ContactInfo,
	status LeadStatus,
	source LeadSource,
	createdAt, updatedAt time.Time,
	attempts []*ContactAttempt,
) (*Lead, error) {
	if id.IsZero() {
		return nil, &ValidationError{"id", "cannot be empty"}
	}
	if _, err := ParseLeadStatus(string(status)); err != nil {
		return nil, err
	}
	if _, err := ParseLeadSource(string(source)); err != nil {
		return nil, err
	}
	if updatedAt.Before(createdAt) {
		return nil, &ValidationError{"updated_at", "cannot be before created_at"}
	}
	for _, attempt := range attempts {
		if !attempt.LeadID().Equals(id) {
			return nil, &OwnershipMismatchError{LeadID: id, AttemptLeadID: attempt.LeadID()}
		}
	}

	lead := &Lead{
		id:          id,
		name:        name,
		contactInfo: contactInfo,
		status:      status,
		source:      source,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		attempts:    append([]*ContactAttempt(nil), attempts...),
	}
	if cnpj != nil {
		c := *cnpj
		lead.cnpj = &c
	}
	return lead, nil
}

func checkSourceContactRequirement(source LeadSource, info ContactInfo) error {
	switch source {
	case SourceWebsite:
		if !info.HasEmail() {
			return &ValidationError{"contact_info", "leads from website must have an email"}
		}
	case SourceColdCall:
		if !info.HasPhone() {
			return &ValidationError{"contact_info", "leads from cold call must have a phone"}
		}
	}
	return nil
}

func (l *Lead) ID() LeadID               { return l.id }
func (l *Lead) Name() CompanyName        { return l.name }
func (l *Lead) ContactInfo() ContactInfo { return l.contactInfo }
func (l *Lead) Status() LeadStatus       { return l.status }
func (l *Lead) Source() LeadSource       { return l.source }
func (l *Lead) CreatedAt() time.Time     { return l.createdAt }
func (l *Lead) UpdatedAt() time.Time     { return l.updatedAt }

func (l *Lead) CNPJ() (CNPJ, bool) {
	if l.cnpj == nil {
		return CNPJ{}, false
	}
	return *l.cnpj, true
}

// ContactAttempts retorna o histórico de tentativas, em ordem de inserção.
func (l *Lead) ContactAttempts() []*ContactAttempt {
	return append([]*ContactAttempt(nil), l.attempts...)
}

// UpdateStatus aplica uma transição do funil. Em transição ilegal nada muda.
func (l *Lead) UpdateStatus(newStatus LeadStatus, now time.Time) ([]DomainEvent, error) {
	if _, err := ParseLeadStatus(string(newStatus)); err != nil {
		return nil, err
	}
	if !l.status.CanTransitionTo(newStatus) {
		return nil, &InvalidTransitionError{From: l.status, To: newStatus}
	}

	previous := l.status
	l.status = newStatus
	l.updatedAt = now

	changed := LeadStatusChangedEvent{
		EventMeta:      newEventMeta(EventLeadStatusChanged, l.id, now),
		LeadID:         l.id,
		PreviousStatus: previous,
		NewStatus:      newStatus,
		Progression:    previous.IsProgressionTo(newStatus),
	}
	return []DomainEvent{changed}, nil
}

// UpdateContactInfo substitui as informações de contato por inteiro,
// preservando a exigência de contato da origem.
func (l *Lead) UpdateContactInfo(newInfo ContactInfo, now time.Time) ([]DomainEvent, error) {
	if err := checkSourceContactRequirement(l.source, newInfo); err != nil {
		return nil, err
	}

	previous := l.contactInfo
	l.contactInfo = newInfo
	l.updatedAt = now

	updated := LeadContactInfoUpdatedEvent{
		EventMeta:           newEventMeta(EventLeadContactInfoUpdated, l.id, now),
		LeadID:              l.id,
		PreviousContactInfo: previous,
		NewContactInfo:      newInfo,
	}
	return []DomainEvent{updated}, nil
}

// UpdateCNPJ substitui o CNPJ. nil remove o CNPJ.
func (l *Lead) UpdateCNPJ(newCNPJ *CNPJ, now time.Time) ([]DomainEvent, error) {
	previous := l.cnpj
	if newCNPJ != nil {
		c := *newCNPJ
		l.cnpj = &c
	} else {
		l.cnpj = nil
	}
	l.updatedAt = now

	updated := LeadCNPJUpdatedEvent{
		EventMeta:    newEventMeta(EventLeadCNPJUpdated, l.id, now),
		LeadID:       l.id,
		PreviousCNPJ: previous,
		NewCNPJ:      l.cnpj,
	}
	return []DomainEvent{updated}, nil
}

// UpdateCompanyName substitui o nome da empresa.
func (l *Lead) UpdateCompanyName(newName CompanyName, now time.Time) ([]DomainEvent, error) {
	previous := l.name
	l.name = newName
	l.updatedAt = now

	updated := LeadCompanyNameUpdatedEvent{
		EventMeta:    newEventMeta(EventLeadCompanyNameUpdated, l.id, now),
		LeadID:       l.id,
		PreviousName: previous,
		NewName:      newName,
	}
	return []DomainEvent{updated}, nil
}

// AddContactAttempt anexa uma tentativa ao histórico. Se o Lead está em NEW e
// a tentativa teve resultado positivo, avança automaticamente para CONTACTED.
func (l *Lead) AddContactAttempt(attempt *ContactAttempt, now time.Time) ([]DomainEvent, error) {
	if !attempt.LeadID().Equals(l.id) {
		return nil, &OwnershipMismatchError{LeadID: l.id, AttemptLeadID: attempt.LeadID()}
	}

	l.attempts = append(l.attempts, attempt)
	l.updatedAt = now

	events := []DomainEvent{ContactAttemptAddedEvent{
		EventMeta: newEventMeta(EventContactAttemptAdded, l.id, now),
		LeadID:    l.id,
		AttemptID: attempt.ID(),
		Channel:   attempt.Channel(),
		Result:    attempt.Result(),
	}}

	if l.status == StatusNew && attempt.WasSuccessful() {
		statusEvents, err := l.UpdateStatus(StatusContacted, now)
		if err != nil {
			return nil, err
		}
		events = append(events, statusEvents...)
	}
	return events, nil
}

// LastContactAttempt retorna a tentativa mais recente por data, ou nil.
func (l *Lead) LastContactAttempt() *ContactAttempt {
	var last *ContactAttempt
	for _, attempt := range l.attempts {
		if last == nil || attempt.AttemptDate().After(last.AttemptDate()) {
			last = attempt
		}
	}
	return last
}

// PendingFollowUps retorna as tentativas com follow-up pendente.
func (l *Lead) PendingFollowUps() []*ContactAttempt {
	var pending []*ContactAttempt
	for _, attempt := range l.attempts {
		if attempt.RequiresFollowUp() {
			pending = append(pending, attempt)
		}
	}
	return pending
}

// OverdueFollowUps retorna as tentativas com follow-up vencido.
func (l *Lead) OverdueFollowUps(now time.Time) []*ContactAttempt {
	var overdue []*ContactAttempt
	for _, attempt := range l.attempts {
		if attempt.IsFollowUpOverdue(now) {
			overdue = append(overdue, attempt)
		}
	}
	return overdue
}

// IsQualified indica Lead qualificado ou além no funil.
func (l *Lead) IsQualified() bool {
	return l.status == StatusQualified ||
		l.status == StatusProposalSent ||
		l.status == StatusNegotiating
}

// IsActive indica Lead nem convertido nem perdido.
func (l *Lead) IsActive() bool {
	return l.status.IsActive()
}

func (l *Lead) hasSuccessfulContacts() bool {
	for _, attempt := range l.attempts {
		if attempt.WasSuccessful() {
			return true
		}
	}
	return false
}

// CanBeConverted verifica as precondições de conversão: transição legal para
// CONVERTED, ao menos um contato bem-sucedido e informações de contato completas.
func (l *Lead) CanBeConverted() bool {
	return l.status.CanTransitionTo(StatusConverted) &&
		l.hasSuccessfulContacts() &&
		l.contactInfo.IsComplete()
}

// ConvertToClient converte o Lead em cliente.
func (l *Lead) ConvertToClient(now time.Time) ([]DomainEvent, error) {
	if !l.status.CanTransitionTo(StatusConverted) {
		return nil, &InvalidConversionError{Status: l.status,
			Reason: "status does not allow conversion"}
	}
	if !l.hasSuccessfulContacts() {
		return nil, &InvalidConversionError{Status: l.status,
			Reason: "no successful contact attempt recorded"}
	}
	if !l.contactInfo.IsComplete() {
		return nil, &InvalidConversionError{Status: l.status,
			Reason: "contact info is incomplete"}
	}

	events, err := l.UpdateStatus(StatusConverted, now)
	if err != nil {
		return nil, err
	}

	converted := LeadConvertedEvent{
		EventMeta:   newEventMeta(EventLeadConverted, l.id, now),
		LeadID:      l.id,
		CompanyName: l.name,
		CNPJ:        l.cnpj,
		ContactInfo: l.contactInfo,
	}
	return append(events, converted), nil
}

// MarkAsLost marca o Lead como perdido, com motivo opcional.
func (l *Lead) MarkAsLost(reason string, now time.Time) ([]DomainEvent, error) {
	events, err := l.UpdateStatus(StatusLost, now)
	if err != nil {
		return nil, err
	}

	lost := LeadLostEvent{
		EventMeta: newEventMeta(EventLeadLost, l.id, now),
		LeadID:    l.id,
		Reason:    reason,
	}
	return append(events, lost), nil
}

// QualificationScore calcula a pontuação de qualificação (0-100):
// prioridade da origem x10, metade da completude do contato, 15 por tentativa
// bem-sucedida, pontuação de cada resultado, +20 com CNPJ, +15 com email
// corporativo.
func (l *Lead) QualificationScore() int {
	score := l.source.Priority() * 10
	score += l.contactInfo.CompletenessScore() / 2

	for _, attempt := range l.attempts {
		if attempt.WasSuccessful() {
			score += 15
		}
		score += attempt.Result().QualificationScore()
	}

	if l.cnpj != nil {
		score += 20
	}
	if l.contactInfo.HasCorporateEmail() {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Summary retorna um resumo do Lead para relatórios.
func (l *Lead) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", l.name, l.status)
	fmt.Fprintf(&b, " | Fonte: %s", l.source.DisplayName())
	fmt.Fprintf(&b, " | Tentativas: %d", len(l.attempts))
	if last := l.LastContactAttempt(); last != nil {
		fmt.Fprintf(&b, " | Último contato: %s", last.AttemptDate().Format("2006-01-02"))
	}
	return b.String()
}
