package entity

import (
	"fmt"
	"strings"
	"time"
)

const maxNotesLength = 1000

// ContactAttempt registra uma interação com um Lead: canal usado, resultado
// obtido e próximos passos. Pertence a exatamente um Lead.
type ContactAttempt struct {
	id           ContactAttemptID
	leadID       LeadID
	attemptDate  time.Time
	channel      ContactChannel
	result       ContactResult
	notes        string
	nextFollowUp *time.Time
	duration     time.Duration
}

// NewContactAttempt valida e constrói uma tentativa de contato. now é o
// relógio de referência; attemptDate não pode estar no futuro, followUp (se
// informado) não pode estar no passado e duration não pode ser negativa.
func NewContactAttempt(
	leadID LeadID,
	attemptDate time.Time,
	channel ContactChannel,
	result ContactResult,
	notes string,
	followUp *time.Time,
	duration time.Duration,
	now time.Time,
) (*ContactAttempt, error) {
	if leadID.IsZero() {
		return nil, &ValidationError{"lead_id", "cannot be empty"}
	}
	if attemptDate.After(now) {
		return nil, &ValidationError{"attempt_date", "cannot be in the future"}
	}
	if len([]rune(notes)) > maxNotesLength {
		return nil, &ValidationError{"notes",
			fmt.Sprintf("cannot have more than %d characters", maxNotesLength)}
	}
	if followUp != nil && startOfDay(*followUp).Before(startOfDay(now)) {
		return nil, &ValidationError{"next_follow_up", "cannot be in the past"}
	}
	if duration < 0 {
		return nil, &ValidationError{"duration", "cannot be negative"}
	}

	attempt := &ContactAttempt{
		id:          NewContactAttemptID(),
		leadID:      leadID,
		attemptDate: attemptDate,
		channel:     channel,
		result:      result,
		notes:       notes,
		duration:    duration,
	}
	if followUp != nil {
		f := *followUp
		attempt.nextFollowUp = &f
	}
	return attempt, nil
}

// RestoreContactAttempt reidrata uma tentativa persistida. Não revalida o
// follow-up contra o relógio: um follow-up no passado é um follow-up vencido,
// não um registro inválido.
func RestoreContactAttempt(
	id ContactAttemptID,
	leadID LeadID,
	attemptDate time.Time,
	channel ContactChannel,
	result ContactResult,
	notes string,
	followUp *time.Time,
	duration time.Duration,
) (*ContactAttempt, error) {
	if id.IsZero() {
		return nil, &ValidationError{"contact_attempt_id", "cannot be empty"}
	}
	if leadID.IsZero() {
		return nil, &ValidationError{"lead_id", "cannot be empty"}
	}
	if len([]rune(notes)) > maxNotesLength {
		return nil, &ValidationError{"notes",
			fmt.Sprintf("cannot have more than %d characters", maxNotesLength)}
	}
	if duration < 0 {
		return nil, &ValidationError{"duration", "cannot be negative"}
	}

	attempt := &ContactAttempt{
		id:          id,
		leadID:      leadID,
		attemptDate: attemptDate,
		channel:     channel,
		result:      result,
		notes:       notes,
		duration:    duration,
	}
	if followUp != nil {
		f := *followUp
		attempt.nextFollowUp = &f
	}
	return attempt, nil
}

func (a *ContactAttempt) ID() ContactAttemptID     { return a.id }
func (a *ContactAttempt) LeadID() LeadID           { return a.leadID }
func (a *ContactAttempt) AttemptDate() time.Time   { return a.attemptDate }
func (a *ContactAttempt) Channel() ContactChannel  { return a.channel }
func (a *ContactAttempt) Result() ContactResult    { return a.result }
func (a *ContactAttempt) Notes() string            { return a.notes }
func (a *ContactAttempt) Duration() time.Duration  { return a.duration }

func (a *ContactAttempt) NextFollowUp() (time.Time, bool) {
	if a.nextFollowUp == nil {
		return time.Time{}, false
	}
	return *a.nextFollowUp, true
}

// ScheduleFollowUp agenda um follow-up. A data deve ser hoje ou futura e o
// resultado atual deve pedir follow-up.
func (a *ContactAttempt) ScheduleFollowUp(date, now time.Time) error {
	if startOfDay(date).Before(startOfDay(now)) {
		return &ValidationError{"next_follow_up", "must be today or in the future"}
	}
	if !a.result.RequiresFollowUp() {
		return &ValidationError{"next_follow_up",
			fmt.Sprintf("result %s does not require follow-up", a.result)}
	}
	d := date
	a.nextFollowUp = &d
	return nil
}

// ClearFollowUp remove o agendamento de follow-up.
func (a *ContactAttempt) ClearFollowUp() {
	a.nextFollowUp = nil
}

// UpdateResult substitui o resultado. Se o novo resultado não pede follow-up,
// a data agendada é limpa.
func (a *ContactAttempt) UpdateResult(newResult ContactResult, newNotes string) error {
	if len([]rune(newNotes)) > maxNotesLength {
		return &ValidationError{"notes",
			fmt.Sprintf("cannot have more than %d characters", maxNotesLength)}
	}
	a.result = newResult
	if strings.TrimSpace(newNotes) != "" {
		a.notes = newNotes
	}
	if !newResult.RequiresFollowUp() {
		a.ClearFollowUp()
	}
	return nil
}

// UpdateNotes adiciona ou substitui as anotações.
func (a *ContactAttempt) UpdateNotes(newNotes string) error {
	if len([]rune(newNotes)) > maxNotesLength {
		return &ValidationError{"notes",
			fmt.Sprintf("cannot have more than %d characters", maxNotesLength)}
	}
	a.notes = newNotes
	return nil
}

// WasSuccessful indica se a tentativa teve resultado positivo.
func (a *ContactAttempt) WasSuccessful() bool {
	return a.result.IsPositive()
}

// RequiresFollowUp indica follow-up pendente (resultado pede e data agendada).
func (a *ContactAttempt) RequiresFollowUp() bool {
	return a.result.RequiresFollowUp() && a.nextFollowUp != nil
}

// IsFollowUpOverdue indica follow-up vencido em relação a now.
func (a *ContactAttempt) IsFollowUpOverdue(now time.Time) bool {
	if a.nextFollowUp == nil {
		return false
	}
	return startOfDay(*a.nextFollowUp).Before(startOfDay(now))
}

// IsFollowUpToday indica follow-up agendado para o dia de now.
func (a *ContactAttempt) IsFollowUpToday(now time.Time) bool {
	if a.nextFollowUp == nil {
		return false
	}
	return startOfDay(*a.nextFollowUp).Equal(startOfDay(now))
}

// DaysUntilFollowUp retorna quantos dias faltam para o follow-up.
func (a *ContactAttempt) DaysUntilFollowUp(now time.Time) (int, bool) {
	if a.nextFollowUp == nil {
		return 0, false
	}
	days := int(startOfDay(*a.nextFollowUp).Sub(startOfDay(now)).Hours() / 24)
	return days, true
}

// WasLong indica tentativa longa (mais de 10 minutos).
func (a *ContactAttempt) WasLong() bool {
	return a.duration > 10*time.Minute
}

// IsRecent indica tentativa nas últimas 24 horas.
func (a *ContactAttempt) IsRecent(now time.Time) bool {
	return a.attemptDate.After(now.Add(-24 * time.Hour))
}

// Summary retorna um resumo da tentativa para logs e relatórios.
func (a *ContactAttempt) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", a.channel.DisplayName(), a.result.DisplayName())
	if a.duration > 0 {
		fmt.Fprintf(&b, " (%dmin)", int(a.duration.Minutes()))
	}
	if a.nextFollowUp != nil {
		fmt.Fprintf(&b, " | Follow-up: %s", a.nextFollowUp.Format("2006-01-02"))
	}
	return b.String()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
