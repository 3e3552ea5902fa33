package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeInfo(t *testing.T) ContactInfo {
	t.Helper()
	info, err := NewContactInfo(mustEmail(t, "vendas@noivas.com.br"),
		mustPhone(t, "11999998888"), "", nil)
	require.NoError(t, err)
	return info
}

func newTestLead(t *testing.T, source LeadSource, info ContactInfo) *Lead {
	t.Helper()
	name, err := NewCompanyName("Atelier da Noiva")
	require.NoError(t, err)
	lead, events, err := NewLead(name, nil, info, source, testNow)
	require.NoError(t, err)
	require.Len(t, events, 1)
	return lead
}

func attemptFor(t *testing.T, lead *Lead, result ContactResult) *ContactAttempt {
	t.Helper()
	attempt, err := NewContactAttempt(lead.ID(), testNow.Add(-time.Minute),
		ChannelPhone, result, "", nil, time.Minute, testNow)
	require.NoError(t, err)
	return attempt
}

func eventTypes(events []DomainEvent) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	return types
}

func TestNewLeadEmitsCreatedEvent(t *testing.T) {
	name, _ := NewCompanyName("Atelier da Noiva")
	info := completeInfo(t)

	lead, events, err := NewLead(name, nil, info, SourceReferral, testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusNew, lead.Status())
	assert.False(t, lead.ID().IsZero())
	assert.Equal(t, testNow, lead.CreatedAt())
	require.Len(t, events, 1)
	assert.Equal(t, EventLeadCreated, events[0].EventType())
	assert.Equal(t, lead.ID().String(), events[0].AggregateID())
}

func TestNewLeadSourceContactRequirements(t *testing.T) {
	name, _ := NewCompanyName("Atelier da Noiva")

	// WEBSITE exige email.
	phoneOnly, err := NewContactInfo(nil, mustPhone(t, "11999998888"), "", nil)
	require.NoError(t, err)
	_, _, err = NewLead(name, nil, phoneOnly, SourceWebsite, testNow)
	assert.Error(t, err)

	// COLD_CALL exige telefone.
	emailOnly, err := NewContactInfo(mustEmail(t, "a@b.com"), nil, "", nil)
	require.NoError(t, err)
	_, _, err = NewLead(name, nil, emailOnly, SourceColdCall, testNow)
	assert.Error(t, err)

	// REFERRAL aceita qualquer contato.
	_, _, err = NewLead(name, nil, emailOnly, SourceReferral, testNow)
	assert.NoError(t, err)
}

func TestUpdateStatusIllegalTransitionChangesNothing(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))
	before := lead.UpdatedAt()

	later := testNow.Add(time.Hour)
	events, err := lead.UpdateStatus(StatusQualified, later)

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, StatusNew, transitionErr.From)
	assert.Equal(t, StatusQualified, transitionErr.To)
	assert.Nil(t, events)
	assert.Equal(t, StatusNew, lead.Status())
	assert.Equal(t, before, lead.UpdatedAt(), "transição ilegal não toca updatedAt")
}

func TestUpdateStatusEmitsProgressionEvent(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))

	later := testNow.Add(time.Hour)
	events, err := lead.UpdateStatus(StatusContacted, later)
	require.NoError(t, err)
	require.Len(t, events, 1)

	changed, ok := events[0].(LeadStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, StatusNew, changed.PreviousStatus)
	assert.Equal(t, StatusContacted, changed.NewStatus)
	assert.True(t, changed.Progression)
	assert.Equal(t, later, lead.UpdatedAt())
}

func TestAddContactAttemptAutoAdvancesFromNew(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))

	events, err := lead.AddContactAttempt(attemptFor(t, lead, ResultInterested), testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusContacted, lead.Status())
	assert.Equal(t, []string{EventContactAttemptAdded, EventLeadStatusChanged}, eventTypes(events))

	// Nova tentativa positiva não regride nem re-transiciona.
	events, err = lead.AddContactAttempt(attemptFor(t, lead, ResultMeetingScheduled), testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusContacted, lead.Status())
	assert.Equal(t, []string{EventContactAttemptAdded}, eventTypes(events))
}

func TestAddContactAttemptUnsuccessfulKeepsStatusNew(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))

	events, err := lead.AddContactAttempt(attemptFor(t, lead, ResultNoAnswer), testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, lead.Status())
	assert.Equal(t, []string{EventContactAttemptAdded}, eventTypes(events))
}

func TestAddContactAttemptRejectsForeignAttempt(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))
	other := newTestLead(t, SourceReferral, completeInfo(t))

	_, err := lead.AddContactAttempt(attemptFor(t, other, ResultInterested), testNow)

	var ownershipErr *OwnershipMismatchError
	assert.ErrorAs(t, err, &ownershipErr)
	assert.Empty(t, lead.ContactAttempts())
}

func advanceTo(t *testing.T, lead *Lead, target LeadStatus) {
	t.Helper()
	for lead.Status() != target {
		next, ok := lead.Status().NextStatus()
		require.True(t, ok)
		_, err := lead.UpdateStatus(next, testNow)
		require.NoError(t, err)
	}
}

func TestConvertToClient(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))
	_, err := lead.AddContactAttempt(attemptFor(t, lead, ResultInterested), testNow)
	require.NoError(t, err)
	advanceTo(t, lead, StatusProposalSent)
	require.True(t, lead.CanBeConverted())

	events, err := lead.ConvertToClient(testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusConverted, lead.Status())
	assert.Equal(t, []string{EventLeadStatusChanged, EventLeadConverted}, eventTypes(events))
	assert.False(t, lead.IsActive())

	// Convertido é terminal: mais nenhuma transição.
	_, err = lead.UpdateStatus(StatusLost, testNow)
	assert.Error(t, err)
}

func TestConvertToClientPreconditions(t *testing.T) {
	// Status não permite.
	fresh := newTestLead(t, SourceReferral, completeInfo(t))
	_, err := fresh.ConvertToClient(testNow)
	var conversionErr *InvalidConversionError
	require.ErrorAs(t, err, &conversionErr)
	assert.Contains(t, conversionErr.Reason, "status")

	// Sem contato bem-sucedido.
	noContact := newTestLead(t, SourceReferral, completeInfo(t))
	advanceTo(t, noContact, StatusProposalSent)
	_, err = noContact.ConvertToClient(testNow)
	require.ErrorAs(t, err, &conversionErr)
	assert.Contains(t, conversionErr.Reason, "successful contact")

	// Contato incompleto (só email).
	emailOnly, err := NewContactInfo(mustEmail(t, "a@b.com"), nil, "", nil)
	require.NoError(t, err)
	incomplete := newTestLead(t, SourceReferral, emailOnly)
	_, err = incomplete.AddContactAttempt(attemptFor(t, incomplete, ResultInterested), testNow)
	require.NoError(t, err)
	advanceTo(t, incomplete, StatusProposalSent)
	_, err = incomplete.ConvertToClient(testNow)
	require.ErrorAs(t, err, &conversionErr)
	assert.Contains(t, conversionErr.Reason, "incomplete")
	assert.Equal(t, StatusProposalSent, incomplete.Status(), "falha não muda o status")
}

func TestMarkAsLost(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))

	events, err := lead.MarkAsLost("sem orçamento", testNow)
	require.NoError(t, err)
	assert.Equal(t, StatusLost, lead.Status())
	assert.Equal(t, []string{EventLeadStatusChanged, EventLeadLost}, eventTypes(events))

	lost, ok := events[1].(LeadLostEvent)
	require.True(t, ok)
	assert.Equal(t, "sem orçamento", lost.Reason)

	_, err = lead.MarkAsLost("de novo", testNow)
	assert.Error(t, err, "LOST é terminal")
}

func TestQualificationScore(t *testing.T) {
	// REFERRAL (5x10=50) + completude 70/2=35 + CNPJ 20 + corporativo 15 > 100,
	// então satura no teto.
	name, _ := NewCompanyName("Atelier da Noiva")
	cnpj, err := NewCNPJ("11222333000181")
	require.NoError(t, err)
	rich, _, err := NewLead(name, &cnpj, completeInfo(t), SourceReferral, testNow)
	require.NoError(t, err)
	assert.Equal(t, 100, rich.QualificationScore())

	// COLD_CALL (1x10) + telefone celular (30+5)/2=17.
	phoneOnly, err := NewContactInfo(nil, mustPhone(t, "11999998888"), "", nil)
	require.NoError(t, err)
	poor := newTestLead(t, SourceColdCall, phoneOnly)
	assert.Equal(t, 27, poor.QualificationScore())

	// Tentativa bem-sucedida soma 15 + pontos do resultado (INTERESTED=6).
	_, err = poor.AddContactAttempt(attemptFor(t, poor, ResultInterested), testNow)
	require.NoError(t, err)
	assert.Equal(t, 48, poor.QualificationScore())

	// Tentativa sem sucesso soma só os pontos do resultado (NO_ANSWER=2).
	_, err = poor.AddContactAttempt(attemptFor(t, poor, ResultNoAnswer), testNow)
	require.NoError(t, err)
	assert.Equal(t, 50, poor.QualificationScore())
}

func TestQualificationScoreMonotonicOnSuccessfulAttempts(t *testing.T) {
	lead := newTestLead(t, SourceColdCall, completeInfo(t))

	previous := lead.QualificationScore()
	for i := 0; i < 10; i++ {
		_, err := lead.AddContactAttempt(attemptFor(t, lead, ResultInterested), testNow)
		require.NoError(t, err)

		score := lead.QualificationScore()
		assert.GreaterOrEqual(t, score, previous)
		assert.LessOrEqual(t, score, 100)
		previous = score
	}
	assert.Equal(t, 100, previous)
}

func TestFollowUpQueries(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))

	followUp := testNow.AddDate(0, 0, 2)
	withFollowUp, err := NewContactAttempt(lead.ID(), testNow, ChannelPhone,
		ResultCallbackRequested, "", &followUp, 0, testNow)
	require.NoError(t, err)
	_, err = lead.AddContactAttempt(withFollowUp, testNow)
	require.NoError(t, err)

	overduePast := testNow.AddDate(0, 0, -3)
	overdue, err := RestoreContactAttempt(NewContactAttemptID(), lead.ID(),
		testNow.AddDate(0, 0, -7), ChannelEmail, ResultNoAnswer, "", &overduePast, 0)
	require.NoError(t, err)
	_, err = lead.AddContactAttempt(overdue, testNow)
	require.NoError(t, err)

	assert.Len(t, lead.PendingFollowUps(), 2)
	require.Len(t, lead.OverdueFollowUps(testNow), 1)
	assert.Equal(t, overdue.ID(), lead.OverdueFollowUps(testNow)[0].ID())

	last := lead.LastContactAttempt()
	require.NotNil(t, last)
	assert.Equal(t, withFollowUp.ID(), last.ID())
}

func TestRestoreLeadValidations(t *testing.T) {
	name, _ := NewCompanyName("Atelier da Noiva")
	info := completeInfo(t)
	id := NewLeadID()

	_, err := RestoreLead(LeadID{}, name, nil, info, StatusNew, SourceReferral,
		testNow, testNow, nil)
	assert.Error(t, err, "id vazio")

	_, err = RestoreLead(id, name, nil, info, LeadStatus("BOGUS"), SourceReferral,
		testNow, testNow, nil)
	assert.Error(t, err, "status desconhecido")

	_, err = RestoreLead(id, name, nil, info, StatusNew, SourceReferral,
		testNow, testNow.Add(-time.Hour), nil)
	assert.Error(t, err, "updatedAt antes de createdAt")

	foreign, err := RestoreContactAttempt(NewContactAttemptID(), NewLeadID(),
		testNow, ChannelPhone, ResultNoAnswer, "", nil, 0)
	require.NoError(t, err)
	_, err = RestoreLead(id, name, nil, info, StatusNew, SourceReferral,
		testNow, testNow, []*ContactAttempt{foreign})
	assert.Error(t, err, "tentativa de outro lead")

	lead, err := RestoreLead(id, name, nil, info, StatusNegotiating, SourceReferral,
		testNow.Add(-48*time.Hour), testNow, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusNegotiating, lead.Status())
	assert.True(t, lead.IsQualified())
}

func TestLeadSummary(t *testing.T) {
	lead := newTestLead(t, SourceReferral, completeInfo(t))
	_, err := lead.AddContactAttempt(attemptFor(t, lead, ResultInterested), testNow)
	require.NoError(t, err)

	summary := lead.Summary()
	assert.Contains(t, summary, "Atelier da Noiva")
	assert.Contains(t, summary, "CONTACTED")
	assert.Contains(t, summary, "Tentativas: 1")
	assert.Contains(t, summary, "Referral")
}
