package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func newAttempt(t *testing.T, result ContactResult, followUp *time.Time) *ContactAttempt {
	t.Helper()
	attempt, err := NewContactAttempt(
		NewLeadID(),
		testNow.Add(-time.Hour),
		ChannelPhone,
		result,
		"primeira ligação",
		followUp,
		5*time.Minute,
		testNow,
	)
	require.NoError(t, err)
	return attempt
}

func TestNewContactAttemptValidations(t *testing.T) {
	leadID := NewLeadID()

	_, err := NewContactAttempt(leadID, testNow.Add(time.Hour), ChannelPhone,
		ResultInterested, "", nil, 0, testNow)
	assert.Error(t, err, "tentativa no futuro")

	_, err = NewContactAttempt(leadID, testNow, ChannelPhone,
		ResultInterested, strings.Repeat("a", 1001), nil, 0, testNow)
	assert.Error(t, err, "notas longas demais")

	yesterday := testNow.AddDate(0, 0, -1)
	_, err = NewContactAttempt(leadID, testNow, ChannelPhone,
		ResultInterested, "", &yesterday, 0, testNow)
	assert.Error(t, err, "follow-up no passado")

	_, err = NewContactAttempt(leadID, testNow, ChannelPhone,
		ResultInterested, "", nil, -time.Minute, testNow)
	assert.Error(t, err, "duração negativa")

	// Follow-up hoje é válido.
	today := testNow.Add(2 * time.Hour)
	_, err = NewContactAttempt(leadID, testNow, ChannelPhone,
		ResultInterested, "", &today, 0, testNow)
	assert.NoError(t, err)
}

func TestRestoreContactAttemptAcceptsPastFollowUp(t *testing.T) {
	// Reidratação não revalida contra o relógio: follow-up vencido é
	// estado persistido legítimo.
	past := testNow.AddDate(0, 0, -5)
	attempt, err := RestoreContactAttempt(NewContactAttemptID(), NewLeadID(),
		testNow.AddDate(0, 0, -10), ChannelEmail, ResultNoAnswer, "", &past, 0)
	require.NoError(t, err)
	assert.True(t, attempt.IsFollowUpOverdue(testNow))
}

func TestScheduleFollowUp(t *testing.T) {
	attempt := newAttempt(t, ResultInterested, nil)

	tomorrow := testNow.AddDate(0, 0, 1)
	require.NoError(t, attempt.ScheduleFollowUp(tomorrow, testNow))
	assert.True(t, attempt.RequiresFollowUp())

	yesterday := testNow.AddDate(0, 0, -1)
	assert.Error(t, attempt.ScheduleFollowUp(yesterday, testNow))

	// Resultado terminal não aceita follow-up.
	done := newAttempt(t, ResultNotInterested, nil)
	assert.Error(t, done.ScheduleFollowUp(tomorrow, testNow))
}

func TestUpdateResultClearsObsoleteFollowUp(t *testing.T) {
	followUp := testNow.AddDate(0, 0, 2)
	attempt := newAttempt(t, ResultInterested, &followUp)
	require.True(t, attempt.RequiresFollowUp())

	require.NoError(t, attempt.UpdateResult(ResultNotInterested, ""))
	assert.Equal(t, ResultNotInterested, attempt.Result())
	assert.False(t, attempt.RequiresFollowUp())
	_, has := attempt.NextFollowUp()
	assert.False(t, has)

	// Notas em branco preservam as anteriores.
	assert.Equal(t, "primeira ligação", attempt.Notes())
	require.NoError(t, attempt.UpdateResult(ResultConverted, "fechou contrato"))
	assert.Equal(t, "fechou contrato", attempt.Notes())
}

func TestFollowUpDateQueries(t *testing.T) {
	inThreeDays := testNow.AddDate(0, 0, 3)
	attempt := newAttempt(t, ResultCallbackRequested, &inThreeDays)

	days, ok := attempt.DaysUntilFollowUp(testNow)
	assert.True(t, ok)
	assert.Equal(t, 3, days)
	assert.False(t, attempt.IsFollowUpOverdue(testNow))
	assert.False(t, attempt.IsFollowUpToday(testNow))

	// Mesma data em horário diferente conta como hoje.
	laterToday := testNow.Add(4 * time.Hour)
	today := newAttempt(t, ResultCallbackRequested, &laterToday)
	assert.True(t, today.IsFollowUpToday(testNow))

	noFollowUp := newAttempt(t, ResultConverted, nil)
	_, ok = noFollowUp.DaysUntilFollowUp(testNow)
	assert.False(t, ok)
}

func TestContactAttemptQueries(t *testing.T) {
	attempt := newAttempt(t, ResultInterested, nil)
	assert.True(t, attempt.WasSuccessful())
	assert.False(t, attempt.WasLong())
	assert.True(t, attempt.IsRecent(testNow))

	longCall, err := NewContactAttempt(NewLeadID(), testNow.AddDate(0, 0, -2),
		ChannelPhone, ResultNoAnswer, "", nil, 15*time.Minute, testNow)
	require.NoError(t, err)
	assert.False(t, longCall.WasSuccessful())
	assert.True(t, longCall.WasLong())
	assert.False(t, longCall.IsRecent(testNow))
}

func TestContactAttemptSummary(t *testing.T) {
	followUp := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	attempt := newAttempt(t, ResultMeetingScheduled, &followUp)

	summary := attempt.Summary()
	assert.Contains(t, summary, "Phone")
	assert.Contains(t, summary, "Meeting Scheduled")
	assert.Contains(t, summary, "5min")
	assert.Contains(t, summary, "2025-06-12")
}
