package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

var fixedNow = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Save(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id entity.LeadID) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context, page, size int) ([]*entity.Lead, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) DeleteByID(ctx context.Context, id entity.LeadID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...entity.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// makeLead monta um lead de teste com email corporativo e celular.
func makeLead(t *testing.T, source entity.LeadSource) *entity.Lead {
	t.Helper()

	email, err := entity.NewEmail("vendas@noivas.com.br")
	require.NoError(t, err)
	phone, err := entity.ParseBrazilianPhone("11999998888")
	require.NoError(t, err)
	info, err := entity.NewContactInfo(&email, &phone, "", nil)
	require.NoError(t, err)

	name, err := entity.NewCompanyName("Atelier da Noiva")
	require.NoError(t, err)

	lead, _, err := entity.NewLead(name, nil, info, source, fixedNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return lead
}

// advanceLead leva o lead até o status alvo pelo caminho feliz do funil.
func advanceLead(t *testing.T, lead *entity.Lead, target entity.LeadStatus) {
	t.Helper()
	for lead.Status() != target {
		next, ok := lead.Status().NextStatus()
		require.True(t, ok)
		_, err := lead.UpdateStatus(next, fixedNow.Add(-time.Hour))
		require.NoError(t, err)
	}
}

func addSuccessfulAttempt(t *testing.T, lead *entity.Lead) {
	t.Helper()
	attempt, err := entity.NewContactAttempt(lead.ID(), fixedNow.Add(-2*time.Hour),
		entity.ChannelPhone, entity.ResultInterested, "", nil, time.Minute, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	_, err = lead.AddContactAttempt(attempt, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
}
