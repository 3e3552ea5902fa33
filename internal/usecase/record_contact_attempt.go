package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

type RecordContactAttemptUseCase struct {
	Repo      LeadRepository
	Publisher EventPublisher
	Now       func() time.Time
}

func NewRecordContactAttemptUseCase(repo LeadRepository, publisher EventPublisher) *RecordContactAttemptUseCase {
	return &RecordContactAttemptUseCase{
		Repo:      repo,
		Publisher: publisher,
		Now:       time.Now,
	}
}

func (uc *RecordContactAttemptUseCase) Execute(ctx context.Context, leadIDRaw string, input RecordContactAttemptInput) (*LeadOutput, error) {
	leadID, err := entity.ParseLeadID(leadIDRaw)
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
		return nil, errLeadNotFound(leadIDRaw)
	}

	channel, err := entity.ParseContactChannel(strings.ToUpper(strings.TrimSpace(input.Channel)))
	if err != nil {
		return nil, translateEntityError(err)
	}
	result, err := entity.ParseContactResult(strings.ToUpper(strings.TrimSpace(input.Result)))
	if err != nil {
		return nil, translateEntityError(err)
	}

	now := uc.Now()
	attemptDate := now
	if input.AttemptDate != nil {
		attemptDate = *input.AttemptDate
	}

	attempt, err := entity.NewContactAttempt(
		leadID,
		attemptDate,
		channel,
		result,
		input.Notes,
		input.NextFollowUp,
		time.Duration(input.DurationSeconds)*time.Second,
		now,
	)
	if err != nil {
		return nil, translateEntityError(err)
	}

	events, err := lead.AddContactAttempt(attempt, now)
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
