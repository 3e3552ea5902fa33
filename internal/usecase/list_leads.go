package usecase

import "context"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListLeadsUseCase struct {
	Repo LeadRepository
}

func NewListLeadsUseCase(repo LeadRepository) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, page, size int) (*ListLeadsOutput, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	leads, err := uc.Repo.FindAll(ctx, page, size)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list leads: " + err.Error(),
		}
	}

	total, err := uc.Repo.Count(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to count leads: " + err.Error(),
		}
	}

	out := &ListLeadsOutput{
		Leads: make([]*LeadOutput, 0, len(leads)),
		Total: total,
		Page:  page,
		Size:  size,
	}
	for _, lead := range leads {
		out.Leads = append(out.Leads, NewLeadOutput(lead))
	}
	return out, nil
}
