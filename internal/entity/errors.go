package entity

import "fmt"

// ValidationError indica que um value object ou invariante do agregado foi
// violado na construção ou na mutação. Nunca é parcial: ou a operação inteira
// passa, ou nada muda.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidTransitionError indica uma mudança de status fora da tabela do funil.
type InvalidTransitionError struct {
	From LeadStatus
	To   LeadStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition lead from %s to %s", e.From, e.To)
}

// OwnershipMismatchError indica uma tentativa de contato associada ao Lead errado.
type OwnershipMismatchError struct {
	LeadID        LeadID
	AttemptLeadID LeadID
}

func (e *OwnershipMismatchError) Error() string {
	return fmt.Sprintf("contact attempt belongs to lead %s, not %s",
		e.AttemptLeadID.Short(), e.LeadID.Short())
}

// InvalidConversionError indica que as precondições para CONVERTED não foram atendidas.
type InvalidConversionError struct {
	Status LeadStatus
	Reason string
}

func (e *InvalidConversionError) Error() string {
	return fmt.Sprintf("lead in status %s cannot be converted: %s", e.Status, e.Reason)
}
