package entity

import "fmt"

// LeadStatus é o estágio do Lead no funil de vendas.
type LeadStatus string

const (
	StatusNew          LeadStatus = "NEW"
	StatusContacted    LeadStatus = "CONTACTED"
	StatusQualified    LeadStatus = "QUALIFIED"
	StatusProposalSent LeadStatus = "PROPOSAL_SENT"
	StatusNegotiating  LeadStatus = "NEGOTIATING"
	StatusConverted    LeadStatus = "CONVERTED"
	StatusLost         LeadStatus = "LOST"
)

// LeadStatuses retorna todos os status, na ordem do funil (LOST por último).
func LeadStatuses() []LeadStatus {
	return []LeadStatus{
		StatusNew,
		StatusContacted,
		StatusQualified,
		StatusProposalSent,
		StatusNegotiating,
		StatusConverted,
		StatusLost,
	}
}

func ParseLeadStatus(value string) (LeadStatus, error) {
	switch LeadStatus(value) {
	case StatusNew, StatusContacted, StatusQualified, StatusProposalSent,
		StatusNegotiating, StatusConverted, StatusLost:
		return LeadStatus(value), nil
	default:
		return "", &ValidationError{"status", fmt.Sprintf("unknown lead status: %s", value)}
	}
}

func (s LeadStatus) String() string { return string(s) }

// CanTransitionTo consulta a tabela de transições do funil.
func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	switch s {
	case StatusNew:
		return target == StatusContacted || target == StatusLost
	case StatusContacted:
		return target == StatusQualified || target == StatusLost
	case StatusQualified:
		return target == StatusProposalSent || target == StatusLost
	case StatusProposalSent:
		return target == StatusNegotiating || target == StatusConverted || target == StatusLost
	case StatusNegotiating:
		return target == StatusConverted || target == StatusProposalSent || target == StatusLost
	case StatusConverted, StatusLost:
		return false // terminais
	default:
		return false
	}
}

// IsActive indica lead ainda em andamento (nem convertido nem perdido).
func (s LeadStatus) IsActive() bool {
	return s != StatusConverted && s != StatusLost
}

// IsTerminal indica status que não permite mais transições.
func (s LeadStatus) IsTerminal() bool {
	return s == StatusConverted || s == StatusLost
}

// NextStatus retorna o próximo estágio lógico do funil, se houver.
func (s LeadStatus) NextStatus() (LeadStatus, bool) {
	switch s {
	case StatusNew:
		return StatusContacted, true
	case StatusContacted:
		return StatusQualified, true
	case StatusQualified:
		return StatusProposalSent, true
	case StatusProposalSent:
		return StatusNegotiating, true
	case StatusNegotiating:
		return StatusConverted, true
	default:
		return "", false
	}
}

// funnelRank posiciona o status na ordenação linear do funil.
// LOST fica fora da ordenação.
func (s LeadStatus) funnelRank() int {
	switch s {
	case StatusNew:
		return 0
	case StatusContacted:
		return 1
	case StatusQualified:
		return 2
	case StatusProposalSent:
		return 3
	case StatusNegotiating:
		return 4
	case StatusConverted:
		return 5
	default:
		return -1
	}
}

// IsProgressionTo indica se a mudança para target avança o funil.
func (s LeadStatus) IsProgressionTo(target LeadStatus) bool {
	from, to := s.funnelRank(), target.funnelRank()
	return from >= 0 && to >= 0 && to > from
}
