package entity

import "fmt"

// ContactResult é o desfecho de uma tentativa de contato.
type ContactResult string

const (
	ResultNoAnswer          ContactResult = "NO_ANSWER"
	ResultInterested        ContactResult = "INTERESTED"
	ResultNotInterested     ContactResult = "NOT_INTERESTED"
	ResultCallbackRequested ContactResult = "CALLBACK_REQUESTED"
	ResultMeetingScheduled  ContactResult = "MEETING_SCHEDULED"
	ResultProposalRequested ContactResult = "PROPOSAL_REQUESTED"
	ResultConverted         ContactResult = "CONVERTED"
	ResultInvalidContact    ContactResult = "INVALID_CONTACT"
)

func ContactResults() []ContactResult {
	return []ContactResult{
		ResultNoAnswer,
		ResultInterested,
		ResultNotInterested,
		ResultCallbackRequested,
		ResultMeetingScheduled,
		ResultProposalRequested,
		ResultConverted,
		ResultInvalidContact,
	}
}

func ParseContactResult(value string) (ContactResult, error) {
	switch ContactResult(value) {
	case ResultNoAnswer, ResultInterested, ResultNotInterested,
		ResultCallbackRequested, ResultMeetingScheduled,
		ResultProposalRequested, ResultConverted, ResultInvalidContact:
		return ContactResult(value), nil
	default:
		return "", &ValidationError{"result", fmt.Sprintf("unknown contact result: %s", value)}
	}
}

func (r ContactResult) String() string { return string(r) }

// IsPositive indica resultado que representa avanço no funil.
func (r ContactResult) IsPositive() bool {
	switch r {
	case ResultInterested, ResultCallbackRequested, ResultMeetingScheduled,
		ResultProposalRequested, ResultConverted:
		return true
	default:
		return false
	}
}

// RequiresFollowUp indica resultado que pede novo contato.
func (r ContactResult) RequiresFollowUp() bool {
	switch r {
	case ResultNoAnswer, ResultInterested, ResultCallbackRequested, ResultMeetingScheduled:
		return true
	default:
		return false
	}
}

// IsTerminal indica resultado que não exige mais ações.
func (r ContactResult) IsTerminal() bool {
	switch r {
	case ResultNotInterested, ResultConverted, ResultInvalidContact:
		return true
	default:
		return false
	}
}

func (r ContactResult) DisplayName() string {
	switch r {
	case ResultNoAnswer:
		return "No Answer"
	case ResultInterested:
		return "Interested"
	case ResultNotInterested:
		return "Not Interested"
	case ResultCallbackRequested:
		return "Callback Requested"
	case ResultMeetingScheduled:
		return "Meeting Scheduled"
	case ResultProposalRequested:
		return "Proposal Requested"
	case ResultConverted:
		return "Converted"
	case ResultInvalidContact:
		return "Invalid Contact"
	default:
		return string(r)
	}
}

// QualificationScore retorna a pontuação do resultado no cálculo de
// qualificação do Lead (0-10).
func (r ContactResult) QualificationScore() int {
	switch r {
	case ResultConverted:
		return 10
	case ResultProposalRequested:
		return 9
	case ResultMeetingScheduled:
		return 8
	case ResultInterested:
		return 6
	case ResultCallbackRequested:
		return 4
	case ResultNoAnswer:
		return 2
	default:
		return 0
	}
}
