package entity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// LeadID identifica unicamente um Lead. Sempre um UUID válido.
type LeadID struct {
	value string
}

func NewLeadID() LeadID {
	return LeadID{value: uuid.New().String()}
}

func ParseLeadID(value string) (LeadID, error) {
	v, err := parseUUIDValue("lead_id", value)
	if err != nil {
		return LeadID{}, err
	}
	return LeadID{value: v}, nil
}

func (id LeadID) String() string       { return id.value }
func (id LeadID) IsZero() bool         { return id.value == "" }
func (id LeadID) Equals(o LeadID) bool { return id.value == o.value }

// Masked retorna uma forma segura para logs (primeiros 8 caracteres + ***).
func (id LeadID) Masked() string { return maskID(id.value) }

// Short retorna os primeiros 8 caracteres do UUID.
func (id LeadID) Short() string { return shortID(id.value) }

func (id LeadID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

func (id *LeadID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLeadID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ContactAttemptID identifica uma tentativa de contato.
type ContactAttemptID struct {
	value string
}

func NewContactAttemptID() ContactAttemptID {
	return ContactAttemptID{value: uuid.New().String()}
}

func ParseContactAttemptID(value string) (ContactAttemptID, error) {
	v, err := parseUUIDValue("contact_attempt_id", value)
	if err != nil {
		return ContactAttemptID{}, err
	}
	return ContactAttemptID{value: v}, nil
}

func (id ContactAttemptID) String() string { return id.value }
func (id ContactAttemptID) IsZero() bool   { return id.value == "" }
func (id ContactAttemptID) Masked() string { return maskID(id.value) }
func (id ContactAttemptID) Short() string  { return shortID(id.value) }

func (id ContactAttemptID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

func (id *ContactAttemptID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseContactAttemptID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func parseUUIDValue(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{field, "cannot be empty"}
	}
	if _, err := uuid.Parse(value); err != nil {
		return "", &ValidationError{field, "must be a valid UUID"}
	}
	return value, nil
}

func maskID(value string) string {
	if len(value) > 8 {
		return value[:8] + "***"
	}
	return "***"
}

func shortID(value string) string {
	if len(value) > 8 {
		return value[:8]
	}
	return value
}
