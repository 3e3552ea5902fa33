package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	companyNameMinLength = 2
	companyNameMaxLength = 200
)

// Letras (incluindo acentuadas), dígitos, espaços e pontuação comum em razões sociais.
var companyNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s\-&.,()]+$`)

// CompanyName é a razão social ou nome fantasia da empresa prospectada.
type CompanyName struct {
	value string
}

func NewCompanyName(value string) (CompanyName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return CompanyName{}, &ValidationError{"company_name", "cannot be empty"}
	}
	if len([]rune(trimmed)) < companyNameMinLength {
		return CompanyName{}, &ValidationError{"company_name",
			fmt.Sprintf("must have at least %d characters", companyNameMinLength)}
	}
	if len([]rune(trimmed)) > companyNameMaxLength {
		return CompanyName{}, &ValidationError{"company_name",
			fmt.Sprintf("cannot have more than %d characters", companyNameMaxLength)}
	}
	if !companyNamePattern.MatchString(trimmed) {
		return CompanyName{}, &ValidationError{"company_name", "contains invalid characters"}
	}
	return CompanyName{value: trimmed}, nil
}

func (n CompanyName) Value() string  { return n.value }
func (n CompanyName) String() string { return n.value }
func (n CompanyName) Length() int    { return len([]rune(n.value)) }
func (n CompanyName) IsLong() bool   { return n.Length() > 50 }

// Formatted retorna o nome com a primeira letra de cada palavra maiúscula.
func (n CompanyName) Formatted() string {
	words := strings.Fields(n.value)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Abbreviated retorna as primeiras palavras do nome, até 30 caracteres.
func (n CompanyName) Abbreviated() string {
	if len([]rune(n.value)) <= 30 {
		return n.value
	}

	var result string
	for _, word := range strings.Fields(n.value) {
		candidate := word
		if result != "" {
			candidate = result + " " + word
		}
		if len([]rune(candidate)) > 30 {
			break
		}
		result = candidate
	}
	if result == "" {
		return string([]rune(n.value)[:30])
	}
	return result
}

func (n CompanyName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

func (n *CompanyName) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCompanyName(raw)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
