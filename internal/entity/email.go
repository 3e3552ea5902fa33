package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Regex simplificada, suficiente para o cadastro de leads (limite da RFC 5321 à parte).
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var freeEmailProviders = map[string]bool{
	"gmail.com":    true,
	"hotmail.com":  true,
	"yahoo.com":    true,
	"outlook.com":  true,
	"uol.com.br":   true,
	"bol.com.br":   true,
	"terra.com.br": true,
	"ig.com.br":    true,
}

var brazilianEmailProviders = map[string]bool{
	"uol.com.br":   true,
	"bol.com.br":   true,
	"terra.com.br": true,
	"ig.com.br":    true,
	"globo.com":    true,
	"r7.com":       true,
}

// Email é um endereço de email validado.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return Email{}, &ValidationError{"email", "cannot be empty"}
	}
	if !IsValidEmail(normalized) {
		return Email{}, &ValidationError{"email", fmt.Sprintf("invalid email: %s", value)}
	}
	return Email{value: normalized}, nil
}

func IsValidEmail(value string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	return trimmed != "" && len(trimmed) <= 254 && emailPattern.MatchString(trimmed)
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

// Domain retorna a parte após o @.
func (e Email) Domain() string {
	at := strings.LastIndex(e.value, "@")
	return e.value[at+1:]
}

// LocalPart retorna a parte antes do @.
func (e Email) LocalPart() string {
	at := strings.LastIndex(e.value, "@")
	return e.value[:at]
}

// IsCorporate indica se o domínio não pertence a um provedor gratuito.
func (e Email) IsCorporate() bool {
	return !freeEmailProviders[e.Domain()]
}

// IsBrazilianProvider indica se o domínio é de um provedor brasileiro conhecido.
func (e Email) IsBrazilianProvider() bool {
	return brazilianEmailProviders[e.Domain()]
}

// Masked mascara o email para exibição (ex: joa***@example.com).
func (e Email) Masked() string {
	local := e.LocalPart()
	domain := e.Domain()

	switch {
	case len(local) <= 2:
		return local[:1] + "***@" + domain
	case len(local) <= 4:
		return local[:2] + "***@" + domain
	default:
		return local[:3] + "***@" + domain
	}
}

func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

func (e *Email) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewEmail(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
