package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BrazilCountryCode é o código de país assumido quando nenhum é informado.
const BrazilCountryCode = "55"

// Phone é um número de telefone validado. Para o Brasil (código 55) aplica as
// regras de numeração nacional (fixo 8 dígitos, celular 9 começando com 9);
// para outros países aceita 7 a 15 dígitos.
type Phone struct {
	number      string
	countryCode string
	areaCode    string
}

// NewPhone valida e constrói um Phone. areaCode pode ser vazio.
func NewPhone(number, countryCode, areaCode string) (Phone, error) {
	digits := nonDigits.ReplaceAllString(number, "")
	if digits == "" {
		return Phone{}, &ValidationError{"phone", "cannot be empty"}
	}
	if strings.TrimSpace(countryCode) == "" {
		return Phone{}, &ValidationError{"phone", "country code cannot be empty"}
	}

	p := Phone{number: digits, countryCode: countryCode, areaCode: areaCode}
	if countryCode == BrazilCountryCode {
		if !IsValidBrazilianPhone(p.FullNumber()) {
			return Phone{}, &ValidationError{"phone", fmt.Sprintf("invalid phone number: %s", number)}
		}
	} else if len(digits) < 7 || len(digits) > 15 {
		return Phone{}, &ValidationError{"phone", fmt.Sprintf("invalid phone number: %s", number)}
	}
	return p, nil
}

// ParseBrazilianPhone extrai DDD e número de uma string livre.
func ParseBrazilianPhone(raw string) (Phone, error) {
	digits := nonDigits.ReplaceAllString(raw, "")

	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, BrazilCountryCode):
		// +5511999999999
		return NewPhone(digits[4:], BrazilCountryCode, digits[2:4])
	case len(digits) == 11:
		// 11999999999
		return NewPhone(digits[2:], BrazilCountryCode, digits[:2])
	case len(digits) == 9 || len(digits) == 8:
		// Sem DDD
		return NewPhone(digits, BrazilCountryCode, "")
	default:
		return Phone{}, &ValidationError{"phone", fmt.Sprintf("invalid Brazilian phone format: %s", raw)}
	}
}

// IsValidBrazilianPhone valida um número brasileiro em qualquer das formas aceitas.
func IsValidBrazilianPhone(value string) bool {
	digits := nonDigits.ReplaceAllString(value, "")

	switch len(digits) {
	case 8:
		return true // fixo sem DDD
	case 9:
		return strings.HasPrefix(digits, "9") // celular sem DDD
	case 10:
		return digits[2] != '9' // fixo com DDD
	case 11:
		return digits[2] == '9' // celular com DDD
	case 13:
		return strings.HasPrefix(digits, BrazilCountryCode) && IsValidBrazilianPhone(digits[2:])
	default:
		return false
	}
}

func (p Phone) Number() string      { return p.number }
func (p Phone) CountryCode() string { return p.countryCode }
func (p Phone) AreaCode() string    { return p.areaCode }
func (p Phone) Digits() string      { return p.number }

// FullNumber retorna código do país + DDD + número, só dígitos.
func (p Phone) FullNumber() string {
	return p.countryCode + p.areaCode + p.number
}

// InternationalFormat retorna o número no formato +55...
func (p Phone) InternationalFormat() string {
	return "+" + p.FullNumber()
}

// Format retorna o telefone formatado para exibição.
func (p Phone) Format() string {
	if p.countryCode == BrazilCountryCode && p.areaCode != "" {
		switch len(p.number) {
		case 9:
			return fmt.Sprintf("(%s) %s-%s", p.areaCode, p.number[:5], p.number[5:])
		case 8:
			return fmt.Sprintf("(%s) %s-%s", p.areaCode, p.number[:4], p.number[4:])
		default:
			return fmt.Sprintf("+%s (%s) %s", p.countryCode, p.areaCode, p.number)
		}
	}
	return fmt.Sprintf("+%s %s", p.countryCode, p.number)
}

func (p Phone) String() string { return p.Format() }

// IsMobile indica celular (no Brasil, 9 dígitos começando com 9).
func (p Phone) IsMobile() bool {
	if p.countryCode != BrazilCountryCode {
		return false
	}
	return len(p.number) == 9 && strings.HasPrefix(p.number, "9")
}

// IsLandline indica telefone fixo.
func (p Phone) IsLandline() bool {
	if p.countryCode != BrazilCountryCode {
		return false
	}
	return len(p.number) == 8 || (len(p.number) == 9 && !strings.HasPrefix(p.number, "9"))
}

// Masked retorna o número mascarado para exibição (ex: (11) 9****-1234).
func (p Phone) Masked() string {
	if p.countryCode == BrazilCountryCode && p.areaCode != "" {
		switch len(p.number) {
		case 9:
			return fmt.Sprintf("(%s) %s****-%s", p.areaCode, p.number[:1], p.number[5:])
		case 8:
			return fmt.Sprintf("(%s) ****-%s", p.areaCode, p.number[4:])
		default:
			return fmt.Sprintf("+%s (%s) ****", p.countryCode, p.areaCode)
		}
	}
	return fmt.Sprintf("+%s ****", p.countryCode)
}

type phoneJSON struct {
	Value       string `json:"value"`
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code,omitempty"`
}

func (p Phone) MarshalJSON() ([]byte, error) {
	return json.Marshal(phoneJSON{
		Value:       p.number,
		CountryCode: p.countryCode,
		AreaCode:    p.areaCode,
	})
}

func (p *Phone) UnmarshalJSON(data []byte) error {
	var raw phoneJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.CountryCode == "" {
		raw.CountryCode = BrazilCountryCode
	}
	parsed, err := NewPhone(raw.Value, raw.CountryCode, raw.AreaCode)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
