package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D`)

// CNPJ é o registro nacional de pessoa jurídica: 14 dígitos, os dois últimos
// são verificadores (módulo 11). Só existe em estado válido.
type CNPJ struct {
	digits string
}

// NewCNPJ remove a formatação e valida os dígitos verificadores.
func NewCNPJ(value string) (CNPJ, error) {
	digits := nonDigits.ReplaceAllString(value, "")
	if digits == "" {
		return CNPJ{}, &ValidationError{"cnpj", "cannot be empty"}
	}
	if !IsValidCNPJ(digits) {
		return CNPJ{}, &ValidationError{"cnpj", fmt.Sprintf("invalid CNPJ: %s", value)}
	}
	return CNPJ{digits: digits}, nil
}

// IsValidCNPJ valida uma string arbitrária como CNPJ.
func IsValidCNPJ(value string) bool {
	digits := nonDigits.ReplaceAllString(value, "")

	if len(digits) != 14 {
		return false
	}

	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return validateCheckDigits(digits)
}

func validateCheckDigits(cnpj string) bool {
	weights1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i <= 11; i++ {
		sum += int(cnpj[i]-'0') * weights1[i]
	}
	firstDigit := 0
	if sum%11 >= 2 {
		firstDigit = 11 - sum%11
	}
	if int(cnpj[12]-'0') != firstDigit {
		return false
	}

	weights2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum = 0
	for i := 0; i <= 12; i++ {
		sum += int(cnpj[i]-'0') * weights2[i]
	}
	secondDigit := 0
	if sum%11 >= 2 {
		secondDigit = 11 - sum%11
	}
	return int(cnpj[13]-'0') == secondDigit
}

// Digits retorna os 14 dígitos sem formatação.
func (c CNPJ) Digits() string { return c.digits }

// BaseNumber retorna os 8 primeiros dígitos (número base da empresa).
func (c CNPJ) BaseNumber() string { return c.digits[:8] }

// BranchNumber retorna os 4 dígitos da filial.
func (c CNPJ) BranchNumber() string { return c.digits[8:12] }

// CheckDigits retorna os 2 dígitos verificadores.
func (c CNPJ) CheckDigits() string { return c.digits[12:14] }

// IsHeadOffice indica se é a matriz (filial 0001).
func (c CNPJ) IsHeadOffice() bool { return c.BranchNumber() == "0001" }

// Format retorna o CNPJ no formato XX.XXX.XXX/XXXX-XX.
func (c CNPJ) Format() string {
	d := c.digits
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

func (c CNPJ) String() string { return c.Format() }

func (c CNPJ) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.digits)
}

func (c *CNPJ) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCNPJ(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
