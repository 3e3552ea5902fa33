package usecase

import (
	"errors"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

// Códigos de erro de negócio, traduzidos para status HTTP pela camada web.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeOwnershipMismatch = "OWNERSHIP_MISMATCH"
	CodeInvalidConversion = "INVALID_CONVERSION"
	CodeLeadNotFound      = "LEAD_NOT_FOUND"
)

// DomainError é um erro de regra de negócio: causado pelo chamador, nunca
// retentável.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError é uma falha de infraestrutura (banco, fila), potencialmente
// transiente.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// translateEntityError converte os erros tipados do domínio em DomainError
// com código, para o mapeamento HTTP.
func translateEntityError(err error) error {
	var (
		validation *entity.ValidationError
		transition *entity.InvalidTransitionError
		ownership  *entity.OwnershipMismatchError
		conversion *entity.InvalidConversionError
	)

	switch {
	case errors.As(err, &validation):
		return &DomainError{Code: CodeValidation, Message: validation.Error()}
	case errors.As(err, &transition):
		return &DomainError{Code: CodeInvalidTransition, Message: transition.Error()}
	case errors.As(err, &ownership):
		return &DomainError{Code: CodeOwnershipMismatch, Message: ownership.Error()}
	case errors.As(err, &conversion):
		return &DomainError{Code: CodeInvalidConversion, Message: conversion.Error()}
	default:
		return err
	}
}

func errLeadNotFound(id string) *DomainError {
	return &DomainError{Code: CodeLeadNotFound, Message: "lead not found: " + id}
}
