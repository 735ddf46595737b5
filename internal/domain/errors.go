package domain

import (
	"errors"
	"fmt"

	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
)

// Taxonomia de erros expostos pela API
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error carrega o código da API e o campo afetado junto com o erro base
type Error struct {
	Err     error  // Erro base (um dos sentinelas acima)
	Code    string // Código de erro para API
	Field   string // Campo que originou o erro (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *Error) Error() string {
	switch {
	case e.Field != "" && e.Details != "":
		return fmt.Sprintf("%s: %s: %s", e.Err.Error(), e.Field, e.Details)
	case e.Details != "":
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewUnauthorizedError(details string) *Error {
	return &Error{Err: ErrUnauthorized, Code: apiErrors.ErrInvalidCredentials, Details: details}
}

func NewInvalidTokenError(details string) *Error {
	return &Error{Err: ErrUnauthorized, Code: apiErrors.ErrInvalidToken, Details: details}
}

func NewForbiddenError(details string) *Error {
	return &Error{Err: ErrForbidden, Code: apiErrors.ErrInsufficientPrivilege, Details: details}
}

// NewMissingFieldError indica campo obrigatório ausente ou vazio
func NewMissingFieldError(field string) *Error {
	return &Error{
		Err:     ErrValidation,
		Code:    apiErrors.ErrMissingRequiredData,
		Field:   field,
		Details: "campo obrigatório",
	}
}

// NewInvalidFieldError indica campo presente mas com formato ou valor inválido
func NewInvalidFieldError(field, details string) *Error {
	return &Error{
		Err:     ErrValidation,
		Code:    apiErrors.ErrInvalidFormat,
		Field:   field,
		Details: details,
	}
}

func NewInvalidRequestError(details string) *Error {
	return &Error{Err: ErrValidation, Code: apiErrors.ErrInvalidRequest, Details: details}
}

// NewNotFoundError indica referência (chave estrangeira) inexistente
func NewNotFoundError(field string, id int64) *Error {
	return &Error{
		Err:     ErrNotFound,
		Code:    apiErrors.ErrResourceNotFound,
		Field:   field,
		Details: fmt.Sprintf("registro %d não encontrado", id),
	}
}

// NewConflictError indica violação de unicidade
func NewConflictError(field, details string) *Error {
	return &Error{
		Err:     ErrConflict,
		Code:    apiErrors.ErrAlreadyExists,
		Field:   field,
		Details: details,
	}
}

// NewBrokenReferenceError é usado quando o banco rejeita uma chave estrangeira
func NewBrokenReferenceError() *Error {
	return &Error{
		Err:     ErrNotFound,
		Code:    apiErrors.ErrResourceNotFound,
		Details: "referência inexistente",
	}
}
