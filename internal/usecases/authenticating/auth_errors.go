package authenticating

import (
	"errors"

	"github.com/vfg2006/performance-hub-api/internal/domain"
)

// Erros base de autenticação; todos desembrulham para domain.ErrUnauthorized
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
)

// authError mantém a causa específica sem perder a classificação da API
type authError struct {
	base  *domain.Error
	cause error
}

func (e *authError) Error() string {
	return e.base.Error()
}

func (e *authError) Unwrap() error {
	return e.base
}

func (e *authError) Is(target error) bool {
	return target == e.cause
}

func newCredentialsError(details string) error {
	return &authError{base: domain.NewUnauthorizedError(details), cause: ErrInvalidCredentials}
}

func newTokenError(cause error, details string) error {
	return &authError{base: domain.NewInvalidTokenError(details), cause: cause}
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsTokenError verifica se o erro está relacionado a um token inválido ou expirado
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
