package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

type CreateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *Role   `json:"role"`
}

// CreateUserResponse devolve a senha gerada apenas quando ela não foi informada
type CreateUserResponse struct {
	User              *User  `json:"user"`
	GeneratedPassword string `json:"generated_password,omitempty"`
}

// Principal é a identidade autenticada que executa uma operação.
// É sempre passado explicitamente para os casos de uso.
type Principal struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// SystemPrincipal é usado pelos jobs agendados
func SystemPrincipal() *Principal {
	return &Principal{UserID: 0, Username: "system", Role: RoleAdmin}
}

// RequirePrincipal falha com Unauthorized quando não há identidade autenticada
func RequirePrincipal(p *Principal) error {
	if p == nil {
		return NewUnauthorizedError("Credenciais ausentes ou inválidas")
	}
	return nil
}

type Claims struct {
	UserID   int64
	Username string
	Role     Role
	jwt.RegisteredClaims
}
