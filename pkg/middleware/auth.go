package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/authenticating"
	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyPrincipal contextKey = "principal"
)

// Rotas acessíveis sem credenciais
var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/metrics":     true,
	"/v1/login":    true,
}

// AuthMiddleware valida as credenciais de toda requisição (Basic ou Bearer)
// e coloca o Principal no contexto. Nenhum handler é executado sem Principal.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais não fornecidas", nil)
				return
			}

			var (
				principal *domain.Principal
				err       error
			)

			if tokenString, isBearer := strings.CutPrefix(authHeader, "Bearer "); isBearer {
				principal, err = authService.ValidateToken(tokenString)
			} else {
				username, password, ok := r.BasicAuth()
				if !ok {
					apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Formato de credencial não suportado", nil)
					return
				}
				principal, err = authService.Authenticate(r.Context(), username, password)
			}

			if err != nil {
				var domErr *domain.Error
				switch {
				case errors.As(err, &domErr) && errors.Is(err, domain.ErrUnauthorized):
					apiErrors.WriteError(w, domErr.Code, "Credenciais inválidas", nil)
				default:
					logrus.WithError(err).Error("Erro ao validar credenciais")
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar credenciais", nil)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, principal)
}

// PrincipalFromContext retorna nil quando a requisição não foi autenticada
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	principal, _ := ctx.Value(ContextKeyPrincipal).(*domain.Principal)
	return principal
}
