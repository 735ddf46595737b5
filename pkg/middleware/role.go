package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso com base nos papéis permitidos
func RoleMiddleware(allowedRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if principal == nil {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Usuário não autenticado", nil)
				return
			}

			for _, role := range allowedRoles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warningf("Acesso negado para usuário ID=%d, Role=%s", principal.UserID, principal.Role)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}
