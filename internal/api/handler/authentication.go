package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/internal/usecases/authenticating"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Login")

		var req LoginRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// GetMe retorna as informações do usuário autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		user, err := service.GetProfile(r.Context(), principal)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req domain.CreateUserRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		created, err := service.CreateUser(r.Context(), principal, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}
