package handler

import (
	"bytes"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
	"github.com/vfg2006/performance-hub-api/pkg/log"
	"github.com/vfg2006/performance-hub-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// decodeBody lê o corpo JSON da requisição campo a campo, para que um valor
// de tipo errado seja reportado com o nome do campo
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var raw map[string]jsoniter.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return domain.NewInvalidRequestError("JSON inválido: " + err.Error())
	}

	target := reflect.ValueOf(dst).Elem()
	for i := 0; i < target.NumField(); i++ {
		name, _, _ := strings.Cut(target.Type().Field(i).Tag.Get("json"), ",")
		value, ok := raw[name]
		if !ok || name == "" || name == "-" || isJSONNull(value) {
			continue
		}

		if err := json.Unmarshal(value, target.Field(i).Addr().Interface()); err != nil {
			return domain.NewInvalidFieldError(name, "tipo de dado inválido")
		}
	}

	return nil
}

// null equivale a campo ausente: o ponteiro continua nil
func isJSONNull(value jsoniter.RawMessage) bool {
	return string(bytes.TrimSpace(value)) == "null"
}

// pathID lê um identificador inteiro positivo da rota
func pathID(r *http.Request, name string) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewInvalidFieldError(name, "deve ser um inteiro positivo")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeError traduz os erros de domínio para o formato padronizado da API
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var domErr *domain.Error
	if errors.As(err, &domErr) {
		var details any
		if domErr.Field != "" {
			details = map[string]string{"field": domErr.Field}
		}
		apiErrors.WriteError(w, domErr.Code, domErr.Details, details)
		return
	}

	if errors.Is(err, database.ErrOperation) {
		log.ForContext(r.Context()).WithError(err).Error("Falha de banco de dados ao processar requisição")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao processar requisição")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

// requirePrincipal responde 401 quando a requisição chegou sem identidade autenticada
func requirePrincipal(w http.ResponseWriter, r *http.Request) (*domain.Principal, bool) {
	principal := middleware.PrincipalFromContext(r.Context())
	if err := domain.RequirePrincipal(principal); err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return principal, true
}
