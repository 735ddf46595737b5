package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "credenciais inválidas", code: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "campo ausente", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "referência inexistente", code: ErrResourceNotFound, wantStatus: http.StatusNotFound},
		{name: "conflito", code: ErrAlreadyExists, wantStatus: http.StatusConflict},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"field": "name"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestWriteError_UnauthorizedAsksForBasicCredentials(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrInvalidCredentials, "", nil)

	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
}
