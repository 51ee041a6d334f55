package httputil

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doacao-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", errors.Validation("Campos obrigatórios não preenchidos", nil), http.StatusBadRequest, "Campos obrigatórios não preenchidos"},
		{"conflict", errors.Conflict("CPF ou E-mail já cadastrado", errors.ErrDuplicate), http.StatusBadRequest, "CPF ou E-mail já cadastrado"},
		{"not found", errors.NotFound("Doador não encontrado", errors.ErrNotFound), http.StatusNotFound, "Doador não encontrado"},
		{"internal", errors.Internal("Erro ao buscar doadores", stderrors.New("dial tcp: refused")), http.StatusInternalServerError, "Erro ao buscar doadores"},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/doadores", nil)

			RespondWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{"error": tt.wantBody}, body)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestRespondWithMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondWithMessage(c, "Doador deletado com sucesso!")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Doador deletado com sucesso!"}`, w.Body.String())
}
