package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", Validation("Campos obrigatórios não preenchidos", nil), http.StatusBadRequest},
		{"conflict", Conflict("CPF ou E-mail já cadastrado", ErrDuplicate), http.StatusBadRequest},
		{"not found", NotFound("Doador não encontrado", ErrNotFound), http.StatusNotFound},
		{"internal", Internal("Erro ao buscar doadores", stderrors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestAs_WrappedError(t *testing.T) {
	inner := NotFound("Doador não encontrado", ErrNotFound)
	wrapped := fmt.Errorf("get donor: %w", inner)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(stderrors.New("plain")))
}

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := Internal("Erro ao buscar estoque", stderrors.New("connection refused"))
	assert.Equal(t, "Erro ao buscar estoque: connection refused", err.Error())
	assert.Equal(t, "Rota não encontrada", NotFound("Rota não encontrada", nil).Error())
}
