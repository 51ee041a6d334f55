package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository/mocks"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
)

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		bloodType string
		ml        int
		repoErr   error
		wantKind  apperrors.Kind
		wantMsg   string
	}{
		{name: "updated", bloodType: "A+", ml: 1500},
		{name: "negative accepted", bloodType: "O-", ml: -50},
		{name: "unknown type", bloodType: "XYZ", ml: 10, repoErr: apperrors.ErrNotFound, wantKind: apperrors.KindNotFound, wantMsg: MsgNotFound},
		{name: "store failure", bloodType: "B+", ml: 10, repoErr: errors.New("boom"), wantKind: apperrors.KindInternal, wantMsg: "Erro ao atualizar estoque"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.StockRepository)
			svc := NewService(repo)
			repo.On("SetQuantity", mock.Anything, tt.bloodType, tt.ml).Return(tt.repoErr)

			err := svc.SetQuantity(context.Background(), tt.bloodType, tt.ml)
			repo.AssertExpectations(t)
			if tt.repoErr == nil {
				assert.NoError(t, err)
				return
			}
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestListStock(t *testing.T) {
	repo := new(mocks.StockRepository)
	svc := NewService(repo)

	entries := []*model.StockEntry{{TipoSanguineo: model.BloodTypeAPos, QuantidadeML: 600, Nivel: model.StockLevelNormal}}
	repo.On("List", mock.Anything).Return(entries, nil)

	got, err := svc.ListStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
