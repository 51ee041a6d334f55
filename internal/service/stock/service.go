package stock

import (
	"context"
	"errors"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
)

const (
	MsgUpdated         = "Estoque atualizado com sucesso!"
	MsgNotFound        = "Tipo sanguíneo não encontrado"
	MsgMissingQuantity = "Quantidade não informada"

	msgListFailed   = "Erro ao buscar estoque"
	msgUpdateFailed = "Erro ao atualizar estoque"
)

type Service struct {
	repo repository.StockRepository
}

func NewService(repo repository.StockRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListStock(ctx context.Context) ([]*model.StockEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(msgListFailed, err)
	}
	return entries, nil
}

// SetQuantity replaces the volume for bloodType. Negative volumes are stored
// as given. Unknown types are reported as not found.
func (s *Service) SetQuantity(ctx context.Context, bloodType string, quantityML int) error {
	err := s.repo.SetQuantity(ctx, bloodType, quantityML)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NotFound(MsgNotFound, err)
	default:
		return apperrors.Internal(msgUpdateFailed, err)
	}
}
