package donor

import (
	"context"
	"errors"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
)

const (
	MsgCreated   = "Doador cadastrado com sucesso!"
	MsgUpdated   = "Doador atualizado com sucesso!"
	MsgDeleted   = "Doador deletado com sucesso!"
	MsgNotFound  = "Doador não encontrado"
	MsgDuplicate = "CPF ou E-mail já cadastrado"

	msgListFailed   = "Erro ao buscar doadores"
	msgGetFailed    = "Erro ao buscar doador"
	msgCreateFailed = "Erro ao cadastrar doador"
	msgUpdateFailed = "Erro ao atualizar doador"
	msgDeleteFailed = "Erro ao deletar doador"
)

type Service struct {
	repo repository.DonorRepository
}

func NewService(repo repository.DonorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDonors(ctx context.Context) ([]*model.Donor, error) {
	donors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(msgListFailed, err)
	}
	return donors, nil
}

func (s *Service) GetDonor(ctx context.Context, id int64) (*model.Donor, error) {
	donor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(MsgNotFound, err)
		}
		return nil, apperrors.Internal(msgGetFailed, err)
	}
	return donor, nil
}

// CreateDonor registers a donor. New donors are always eligible.
func (s *Service) CreateDonor(ctx context.Context, donor *model.Donor) (int64, error) {
	donor.AptoDoar = true
	id, err := s.repo.Create(ctx, donor)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return 0, apperrors.Conflict(MsgDuplicate, err)
		}
		return 0, apperrors.Internal(msgCreateFailed, err)
	}
	return id, nil
}

func (s *Service) UpdateDonor(ctx context.Context, donor *model.Donor) error {
	err := s.repo.Update(ctx, donor)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NotFound(MsgNotFound, err)
	case errors.Is(err, apperrors.ErrDuplicate):
		return apperrors.Conflict(MsgDuplicate, err)
	default:
		return apperrors.Internal(msgUpdateFailed, err)
	}
}

// DeleteDonor fails with an internal error while the donor still has
// appointments; the store refuses the delete.
func (s *Service) DeleteDonor(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NotFound(MsgNotFound, err)
	default:
		return apperrors.Internal(msgDeleteFailed, err)
	}
}
