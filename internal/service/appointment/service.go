package appointment

import (
	"context"
	"errors"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
)

const (
	MsgCreated   = "Agendamento criado com sucesso!"
	MsgUpdated   = "Agendamento atualizado com sucesso!"
	MsgCancelled = "Agendamento cancelado com sucesso!"
	MsgNotFound  = "Agendamento não encontrado"

	msgListFailed   = "Erro ao buscar agendamentos"
	msgCreateFailed = "Erro ao criar agendamento"
	msgUpdateFailed = "Erro ao atualizar agendamento"
	msgDeleteFailed = "Erro ao cancelar agendamento"
)

type Service struct {
	repo repository.AppointmentRepository
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.AppointmentDetail, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(msgListFailed, err)
	}
	return appointments, nil
}

// CreateAppointment books a slot in status Pendente. Overlapping slots are
// allowed. An unknown donor is rejected by the store.
func (s *Service) CreateAppointment(ctx context.Context, apt *model.Appointment) (int64, error) {
	apt.Status = model.AppointmentStatusPending
	id, err := s.repo.Create(ctx, apt)
	if err != nil {
		return 0, apperrors.Internal(msgCreateFailed, err)
	}
	return id, nil
}

// UpdateAppointment changes status and/or notes; nil keeps the stored value.
func (s *Service) UpdateAppointment(ctx context.Context, id int64, status *model.AppointmentStatus, notes *string) error {
	err := s.repo.UpdateStatus(ctx, id, status, notes)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NotFound(MsgNotFound, err)
	default:
		return apperrors.Internal(msgUpdateFailed, err)
	}
}

func (s *Service) DeleteAppointment(ctx context.Context, id int64) error {
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
