package appointment

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

func TestCreateAppointmentForcesPending(t *testing.T) {
	repo := new(mocks.AppointmentRepository)
	svc := NewService(repo)

	apt := &model.Appointment{DonorID: 1, Status: model.AppointmentStatusCompleted}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Appointment) bool {
		return a.Status == model.AppointmentStatusPending
	})).Return(int64(4), nil)

	id, err := svc.CreateAppointment(context.Background(), apt)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	repo.AssertExpectations(t)
}

func TestCreateAppointmentUnknownDonor(t *testing.T) {
	repo := new(mocks.AppointmentRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("violates foreign key constraint"))

	_, err := svc.CreateAppointment(context.Background(), &model.Appointment{DonorID: 999})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInternal, appErr.Kind)
	assert.Equal(t, "Erro ao criar agendamento", appErr.Message)
}

func TestUpdateAppointment(t *testing.T) {
	repo := new(mocks.AppointmentRepository)
	svc := NewService(repo)

	status := model.AppointmentStatusConfirmed
	var noNotes *string
	repo.On("UpdateStatus", mock.Anything, int64(1), &status, noNotes).Return(nil)
	repo.On("UpdateStatus", mock.Anything, int64(2), &status, noNotes).Return(apperrors.ErrNotFound)
	repo.On("UpdateStatus", mock.Anything, int64(3), &status, noNotes).Return(errors.New("boom"))

	assert.NoError(t, svc.UpdateAppointment(context.Background(), 1, &status, nil))

	err := svc.UpdateAppointment(context.Background(), 2, &status, nil)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, MsgNotFound, appErr.Message)

	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(svc.UpdateAppointment(context.Background(), 3, &status, nil)))
}

func TestDeleteAppointment(t *testing.T) {
	repo := new(mocks.AppointmentRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(apperrors.ErrNotFound)

	assert.NoError(t, svc.DeleteAppointment(context.Background(), 1))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(svc.DeleteAppointment(context.Background(), 2)))
}

func TestListAppointments(t *testing.T) {
	repo := new(mocks.AppointmentRepository)
	svc := NewService(repo)

	repo.On("List", mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.ListAppointments(context.Background())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Erro ao buscar agendamentos", appErr.Message)
}
