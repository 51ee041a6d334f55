//go:build integration

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/pkg/client"
)

func findAppointment(t *testing.T, id int64) *model.AppointmentDetail {
	t.Helper()
	list, err := api.ListAppointments(context.Background())
	require.NoError(t, err)
	for _, a := range list {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("appointment %d not listed", id)
	return nil
}

func TestAppointmentFlow(t *testing.T) {
	ctx := context.Background()
	donorID := createTestDonor(t, model.BloodTypeABNeg)

	// Create appointment
	id := createTestAppointment(t, donorID, "2030-01-01T10:00")
	a := findAppointment(t, id)
	assert.Equal(t, model.AppointmentStatusPending, a.Status)
	assert.Equal(t, model.BloodTypeABNeg, a.TipoSanguineo)
	assert.Equal(t, "2030-01-01T10:00:00", a.DataAgendamento.String())

	// Confirm it, notes untouched
	status := model.AppointmentStatusConfirmed
	require.NoError(t, api.UpdateAppointment(ctx, id, &model.UpdateAppointmentRequest{Status: &status}))
	a = findAppointment(t, id)
	assert.Equal(t, model.AppointmentStatusConfirmed, a.Status)
	assert.Nil(t, a.Observacoes)

	// Add notes, status untouched
	notes := "Trazer documento"
	require.NoError(t, api.UpdateAppointment(ctx, id, &model.UpdateAppointmentRequest{Observacoes: &notes}))
	a = findAppointment(t, id)
	assert.Equal(t, model.AppointmentStatusConfirmed, a.Status)
	require.NotNil(t, a.Observacoes)
	assert.Equal(t, notes, *a.Observacoes)

	// Cancel
	require.NoError(t, api.CancelAppointment(ctx, id))
	err := api.CancelAppointment(ctx, id)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Agendamento não encontrado", apiErr.Message)
}

func TestAppointmentMissingFields(t *testing.T) {
	_, err := api.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
