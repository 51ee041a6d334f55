//go:build integration

package api_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doacao-api/internal/model"
)

var seq int64

// uniqueCPF returns 11 digits that differ between calls and between runs.
func uniqueCPF() string {
	n := time.Now().Unix()%1e6*1e5 + atomic.AddInt64(&seq, 1)%1e5
	return fmt.Sprintf("%011d", n)
}

func newDonorRequest(bloodType model.BloodType) *model.CreateDonorRequest {
	cpf := uniqueCPF()
	return &model.CreateDonorRequest{
		NomeCompleto:   "Doador Teste " + cpf,
		CPF:            cpf,
		DataNascimento: "1990-01-01",
		Sexo:           string(model.SexFemale),
		TipoSanguineo:  string(bloodType),
		Email:          "doador" + cpf + "@example.com",
	}
}

// createTestDonor registers a donor that cleanup removes.
func createTestDonor(t *testing.T, bloodType model.BloodType) int64 {
	t.Helper()
	id, err := api.CreateDonor(context.Background(), newDonorRequest(bloodType))
	require.NoError(t, err)
	donorIDs = append(donorIDs, id)
	return id
}

func createTestAppointment(t *testing.T, donorID int64, at string) int64 {
	t.Helper()
	id, err := api.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		DonorID:         model.FlexID(donorID),
		DataAgendamento: at,
	})
	require.NoError(t, err)
	appointmentIDs = append(appointmentIDs, id)
	return id
}
