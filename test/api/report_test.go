//go:build integration

package api_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jwalitptl/doacao-api/internal/model"
)

func TestReportsCountNewRows(t *testing.T) {
	ctx := context.Background()

	totalFor := func(bt model.BloodType) int64 {
		counts, err := api.DonorsByBloodType(ctx)
		require.NoError(t, err)
		for _, c := range counts {
			if c.TipoSanguineo == bt {
				return c.Total
			}
		}
		return 0
	}

	before := totalFor(model.BloodTypeANeg)
	donorID := createTestDonor(t, model.BloodTypeANeg)
	assert.Equal(t, before+1, totalFor(model.BloodTypeANeg))

	createTestAppointment(t, donorID, "2030-02-01T08:30")
	byStatus, err := api.AppointmentsByStatus(ctx)
	require.NoError(t, err)
	var pending int64
	for _, s := range byStatus {
		if s.Status == model.AppointmentStatusPending {
			pending = s.Total
		}
	}
	assert.GreaterOrEqual(t, pending, int64(1))
}

func TestDashboard(t *testing.T) {
	createTestDonor(t, model.BloodTypeOPos)

	d, err := api.Dashboard(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d.TotalDonors, 1)
	assert.NotEmpty(t, d.DonorsByBloodType)
}

func TestExportWorkbook(t *testing.T) {
	body, err := api.ExportReport(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Estoque", "Doadores por tipo", "Agendamentos por status"}, f.GetSheetList())
}
