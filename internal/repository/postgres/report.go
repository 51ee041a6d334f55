package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/doacao-api/internal/model"
)

func (r *reportRepository) DonorsByBloodType(ctx context.Context) ([]*model.BloodTypeCount, error) {
	query := `
		SELECT tipo_sanguineo, COUNT(*) AS total
		FROM doadores
		GROUP BY tipo_sanguineo
		ORDER BY tipo_sanguineo
	`
	start := time.Now()
	counts := []*model.BloodTypeCount{}
	err := r.db.SelectContext(ctx, &counts, query)
	if err = r.observe("report_donors_by_type", start, err); err != nil {
		return nil, fmt.Errorf("failed to count donors by blood type: %w", err)
	}
	return counts, nil
}

func (r *reportRepository) AppointmentsByStatus(ctx context.Context) ([]*model.StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS total
		FROM agendamentos
		GROUP BY status
		ORDER BY status
	`
	start := time.Now()
	counts := []*model.StatusCount{}
	err := r.db.SelectContext(ctx, &counts, query)
	if err = r.observe("report_appointments_by_status", start, err); err != nil {
		return nil, fmt.Errorf("failed to count appointments by status: %w", err)
	}
	return counts, nil
}
