package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/doacao-api/internal/model"
)

// List returns every appointment with its donor, most recent slot first.
func (r *appointmentRepository) List(ctx context.Context) ([]*model.AppointmentDetail, error) {
	query := `
		SELECT a.id_agendamento, a.id_doador, a.data_agendamento, a.observacoes,
			   a.status, a.data_criacao,
			   d.nome_completo, d.tipo_sanguineo, d.email, d.telefone
		FROM agendamentos a
		JOIN doadores d ON d.id_doador = a.id_doador
		ORDER BY a.data_agendamento DESC
	`
	start := time.Now()
	appointments := []*model.AppointmentDetail{}
	err := r.db.SelectContext(ctx, &appointments, query)
	if err = r.observe("appointment_list", start, err); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (int64, error) {
	query := `
		INSERT INTO agendamentos (id_doador, data_agendamento, observacoes, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id_agendamento
	`
	if appointment.Status == "" {
		appointment.Status = model.AppointmentStatusPending
	}

	start := time.Now()
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		appointment.DonorID,
		appointment.DataAgendamento,
		appointment.Observacoes,
		appointment.Status,
	).Scan(&id)
	if err = r.observe("appointment_create", start, err); err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}
	appointment.ID = id
	return id, nil
}

// UpdateStatus sets status and notes. A nil argument keeps the stored value.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status *model.AppointmentStatus, notes *string) error {
	query := `
		UPDATE agendamentos
		SET status = COALESCE($1, status), observacoes = COALESCE($2, observacoes)
		WHERE id_agendamento = $3
	`
	var statusArg interface{}
	if status != nil {
		statusArg = string(*status)
	}

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, statusArg, notes, id)
	if err = r.observe("appointment_update", start, err); err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	return requireAffected(rows)
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	result, err := r.db.ExecContext(ctx, `DELETE FROM agendamentos WHERE id_agendamento = $1`, id)
	if err = r.observe("appointment_delete", start, err); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	return requireAffected(rows)
}
