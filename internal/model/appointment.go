package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pendente"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmado"
	AppointmentStatusCompleted AppointmentStatus = "Realizado"
	AppointmentStatusCancelled AppointmentStatus = "Cancelado"
)

// AppointmentStatuses are the values the UI offers. The API stores whatever
// text it receives.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

type Appointment struct {
	ID              int64             `db:"id_agendamento" json:"id_agendamento"`
	DonorID         int64             `db:"id_doador" json:"id_doador"`
	DataAgendamento LocalTime         `db:"data_agendamento" json:"data_agendamento"`
	Observacoes     *string           `db:"observacoes" json:"observacoes"`
	Status          AppointmentStatus `db:"status" json:"status"`
	DataCriacao     time.Time         `db:"data_criacao" json:"data_criacao"`
}

// AppointmentDetail is an appointment joined with the donor fields the
// appointments page shows.
type AppointmentDetail struct {
	Appointment
	NomeCompleto  string    `db:"nome_completo" json:"nome_completo"`
	TipoSanguineo BloodType `db:"tipo_sanguineo" json:"tipo_sanguineo"`
	Email         string    `db:"email" json:"email"`
	Telefone      *string   `db:"telefone" json:"telefone"`
}

type CreateAppointmentRequest struct {
	DonorID         FlexID  `json:"id_doador" binding:"required"`
	DataAgendamento string  `json:"data_agendamento" binding:"required,local_datetime"`
	Observacoes     *string `json:"observacoes"`
}

func (r *CreateAppointmentRequest) ToAppointment() (*Appointment, error) {
	at, err := ParseLocalTime(r.DataAgendamento)
	if err != nil {
		return nil, err
	}
	return &Appointment{
		DonorID:         int64(r.DonorID),
		DataAgendamento: at,
		Observacoes:     r.Observacoes,
		Status:          AppointmentStatusPending,
	}, nil
}

// UpdateAppointmentRequest changes status and/or notes. Absent fields keep
// their stored value.
type UpdateAppointmentRequest struct {
	Status      *AppointmentStatus `json:"status"`
	Observacoes *string            `json:"observacoes"`
}

type CreateAppointmentResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id_agendamento"`
}
