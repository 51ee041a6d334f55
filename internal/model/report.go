package model

type BloodTypeCount struct {
	TipoSanguineo BloodType `db:"tipo_sanguineo" json:"tipo_sanguineo"`
	Total         int64     `db:"total" json:"total"`
}

type StatusCount struct {
	Status AppointmentStatus `db:"status" json:"status"`
	Total  int64             `db:"total" json:"total"`
}
