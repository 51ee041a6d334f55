package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/doacao-api/internal/repository"
	"github.com/jwalitptl/doacao-api/pkg/metrics"
)

type donorRepository struct {
	BaseRepository
}

type appointmentRepository struct {
	BaseRepository
}

type stockRepository struct {
	BaseRepository
}

type reportRepository struct {
	BaseRepository
}

func NewDonorRepository(db *sqlx.DB, m *metrics.Metrics) repository.DonorRepository {
	return &donorRepository{NewBaseRepository(db, m)}
}

func NewAppointmentRepository(db *sqlx.DB, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{NewBaseRepository(db, m)}
}

func NewStockRepository(db *sqlx.DB, m *metrics.Metrics) repository.StockRepository {
	return &stockRepository{NewBaseRepository(db, m)}
}

func NewReportRepository(db *sqlx.DB, m *metrics.Metrics) repository.ReportRepository {
	return &reportRepository{NewBaseRepository(db, m)}
}
