package repository

import (
	"context"

	"github.com/jwalitptl/doacao-api/internal/model"
)

// All repository interfaces in one file. Implementations return
// errors.ErrNotFound when an id or key matches no row and wrap
// errors.ErrDuplicate on uniqueness violations.
type (
	DonorRepository interface {
		List(ctx context.Context) ([]*model.Donor, error)
		Get(ctx context.Context, id int64) (*model.Donor, error)
		Create(ctx context.Context, donor *model.Donor) (int64, error)
		Update(ctx context.Context, donor *model.Donor) error
		Delete(ctx context.Context, id int64) error
	}

	AppointmentRepository interface {
		List(ctx context.Context) ([]*model.AppointmentDetail, error)
		Create(ctx context.Context, appointment *model.Appointment) (int64, error)
		UpdateStatus(ctx context.Context, id int64, status *model.AppointmentStatus, notes *string) error
		Delete(ctx context.Context, id int64) error
	}

	StockRepository interface {
		List(ctx context.Context) ([]*model.StockEntry, error)
		SetQuantity(ctx context.Context, bloodType string, quantityML int) error
	}

	ReportRepository interface {
		DonorsByBloodType(ctx context.Context) ([]*model.BloodTypeCount, error)
		AppointmentsByStatus(ctx context.Context) ([]*model.StatusCount, error)
	}

	// Pinger reports store reachability for readiness probes.
	Pinger interface {
		PingContext(ctx context.Context) error
	}
)
