package client

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jwalitptl/doacao-api/internal/model"
)

// Dashboard is the summary shown on the operator's landing page.
type Dashboard struct {
	TotalDonors          int
	AppointmentsToday    int
	TotalAppointments    int64
	DonorsByBloodType    []*model.BloodTypeCount
	AppointmentsByStatus []*model.StatusCount
}

// Dashboard fetches the four dashboard reads in parallel. The first failure
// cancels the rest and is returned.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	return c.dashboard(ctx, time.Now())
}

func (c *Client) dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	var (
		donors       []*model.Donor
		appointments []*model.AppointmentDetail
		byType       []*model.BloodTypeCount
		byStatus     []*model.StatusCount
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		donors, err = c.ListDonors(ctx)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = c.ListAppointments(ctx)
		return err
	})
	g.Go(func() (err error) {
		byType, err = c.DonorsByBloodType(ctx)
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = c.AppointmentsByStatus(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalDonors:          len(donors),
		DonorsByBloodType:    byType,
		AppointmentsByStatus: byStatus,
	}
	for _, a := range appointments {
		if sameDay(a.DataAgendamento.Time, now) {
			d.AppointmentsToday++
		}
	}
	for _, s := range byStatus {
		d.TotalAppointments += s.Total
	}
	return d, nil
}

// sameDay compares calendar dates. Appointment times carry no zone, so the
// wall clock of both is compared.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
