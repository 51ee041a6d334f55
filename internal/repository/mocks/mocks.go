// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository"
)

var (
	_ repository.DonorRepository       = (*DonorRepository)(nil)
	_ repository.AppointmentRepository = (*AppointmentRepository)(nil)
	_ repository.StockRepository       = (*StockRepository)(nil)
	_ repository.ReportRepository      = (*ReportRepository)(nil)
)

type DonorRepository struct {
	mock.Mock
}

func (m *DonorRepository) List(ctx context.Context) ([]*model.Donor, error) {
	args := m.Called(ctx)
	donors, _ := args.Get(0).([]*model.Donor)
	return donors, args.Error(1)
}

func (m *DonorRepository) Get(ctx context.Context, id int64) (*model.Donor, error) {
	args := m.Called(ctx, id)
	donor, _ := args.Get(0).(*model.Donor)
	return donor, args.Error(1)
}

func (m *DonorRepository) Create(ctx context.Context, donor *model.Donor) (int64, error) {
	args := m.Called(ctx, donor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DonorRepository) Update(ctx context.Context, donor *model.Donor) error {
	return m.Called(ctx, donor).Error(0)
}

func (m *DonorRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) List(ctx context.Context) ([]*model.AppointmentDetail, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*model.AppointmentDetail)
	return list, args.Error(1)
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (int64, error) {
	args := m.Called(ctx, appointment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status *model.AppointmentStatus, notes *string) error {
	return m.Called(ctx, id, status, notes).Error(0)
}

func (m *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type StockRepository struct {
	mock.Mock
}

func (m *StockRepository) List(ctx context.Context) ([]*model.StockEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]*model.StockEntry)
	return entries, args.Error(1)
}

func (m *StockRepository) SetQuantity(ctx context.Context, bloodType string, quantityML int) error {
	return m.Called(ctx, bloodType, quantityML).Error(0)
}

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) DonorsByBloodType(ctx context.Context) ([]*model.BloodTypeCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]*model.BloodTypeCount)
	return counts, args.Error(1)
}

func (m *ReportRepository) AppointmentsByStatus(ctx context.Context) ([]*model.StatusCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]*model.StatusCount)
	return counts, args.Error(1)
}
